package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/WolfOWI/coriander-backend-sub000/internal/config"
	appHTTP "github.com/WolfOWI/coriander-backend-sub000/internal/handler/http"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/database"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/email"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/jwt"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/oauth"
	"github.com/WolfOWI/coriander-backend-sub000/internal/repository/postgresql"
	authService "github.com/WolfOWI/coriander-backend-sub000/internal/service/auth"
	dashboardService "github.com/WolfOWI/coriander-backend-sub000/internal/service/dashboard"
	employeeService "github.com/WolfOWI/coriander-backend-sub000/internal/service/employee"
	equipmentService "github.com/WolfOWI/coriander-backend-sub000/internal/service/equipment"
	gatheringService "github.com/WolfOWI/coriander-backend-sub000/internal/service/gathering"
	leaveService "github.com/WolfOWI/coriander-backend-sub000/internal/service/leave"
	meetingService "github.com/WolfOWI/coriander-backend-sub000/internal/service/meeting"
	reviewService "github.com/WolfOWI/coriander-backend-sub000/internal/service/review"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	equipmentCategoryRepo := postgresql.NewEquipmentCategoryRepository(db)
	equipmentItemRepo := postgresql.NewEquipmentItemRepository(db)
	meetingRepo := postgresql.NewMeetingRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	balanceService := leaveService.NewBalanceService(leaveTypeRepo, leaveBalanceRepo)
	requestService := leaveService.NewRequestService(db, leaveRequestRepo, balanceService)
	leaveSvc := leaveService.NewLeaveService(db, leaveTypeRepo, leaveRequestRepo, employeeRepo, balanceService, requestService, emailService)
	authSvc := authService.NewAuthService(db, userRepo, refreshTokenRepo, employeeRepo, JWTService, googleService)
	employeeSvc := employeeService.NewEmployeeService(db, userRepo, employeeRepo, balanceService)
	equipmentSvc := equipmentService.NewEquipmentService(equipmentCategoryRepo, equipmentItemRepo, employeeRepo)
	meetingSvc := meetingService.NewMeetingService(meetingRepo, employeeRepo, emailService)
	reviewSvc := reviewService.NewReviewService(reviewRepo, employeeRepo)
	gatheringSvc := gatheringService.NewGatheringService(meetingRepo, reviewRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, employeeRepo, leaveBalanceRepo, equipmentItemRepo, gatheringSvc)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:       JWTService,
		AuthHandler:      appHTTP.NewAuthHandler(authSvc, JWTService),
		EmployeeHandler:  appHTTP.NewEmployeeHandler(employeeSvc),
		LeaveHandler:     appHTTP.NewLeaveHandler(leaveSvc),
		EquipmentHandler: appHTTP.NewEquipmentHandler(equipmentSvc),
		MeetingHandler:   appHTTP.NewMeetingHandler(meetingSvc),
		ReviewHandler:    appHTTP.NewReviewHandler(reviewSvc),
		GatheringHandler: appHTTP.NewGatheringHandler(gatheringSvc),
		DashboardHandler: appHTTP.NewDashboardHandler(dashboardSvc),
	}, cfg.App.FrontendURL, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
