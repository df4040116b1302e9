package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/WolfOWI/coriander-backend-sub000/internal/handler/http/middleware"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterDeps struct {
	JWTService jwt.Service

	AuthHandler      AuthHandler
	EmployeeHandler  EmployeeHandler
	LeaveHandler     LeaveHandler
	EquipmentHandler EquipmentHandler
	MeetingHandler   MeetingHandler
	ReviewHandler    ReviewHandler
	GatheringHandler GatheringHandler
	DashboardHandler DashboardHandler
}

func NewRouter(deps RouterDeps, frontendURL string, env string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "coriander"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.AuthHandler.Register)
			r.Post("/login", deps.AuthHandler.Login)
			r.Post("/refresh", deps.AuthHandler.Refresh)
			r.Post("/logout", deps.AuthHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", deps.AuthHandler.GoogleRedirect)
				r.Get("/google/callback", deps.AuthHandler.GoogleCallback)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Get("/auth/me", deps.AuthHandler.Me)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", deps.EmployeeHandler.GetMe)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", deps.EmployeeHandler.List)
					r.Post("/", deps.EmployeeHandler.Create)
					r.Get("/{id}", deps.EmployeeHandler.Get)
					r.Put("/{id}", deps.EmployeeHandler.Update)
					r.Patch("/{id}/suspend", deps.EmployeeHandler.ToggleSuspend)
					r.Delete("/{id}", deps.EmployeeHandler.Delete)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/types", deps.LeaveHandler.ListTypes)
				r.Get("/balances/my", deps.LeaveHandler.GetMyBalances)

				r.Route("/requests", func(r chi.Router) {
					r.Post("/", deps.LeaveHandler.CreateRequest)
					r.Get("/my", deps.LeaveHandler.GetMyRequests)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Get("/", deps.LeaveHandler.ListRequests)
						r.Get("/{id}", deps.LeaveHandler.GetRequest)
						r.Patch("/{id}/approve", deps.LeaveHandler.ApproveRequest)
						r.Patch("/{id}/reject", deps.LeaveHandler.RejectRequest)
						r.Patch("/{id}/pending", deps.LeaveHandler.ResetRequest)
						r.Delete("/{id}", deps.LeaveHandler.DeleteRequest)
					})
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/types", deps.LeaveHandler.CreateType)
					r.Post("/balances/{employeeId}/defaults", deps.LeaveHandler.SeedBalances)
					r.Get("/balances/{employeeId}", deps.LeaveHandler.ListBalances)
					r.Get("/balances/{employeeId}/totals", deps.LeaveHandler.GetBalanceTotals)
				})
			})

			r.Route("/equipment", func(r chi.Router) {
				r.Get("/my", deps.EquipmentHandler.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/categories", deps.EquipmentHandler.ListCategories)
					r.Post("/categories", deps.EquipmentHandler.CreateCategory)
					r.Post("/", deps.EquipmentHandler.CreateItem)
					r.Get("/unassigned", deps.EquipmentHandler.ListUnassigned)
					r.Get("/employee/{employeeId}", deps.EquipmentHandler.ListByEmployee)
					r.Post("/assign", deps.EquipmentHandler.AssignItem)
					r.Get("/{id}", deps.EquipmentHandler.GetItem)
					r.Put("/{id}", deps.EquipmentHandler.UpdateItem)
					r.Patch("/{id}/unassign", deps.EquipmentHandler.UnassignItem)
					r.Delete("/{id}", deps.EquipmentHandler.DeleteItem)
				})
			})

			r.Route("/meetings", func(r chi.Router) {
				r.Post("/", deps.MeetingHandler.Request)
				r.Get("/my", deps.MeetingHandler.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", deps.MeetingHandler.ListByAdmin)
					r.Get("/requested", deps.MeetingHandler.ListRequested)
					r.Get("/{id}", deps.MeetingHandler.Get)
					r.Put("/{id}", deps.MeetingHandler.Update)
					r.Patch("/{id}/confirm", deps.MeetingHandler.Confirm)
					r.Patch("/{id}/reject", deps.MeetingHandler.Reject)
					r.Patch("/{id}/complete", deps.MeetingHandler.Complete)
					r.Patch("/{id}/revert", deps.MeetingHandler.Revert)
					r.Delete("/{id}", deps.MeetingHandler.Delete)
				})
			})

			// Admin only
			r.Route("/reviews", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", deps.ReviewHandler.Create)
				r.Get("/", deps.ReviewHandler.ListByAdmin)
				r.Get("/employee/{employeeId}", deps.ReviewHandler.ListByEmployee)
				r.Get("/{id}", deps.ReviewHandler.Get)
				r.Put("/{id}", deps.ReviewHandler.Update)
				r.Patch("/{id}/complete", deps.ReviewHandler.Complete)
				r.Delete("/{id}", deps.ReviewHandler.Delete)
			})

			r.Route("/gatherings", func(r chi.Router) {
				r.Get("/my", deps.GatheringHandler.ListMine)
				r.Get("/my/scheduled", deps.GatheringHandler.ListMyScheduled)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", deps.GatheringHandler.ListForAdmin)
					r.Get("/scheduled", deps.GatheringHandler.ListScheduledForAdmin)
					r.Get("/month/{month}", deps.GatheringHandler.ListForAdminByMonth)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/my", deps.DashboardHandler.MyProfile)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/admin", deps.DashboardHandler.AdminSummary)
					r.Get("/employee/{employeeId}", deps.DashboardHandler.EmployeeProfile)
				})
			})
		})
	})

	return r
}
