package postgresql

import (
	"context"
	"errors"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/user"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, full_name, email, password_hash, google_id, profile_url, role)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6)
		RETURNING id, full_name, email, password_hash, google_id, profile_url, role,
				  created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query,
		newUser.FullName,
		newUser.Email,
		newUser.PasswordHash,
		newUser.GoogleID,
		newUser.ProfileURL,
		newUser.Role,
	).Scan(
		&created.ID,
		&created.FullName,
		&created.Email,
		&created.PasswordHash,
		&created.GoogleID,
		&created.ProfileURL,
		&created.Role,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, err
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, password_hash, google_id, profile_url, role,
			   created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.FullName,
		&found.Email,
		&found.PasswordHash,
		&found.GoogleID,
		&found.ProfileURL,
		&found.Role,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, password_hash, google_id, profile_url, role,
			   created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&found.ID,
		&found.FullName,
		&found.Email,
		&found.PasswordHash,
		&found.GoogleID,
		&found.ProfileURL,
		&found.Role,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

// GetByGoogleID implements user.UserRepository.
func (r *userRepositoryImpl) GetByGoogleID(ctx context.Context, googleID string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, password_hash, google_id, profile_url, role,
			   created_at, updated_at
		FROM users
		WHERE google_id = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, googleID).Scan(
		&found.ID,
		&found.FullName,
		&found.Email,
		&found.PasswordHash,
		&found.GoogleID,
		&found.ProfileURL,
		&found.Role,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET full_name = $1, email = $2, password_hash = $3, google_id = $4,
			profile_url = $5, updated_at = NOW()
		WHERE id = $6
	`

	commandTag, err := q.Exec(ctx, query,
		u.FullName, u.Email, u.PasswordHash, u.GoogleID, u.ProfileURL, u.ID,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
