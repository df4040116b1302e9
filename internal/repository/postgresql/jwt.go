package postgresql

import (
	"context"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/user"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) user.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

// Store implements user.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Store(ctx context.Context, token user.RefreshToken) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (id, user_id, token, revoked, expires_at)
		VALUES (uuidv7(), $1, $2, false, $3)
	`

	_, err := q.Exec(ctx, query, token.UserID, token.Token, token.ExpiresAt)
	return err
}

// GetByToken implements user.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) GetByToken(ctx context.Context, token string) (user.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, token, revoked, expires_at, created_at
		FROM refresh_tokens
		WHERE token = $1
	`

	var found user.RefreshToken
	err := q.QueryRow(ctx, query, token).Scan(
		&found.ID,
		&found.UserID,
		&found.Token,
		&found.Revoked,
		&found.ExpiresAt,
		&found.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.RefreshToken{}, user.ErrRefreshTokenNotFound
		}
		return user.RefreshToken{}, err
	}

	return found, nil
}

// Revoke implements user.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked = true
		WHERE token = $1
	`

	_, err := q.Exec(ctx, query, token)
	return err
}

// RevokeAllForUser implements user.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) RevokeAllForUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked = true
		WHERE user_id = $1 AND revoked = false
	`

	_, err := q.Exec(ctx, query, userID)
	return err
}
