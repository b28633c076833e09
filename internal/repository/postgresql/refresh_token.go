package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline/shiftline-backend-go/internal/domain/auth"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

// Store implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Store(ctx context.Context, userID, token string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO refresh_tokens (token, user_id, expires_at) VALUES ($1, $2, $3)`,
		token, userID, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// Validate implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Validate(ctx context.Context, token string) (string, error) {
	q := GetQuerier(ctx, r.db)

	var userID string
	var expiresAt time.Time
	var revokedAt *time.Time
	err := q.QueryRow(ctx,
		`SELECT user_id, expires_at, revoked_at FROM refresh_tokens WHERE token = $1`,
		token,
	).Scan(&userID, &expiresAt, &revokedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", auth.ErrInvalidToken
		}
		return "", fmt.Errorf("failed to validate refresh token: %w", err)
	}

	if revokedAt != nil {
		return "", auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(expiresAt) {
		return "", auth.ErrTokenExpired
	}
	return userID, nil
}

// Revoke implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = NOW() WHERE token = $1 AND revoked_at IS NULL`,
		token,
	)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// DeleteExpired implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
