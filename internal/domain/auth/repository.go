package auth

import (
	"context"
	"time"
)

// RefreshTokenRepository persists issued refresh tokens so they can be
// revoked server-side on logout.
type RefreshTokenRepository interface {
	Store(ctx context.Context, userID, token string, expiresAt time.Time) error

	// Validate returns the owning user when the token is known, unexpired
	// and unrevoked; ErrRefreshTokenRevoked or ErrInvalidToken otherwise.
	Validate(ctx context.Context, token string) (userID string, err error)

	Revoke(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
