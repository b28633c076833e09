package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	LoginWithGoogle(userAgent string) (redirectURL string, err error)
	OAuthCallbackGoogle(ctx context.Context, state, code, userAgent string) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
