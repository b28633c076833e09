package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrTokenExpired        = errors.New("token has expired")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrGoogleNotLinked     = errors.New("no account linked to this google identity")
	ErrGoogleDisabled      = errors.New("google login is not configured")
	ErrInvalidState        = errors.New("oauth state mismatch")
)
