package auth

import (
	"context"
	"errors"
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/domain/auth"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/jwt"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo         user.UserRepository
	refreshTokenRepo auth.RefreshTokenRepository
	jwtService       jwt.Service
	googleService    oauth.GoogleService
}

func NewAuthService(
	userRepo user.UserRepository,
	refreshTokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtService:       jwtService,
		googleService:    googleService,
	}
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role, u.StoreIDs)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if err := s.refreshTokenRepo.Store(ctx, u.ID, refreshToken, time.Unix(refreshExpiresAt, 0)); err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    accessExpiresAt,
		TokenType:    "Bearer",
	}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}
	if !u.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}
	if u.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

func (s *AuthServiceImpl) LoginWithGoogle(userAgent string) (string, error) {
	if s.googleService == nil {
		return "", auth.ErrGoogleDisabled
	}
	state := s.googleService.GenerateState(userAgent)
	if state == "" {
		return "", auth.ErrInvalidState
	}
	return s.googleService.RedirectURL(state), nil
}

func (s *AuthServiceImpl) OAuthCallbackGoogle(ctx context.Context, state, code, userAgent string) (auth.TokenResponse, error) {
	if s.googleService == nil {
		return auth.TokenResponse{}, auth.ErrGoogleDisabled
	}
	if state == "" || code == "" {
		return auth.TokenResponse{}, auth.ErrInvalidState
	}

	token, err := s.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrGoogleNotLinked
	}

	u, err := s.userRepo.GetByGoogleID(ctx, info.GoogleID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, err
		}
		// First Google sign-in: link by verified email
		u, err = s.userRepo.GetByEmail(ctx, info.Email)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return auth.TokenResponse{}, auth.ErrGoogleNotLinked
			}
			return auth.TokenResponse{}, err
		}
		u.GoogleID = &info.GoogleID
		if err := s.userRepo.Update(ctx, u); err != nil {
			return auth.TokenResponse{}, err
		}
	}
	if !u.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	return s.issueTokens(ctx, u)
}

func (s *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}
	if s.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userID, err := s.refreshTokenRepo.Validate(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}
	if !u.IsActive {
		return auth.AccessTokenResponse{}, user.ErrUserInactive
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role, u.StoreIDs)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}
	return auth.AccessTokenResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		TokenType:   "Bearer",
	}, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.jwtService.RevokeToken(refreshToken)
	return s.refreshTokenRepo.Revoke(ctx, refreshToken)
}
