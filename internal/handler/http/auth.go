package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/domain/auth"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/response"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
	frontendURL string
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service, frontendURL string) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
		frontendURL: frontendURL,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	refreshExpiry := time.Now().Add(168 * time.Hour).Unix()
	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, refreshExpiry))
	slog.Info("User logged in", "email", loginReq.Email)
	response.Created(w, "Logged in successfully", tokenResponse)
}

// LoginWithGoogle implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	redirectURL, err := a.authService.LoginWithGoogle(r.UserAgent())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	redirectWithError := func(errorMsg string) {
		redirectURL := fmt.Sprintf("%s/auth/callback/google?error=%s", a.frontendURL, url.QueryEscape(errorMsg))
		http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
	}

	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")

	tokenResponse, err := a.authService.OAuthCallbackGoogle(r.Context(), state, code, r.UserAgent())
	if err != nil {
		slog.Error("OAuthCallbackGoogle service error", "error", err)
		redirectWithError(err.Error())
		return
	}

	refreshExpiry := time.Now().Add(168 * time.Hour).Unix()
	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, refreshExpiry))

	redirectURL := fmt.Sprintf("%s/auth/callback/google?access_token=%s", a.frontendURL, url.QueryEscape(tokenResponse.AccessToken))
	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var refreshReq auth.RefreshTokenRequest

	// The token may arrive as the cookie or in the body
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshReq.RefreshToken = cookie.Value
	} else if err := json.NewDecoder(r.Body).Decode(&refreshReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResponse, err := a.authService.RefreshToken(r.Context(), refreshReq)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	var refreshToken string
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshToken = cookie.Value
	}

	if err := a.authService.Logout(r.Context(), refreshToken); err != nil {
		response.HandleError(w, err)
		return
	}

	clearedCookie := &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, clearedCookie)
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}
