package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListByStore(w http.ResponseWriter, r *http.Request)
	SetActive(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// Create implements UserHandler.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.userService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee registered", resp)
}

// GetByID implements UserHandler.
func (h *UserHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.userService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Get user service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ListByStore implements UserHandler.
func (h *UserHandlerImpl) ListByStore(w http.ResponseWriter, r *http.Request) {
	resp, err := h.userService.ListByStore(r.Context(), r.URL.Query().Get("store_id"))
	if err != nil {
		slog.Error("List users service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// SetActive implements UserHandler.
func (h *UserHandlerImpl) SetActive(w http.ResponseWriter, r *http.Request) {
	active, err := strconv.ParseBool(r.URL.Query().Get("active"))
	if err != nil {
		response.BadRequest(w, "active must be true or false", nil)
		return
	}

	if err := h.userService.SetActive(r.Context(), chi.URLParam(r, "id"), active); err != nil {
		slog.Error("SetActive user service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee status updated", nil)
}

// Me implements UserHandler.
func (h *UserHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	resp, err := h.userService.Me(r.Context())
	if err != nil {
		slog.Error("Me service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
