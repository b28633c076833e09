package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftline/shiftline-backend-go/internal/domain/store"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/response"
)

type StoreHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type StoreHandlerImpl struct {
	storeService store.StoreService
}

func NewStoreHandler(storeService store.StoreService) StoreHandler {
	return &StoreHandlerImpl{storeService: storeService}
}

// Create implements StoreHandler.
func (h *StoreHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req store.CreateStoreRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.storeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create store service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Store registered", resp)
}

// Update implements StoreHandler.
func (h *StoreHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req store.UpdateStoreRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.storeService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update store service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Store updated", resp)
}

// GetByID implements StoreHandler.
func (h *StoreHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.storeService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Get store service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// List implements StoreHandler.
func (h *StoreHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.storeService.List(r.Context())
	if err != nil {
		slog.Error("List stores service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
