package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftline/shiftline-backend-go/internal/domain/advance"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/response"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

type AdvanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AdvanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &AdvanceHandlerImpl{advanceService: advanceService}
}

// Create implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req advance.CreateAdvanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.advanceService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create advance service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Advance recorded", resp)
}

// Resolve implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	var req advance.ResolveAdvanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.advanceService.Resolve(r.Context(), req)
	if err != nil {
		slog.Error("Resolve advance service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Advance resolved", resp)
}

// List implements AdvanceHandler.
func (h *AdvanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	storeID := r.URL.Query().Get("store_id")
	from, okFrom := validator.IsValidDate(r.URL.Query().Get("from"))
	to, okTo := validator.IsValidDate(r.URL.Query().Get("to"))
	if !okFrom || !okTo {
		response.BadRequest(w, "from and to must be YYYY-MM-DD dates", nil)
		return
	}

	resp, err := h.advanceService.List(r.Context(), storeID, from, to.AddDate(0, 0, 1))
	if err != nil {
		slog.Error("List advances service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
