package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shiftline/shiftline-backend-go/internal/domain/safe"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/response"
)

type SafeHandler interface {
	RecordCount(w http.ResponseWriter, r *http.Request)
	Ledger(w http.ResponseWriter, r *http.Request)
}

type SafeHandlerImpl struct {
	safeService safe.SafeService
}

func NewSafeHandler(safeService safe.SafeService) SafeHandler {
	return &SafeHandlerImpl{safeService: safeService}
}

// RecordCount implements SafeHandler.
func (h *SafeHandlerImpl) RecordCount(w http.ResponseWriter, r *http.Request) {
	var req safe.RecordCountRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	row, err := h.safeService.RecordCount(r.Context(), req)
	if err != nil {
		slog.Error("RecordCount service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Drawer count recorded", row)
}

// Ledger implements SafeHandler.
func (h *SafeHandlerImpl) Ledger(w http.ResponseWriter, r *http.Request) {
	req := safe.LedgerRequest{
		StoreID: r.URL.Query().Get("store_id"),
		From:    r.URL.Query().Get("from"),
		To:      r.URL.Query().Get("to"),
	}

	ledger, err := h.safeService.Ledger(r.Context(), req)
	if err != nil {
		slog.Error("Ledger service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, ledger)
}
