package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shiftline/shiftline-backend-go/internal/domain/sales"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/response"
)

type SalesHandler interface {
	UpsertRecord(w http.ResponseWriter, r *http.Request)
	Performance(w http.ResponseWriter, r *http.Request)
}

type SalesHandlerImpl struct {
	salesService sales.SalesService
}

func NewSalesHandler(salesService sales.SalesService) SalesHandler {
	return &SalesHandlerImpl{salesService: salesService}
}

// UpsertRecord implements SalesHandler.
func (h *SalesHandlerImpl) UpsertRecord(w http.ResponseWriter, r *http.Request) {
	var req sales.UpsertRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.salesService.UpsertRecord(r.Context(), req); err != nil {
		slog.Error("UpsertRecord service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Sales record saved", nil)
}

// Performance implements SalesHandler.
func (h *SalesHandlerImpl) Performance(w http.ResponseWriter, r *http.Request) {
	req := sales.PerformanceRequest{
		StoreID: r.URL.Query().Get("store_id"),
		From:    r.URL.Query().Get("from"),
		To:      r.URL.Query().Get("to"),
	}

	perf, err := h.salesService.Performance(r.Context(), req)
	if err != nil {
		slog.Error("Performance service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, perf)
}
