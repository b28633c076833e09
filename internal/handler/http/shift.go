package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	ManualClose(w http.ResponseWriter, r *http.Request)
	ReviewManualClose(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	SetExcluded(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Current(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// ClockIn implements ShiftHandler.
func (h *ShiftHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req shift.ClockInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.shiftService.ClockIn(r.Context(), req)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Clocked in", resp)
}

// ClockOut implements ShiftHandler.
func (h *ShiftHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	resp, err := h.shiftService.ClockOut(r.Context())
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Clocked out", resp)
}

// ManualClose implements ShiftHandler.
func (h *ShiftHandlerImpl) ManualClose(w http.ResponseWriter, r *http.Request) {
	var req shift.ManualCloseRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.shiftService.ManualClose(r.Context(), req)
	if err != nil {
		slog.Error("ManualClose service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift closed, pending manager review", resp)
}

// ReviewManualClose implements ShiftHandler.
func (h *ShiftHandlerImpl) ReviewManualClose(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, "id")

	resp, err := h.shiftService.ReviewManualClose(r.Context(), shiftID)
	if err != nil {
		slog.Error("ReviewManualClose service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Manual close reviewed", resp)
}

// Edit implements ShiftHandler.
func (h *ShiftHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	var req shift.EditShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.shiftService.Edit(r.Context(), req)
	if err != nil {
		slog.Error("Edit shift service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift updated", resp)
}

// SetExcluded implements ShiftHandler.
func (h *ShiftHandlerImpl) SetExcluded(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, "id")
	excluded, err := strconv.ParseBool(r.URL.Query().Get("excluded"))
	if err != nil {
		response.BadRequest(w, "excluded must be true or false", nil)
		return
	}

	if err := h.shiftService.SetExcluded(r.Context(), shiftID, excluded); err != nil {
		slog.Error("SetExcluded service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift exclusion updated", nil)
}

// List implements ShiftHandler.
func (h *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := shift.ListShiftsRequest{
		StoreID: r.URL.Query().Get("store_id"),
		From:    r.URL.Query().Get("from"),
		To:      r.URL.Query().Get("to"),
	}

	resp, err := h.shiftService.List(r.Context(), req)
	if err != nil {
		slog.Error("List shifts service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Current implements ShiftHandler.
func (h *ShiftHandlerImpl) Current(w http.ResponseWriter, r *http.Request) {
	resp, err := h.shiftService.Current(r.Context())
	if err != nil {
		slog.Error("Current shift service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
