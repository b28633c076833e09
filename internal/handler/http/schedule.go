package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftline/shiftline-backend-go/internal/domain/schedule"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/response"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

type ScheduleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// Create implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.scheduleService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create schedule entry service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Schedule entry created", resp)
}

// Delete implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete schedule entry service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Schedule entry deleted", nil)
}

// List implements ScheduleHandler.
func (h *ScheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	storeID := r.URL.Query().Get("store_id")
	from, okFrom := validator.IsValidDate(r.URL.Query().Get("from"))
	to, okTo := validator.IsValidDate(r.URL.Query().Get("to"))
	if !okFrom || !okTo {
		response.BadRequest(w, "from and to must be YYYY-MM-DD dates", nil)
		return
	}

	resp, err := h.scheduleService.List(r.Context(), storeID, from, to.AddDate(0, 0, 1))
	if err != nil {
		slog.Error("List schedule entries service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
