package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shiftline/shiftline-backend-go/internal/domain/auth"
	"github.com/shiftline/shiftline-backend-go/internal/domain/task"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/response"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/claims"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/jwt"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/sse"
)

type TaskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	ListByStore(w http.ResponseWriter, r *http.Request)
	Mine(w http.ResponseWriter, r *http.Request)
	StreamToken(w http.ResponseWriter, r *http.Request)
	Events(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	taskService task.TaskService
	jwtService  jwt.Service
	hub         *sse.Hub
}

func NewTaskHandler(taskService task.TaskService, jwtService jwt.Service, hub *sse.Hub) TaskHandler {
	return &TaskHandlerImpl{
		taskService: taskService,
		jwtService:  jwtService,
		hub:         hub,
	}
}

// Create implements TaskHandler.
func (h *TaskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req task.CreateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.taskService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create task service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Task assigned", resp)
}

// Complete implements TaskHandler.
func (h *TaskHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	resp, err := h.taskService.Complete(r.Context(), taskID)
	if err != nil {
		slog.Error("Complete task service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task completed", resp)
}

// ListByStore implements TaskHandler.
func (h *TaskHandlerImpl) ListByStore(w http.ResponseWriter, r *http.Request) {
	storeID := r.URL.Query().Get("store_id")
	openOnly, _ := strconv.ParseBool(r.URL.Query().Get("open_only"))

	resp, err := h.taskService.ListByStore(r.Context(), storeID, openOnly)
	if err != nil {
		slog.Error("ListByStore task service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Mine implements TaskHandler.
func (h *TaskHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	openOnly, _ := strconv.ParseBool(r.URL.Query().Get("open_only"))

	resp, err := h.taskService.Mine(r.Context(), openOnly)
	if err != nil {
		slog.Error("Mine task service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// StreamToken issues a short-lived token the EventSource client passes as a
// query parameter, since it cannot set an Authorization header.
func (h *TaskHandlerImpl) StreamToken(w http.ResponseWriter, r *http.Request) {
	caller, err := claims.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	token, expiresIn, err := h.jwtService.GenerateStreamToken(caller.UserID)
	if err != nil {
		slog.Error("StreamToken generate error", "error", err)
		response.InternalServerError(w, "Failed to issue stream token")
		return
	}
	response.Success(w, map[string]interface{}{
		"stream_token": token,
		"expires_in":   expiresIn,
	})
}

// Events implements TaskHandler. One SSE stream per subscriber.
func (h *TaskHandlerImpl) Events(w http.ResponseWriter, r *http.Request) {
	userID, err := h.jwtService.ValidateStreamToken(r.URL.Query().Get("token"))
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	events, cancel := h.hub.Subscribe(userID)
	defer cancel()

	fmt.Fprint(w, "event: connected\ndata: {}\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-events:
			data, err := json.Marshal(ev.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Event, data)
			flusher.Flush()
		}
	}
}
