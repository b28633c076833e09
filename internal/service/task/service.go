package task

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shiftline/shiftline-backend-go/internal/domain/task"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/claims"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/sse"
)

type TaskServiceImpl struct {
	taskRepo task.TaskRepository
	hub      *sse.Hub
}

func NewTaskService(taskRepo task.TaskRepository, hub *sse.Hub) task.TaskService {
	return &TaskServiceImpl{taskRepo: taskRepo, hub: hub}
}

func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if err := caller.RequireManager(); err != nil {
		return task.TaskResponse{}, err
	}
	if err := caller.RequireStore(req.StoreID); err != nil {
		return task.TaskResponse{}, err
	}

	rec := task.Task{
		ID:         uuid.NewString(),
		StoreID:    req.StoreID,
		AssigneeID: req.AssigneeID,
		Title:      req.Title,
		Details:    req.Details,
		Status:     task.StatusOpen,
		CreatedBy:  caller.UserID,
	}

	created, err := s.taskRepo.Create(ctx, rec)
	if err != nil {
		return task.TaskResponse{}, err
	}

	resp := task.ToResponse(created)
	s.hub.Publish(created.AssigneeID, sse.Event{
		UserID: created.AssigneeID,
		Event:  "task_assigned",
		Data:   resp,
	})
	return resp, nil
}

func (s *TaskServiceImpl) Complete(ctx context.Context, taskID string) (task.TaskResponse, error) {
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	rec, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if rec.AssigneeID != caller.UserID && !caller.IsManager() {
		return task.TaskResponse{}, task.ErrNotAssignee
	}
	if rec.Status == task.StatusDone {
		return task.TaskResponse{}, task.ErrTaskAlreadyDone
	}

	now := time.Now().UTC()
	rec.Status = task.StatusDone
	rec.CompletedAt = &now

	if err := s.taskRepo.Update(ctx, rec); err != nil {
		return task.TaskResponse{}, err
	}

	resp := task.ToResponse(rec)
	// Let the assigning manager know it's done
	if rec.CreatedBy != caller.UserID {
		s.hub.Publish(rec.CreatedBy, sse.Event{
			UserID: rec.CreatedBy,
			Event:  "task_completed",
			Data:   resp,
		})
	}
	return resp, nil
}

func (s *TaskServiceImpl) ListByStore(ctx context.Context, storeID string, openOnly bool) ([]task.TaskResponse, error) {
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := caller.RequireStore(storeID); err != nil {
		return nil, err
	}

	rows, err := s.taskRepo.ListByStore(ctx, storeID, openOnly)
	if err != nil {
		return nil, err
	}

	out := make([]task.TaskResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, task.ToResponse(r))
	}
	return out, nil
}

func (s *TaskServiceImpl) Mine(ctx context.Context, openOnly bool) ([]task.TaskResponse, error) {
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.taskRepo.ListByAssignee(ctx, caller.UserID, openOnly)
	if err != nil {
		return nil, err
	}

	out := make([]task.TaskResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, task.ToResponse(r))
	}
	return out, nil
}
