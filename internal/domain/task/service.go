package task

import "context"

// TaskService is manager-to-employee task assignment.
type TaskService interface {
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)

	// Complete marks a task done. The assignee or a manager may complete it.
	Complete(ctx context.Context, taskID string) (TaskResponse, error)

	ListByStore(ctx context.Context, storeID string, openOnly bool) ([]TaskResponse, error)

	// Mine lists the caller's own assigned tasks.
	Mine(ctx context.Context, openOnly bool) ([]TaskResponse, error)
}
