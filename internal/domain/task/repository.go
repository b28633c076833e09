package task

import "context"

// TaskRepository defines data access methods for tasks.
type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	ListByStore(ctx context.Context, storeID string, openOnly bool) ([]Task, error)
	ListByAssignee(ctx context.Context, assigneeID string, openOnly bool) ([]Task, error)
	Update(ctx context.Context, t Task) error
}
