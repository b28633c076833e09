package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline/shiftline-backend-go/internal/domain/task"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

const taskColumns = `t.id, t.store_id, t.assignee_id, t.title, t.details, t.status,
	t.created_by, t.completed_at, t.created_at, t.updated_at`

func scanTask(row pgx.Row, withName bool) (task.Task, error) {
	var t task.Task
	dest := []interface{}{
		&t.ID,
		&t.StoreID,
		&t.AssigneeID,
		&t.Title,
		&t.Details,
		&t.Status,
		&t.CreatedBy,
		&t.CompletedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	}
	if withName {
		dest = append(dest, &t.AssigneeName)
	}
	err := row.Scan(dest...)
	return t, err
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (id, store_id, assignee_id, title, details, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, store_id, assignee_id, title, details, status,
			created_by, completed_at, created_at, updated_at
	`
	created, err := scanTask(q.QueryRow(ctx, query,
		t.ID,
		t.StoreID,
		t.AssigneeID,
		t.Title,
		t.Details,
		t.Status,
		t.CreatedBy,
	), false)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `, u.full_name
		FROM tasks t
		JOIN users u ON u.id = t.assignee_id
		WHERE t.id = $1
	`
	t, err := scanTask(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// ListByStore implements task.TaskRepository.
func (r *taskRepositoryImpl) ListByStore(ctx context.Context, storeID string, openOnly bool) ([]task.Task, error) {
	query := `
		SELECT ` + taskColumns + `, u.full_name
		FROM tasks t
		JOIN users u ON u.id = t.assignee_id
		WHERE t.store_id = $1 AND ($2 = false OR t.status = 'open')
		ORDER BY t.created_at DESC, t.id
	`
	return r.list(ctx, query, storeID, openOnly)
}

// ListByAssignee implements task.TaskRepository.
func (r *taskRepositoryImpl) ListByAssignee(ctx context.Context, assigneeID string, openOnly bool) ([]task.Task, error) {
	query := `
		SELECT ` + taskColumns + `, u.full_name
		FROM tasks t
		JOIN users u ON u.id = t.assignee_id
		WHERE t.assignee_id = $1 AND ($2 = false OR t.status = 'open')
		ORDER BY t.created_at DESC, t.id
	`
	return r.list(ctx, query, assigneeID, openOnly)
}

func (r *taskRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows, true)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Update implements task.TaskRepository.
func (r *taskRepositoryImpl) Update(ctx context.Context, t task.Task) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET title = $1, details = $2, status = $3, completed_at = $4, updated_at = NOW()
		WHERE id = $5
	`
	tag, err := q.Exec(ctx, query, t.Title, t.Details, t.Status, t.CompletedAt, t.ID)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}
