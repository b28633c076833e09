package task

import "time"

// Status enum
type Status string

const (
	StatusOpen Status = "open"
	StatusDone Status = "done"
)

// Task is one piece of work a manager assigned to an employee.
type Task struct {
	ID          string
	StoreID     string
	AssigneeID  string
	Title       string
	Details     *string
	Status      Status
	CreatedBy   string
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	AssigneeName *string
}
