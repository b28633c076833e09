package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskAlreadyDone = errors.New("task is already completed")
	ErrNotAssignee     = errors.New("task is assigned to another employee")
)
