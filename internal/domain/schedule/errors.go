package schedule

import "errors"

var (
	ErrEntryNotFound   = errors.New("schedule entry not found")
	ErrEntryOverlaps   = errors.New("schedule entry overlaps an existing slot for this employee")
	ErrEndBeforeStart  = errors.New("scheduled end must be after scheduled start")
	ErrSourceUnhealthy = errors.New("schedule source unavailable")
)
