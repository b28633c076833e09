package shift

import "errors"

var (
	ErrShiftNotFound        = errors.New("shift not found")
	ErrAlreadyClockedIn     = errors.New("an open shift already exists for this employee")
	ErrNotClockedIn         = errors.New("no open shift to clock out of")
	ErrAlreadyClosed        = errors.New("shift is already closed")
	ErrEndBeforeStart       = errors.New("shift end must not be before its start")
	ErrNotPendingReview     = errors.New("shift has no manual close awaiting review")
	ErrShiftExcluded        = errors.New("shift is excluded from reports")
	ErrShiftNotOwnedByActor = errors.New("shift belongs to another employee")
)
