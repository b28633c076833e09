package safe

import "errors"

var (
	ErrEntryNotFound  = errors.New("safe entry not found")
	ErrDuplicateCount = errors.New("a drawer count already exists for this store and day")
	ErrNegativeDrawer = errors.New("counted amount must be non-negative")
)
