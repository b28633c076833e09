package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access methods for shifts.
// Period reads take [from, to) bounds in UTC and skip excluded rows.
type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)

	// GetOpenByProfile returns the employee's current open shift, if any.
	GetOpenByProfile(ctx context.Context, profileID string) (*Shift, error)

	// ListByPeriod returns non-excluded shifts for the stores whose
	// StartedAt falls within [from, to), with employee names joined.
	ListByPeriod(ctx context.Context, storeIDs []string, from, to time.Time) ([]Shift, error)

	// ListOpenOlderThan returns open shifts started before the cutoff,
	// across all stores. Used by the stale-shift background job.
	ListOpenOlderThan(ctx context.Context, cutoff time.Time) ([]Shift, error)

	Update(ctx context.Context, s Shift) error
	SetExcluded(ctx context.Context, id string, excluded bool, lastAction string) error
}
