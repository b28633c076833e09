package schedule

import (
	"context"
	"time"
)

// ScheduleRepository defines data access methods for planned schedule slots.
type ScheduleRepository interface {
	Create(ctx context.Context, e Entry) (Entry, error)
	GetByID(ctx context.Context, id string) (Entry, error)

	// ListByPeriod returns entries whose ScheduledStart falls within
	// [from, to) for the given stores, with employee names joined.
	ListByPeriod(ctx context.Context, storeIDs []string, from, to time.Time) ([]Entry, error)

	Delete(ctx context.Context, id string) error
}
