package safe

import (
	"context"
	"time"
)

// SafeRepository defines data access methods for drawer counts.
type SafeRepository interface {
	Create(ctx context.Context, e Entry) (Entry, error)
	GetByID(ctx context.Context, id string) (Entry, error)
	GetByStoreAndDate(ctx context.Context, storeID string, date time.Time) (*Entry, error)
	ListByPeriod(ctx context.Context, storeID string, from, to time.Time) ([]Entry, error)
}
