package sales

import (
	"context"
	"time"
)

// SalesRepository defines data access methods for daily sales records.
type SalesRepository interface {
	Upsert(ctx context.Context, r Record) (Record, error)
	ListByPeriod(ctx context.Context, storeID string, from, to time.Time) ([]Record, error)

	// ListAllByPeriod returns records for every store in scope, used to
	// compute the cross-store benchmark.
	ListAllByPeriod(ctx context.Context, storeIDs []string, from, to time.Time) ([]Record, error)
}
