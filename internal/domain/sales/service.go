package sales

import "context"

// SalesService records daily net sales and computes store performance.
type SalesService interface {
	// UpsertRecord writes the net sales for one store and day, replacing
	// any earlier figure for the same day.
	UpsertRecord(ctx context.Context, req UpsertRecordRequest) error

	Performance(ctx context.Context, req PerformanceRequest) (Performance, error)
}
