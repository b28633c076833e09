package schedule

import (
	"context"
	"time"
)

// ScheduleService manages planned slots. Mutations are manager only.
type ScheduleService interface {
	Create(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, storeID string, from, to time.Time) ([]EntryResponse, error)
}
