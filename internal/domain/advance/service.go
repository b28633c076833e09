package advance

import (
	"context"
	"time"
)

// AdvanceService manages pre-paid hours. All mutations are manager only.
type AdvanceService interface {
	Create(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error)

	// Resolve moves a pending advance to verified or voided.
	Resolve(ctx context.Context, req ResolveAdvanceRequest) (AdvanceResponse, error)

	List(ctx context.Context, storeID string, from, to time.Time) ([]AdvanceResponse, error)
}
