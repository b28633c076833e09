package advance

import (
	"context"
	"time"
)

// AdvanceRepository defines data access methods for advances.
type AdvanceRepository interface {
	Create(ctx context.Context, a Advance) (Advance, error)
	GetByID(ctx context.Context, id string) (Advance, error)

	// ListByPeriod returns advances whose date falls within [from, to) for
	// the given stores, any status, with employee names joined.
	ListByPeriod(ctx context.Context, storeIDs []string, from, to time.Time) ([]Advance, error)

	// SetStatus records a manager decision. Returns
	// ErrAdvanceAlreadyProcessed when the advance is no longer pending.
	SetStatus(ctx context.Context, id string, status Status) error
}
