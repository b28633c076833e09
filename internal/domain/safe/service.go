package safe

import "context"

// SafeService is the cash-drawer ledger.
type SafeService interface {
	// RecordCount stores one drawer count. One count per store per day.
	RecordCount(ctx context.Context, req RecordCountRequest) (LedgerRow, error)

	// Ledger reconciles every count in the period against the store's
	// expected drawer amount.
	Ledger(ctx context.Context, req LedgerRequest) (Ledger, error)
}
