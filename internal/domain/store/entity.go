package store

import "time"

// LaborTier enum. An explicit store attribute, set when the store is
// registered; payroll reconciliation splits open-schedule totals by it.
type LaborTier string

const (
	TierLV1 LaborTier = "lv1"
	TierLV2 LaborTier = "lv2"
)

func (t LaborTier) Valid() bool {
	return t == TierLV1 || t == TierLV2
}

// Store is one physical location with its reconciliation configuration.
type Store struct {
	ID        string
	Name      string
	LaborTier LaborTier

	// Safe ledger: the drawer amount the store should hold at open
	ExpectedDrawerCents int64

	// Payroll reconciliation thresholds, in hours
	PayrollVarianceWarnHours   float64
	PayrollShiftDriftWarnHours float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
