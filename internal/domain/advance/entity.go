package advance

import "time"

// Status enum. Only verified advances are deducted from payroll.
type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusVoided   Status = "voided"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusVerified || s == StatusVoided
}

// Advance is pre-paid hours (optionally with a cash amount) against a
// future paycheck. Created pending; a manager verifies or voids it.
type Advance struct {
	ID           string
	ProfileID    string
	StoreID      *string
	AdvanceDate  time.Time
	AdvanceHours float64
	CashCents    *int64
	Note         *string
	Status       Status
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	FullName *string
}
