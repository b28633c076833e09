package shift

import "time"

// Kind enum
type Kind string

const (
	KindOpen   Kind = "open"
	KindClose  Kind = "close"
	KindDouble Kind = "double"
	KindOther  Kind = "other"
)

func (k Kind) Valid() bool {
	switch k {
	case KindOpen, KindClose, KindDouble, KindOther:
		return true
	}
	return false
}

// Shift is one worked (or still running) interval for one employee at one
// store. A shift with no EndedAt is open. Shifts are never deleted; Excluded
// hides them from reports instead.
type Shift struct {
	ID        string
	StoreID   string
	ProfileID string
	ShiftType Kind

	PlannedStartAt *time.Time
	StartedAt      time.Time
	EndedAt        *time.Time

	// Free-text note; its presence suppresses the drift anomaly flag
	Note *string

	// Set when the employee ended the shift outside the normal clock-out
	// flow; cleared for reporting purposes once a manager reviews it
	ManualClosed           bool
	ManualClosedReviewedAt *time.Time

	LastAction string
	Excluded   bool

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	FullName *string
}

// IsOpen reports whether the shift has not been clocked out yet.
func (s Shift) IsOpen() bool {
	return s.EndedAt == nil
}

// PendingOverride reports whether an employee manual close still awaits
// manager review.
func (s Shift) PendingOverride() bool {
	return s.ManualClosed && s.ManualClosedReviewedAt == nil
}
