package safe

import "time"

// Entry is one cash-drawer count for one store on one day.
type Entry struct {
	ID           string
	StoreID      string
	CountDate    time.Time
	CountedCents int64
	Note         *string
	RecordedBy   string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	RecordedByName *string
}
