package schedule

import "time"

// Entry is one planned schedule slot for one employee at one store.
// The open-schedule totals and the drift check both read these rows.
type Entry struct {
	ID             string
	ProfileID      string
	StoreID        string
	ScheduledStart time.Time
	ScheduledEnd   time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	FullName *string
}

// Minutes returns the planned slot length in whole minutes.
func (e Entry) Minutes() int {
	return int(e.ScheduledEnd.Sub(e.ScheduledStart).Minutes())
}
