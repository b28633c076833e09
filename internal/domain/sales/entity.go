package sales

import "time"

// Record is one day of net sales for one store.
type Record struct {
	ID        string
	StoreID   string
	SaleDate  time.Time
	NetCents  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
