package sales

import (
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

// Performance is the analyzer output for one store over one period.
// Deltas are percentages; a nil delta means the comparison base was zero
// or missing, which is different from a 0% change.
type Performance struct {
	StoreID           string   `json:"store_id"`
	From              string   `json:"from"`
	To                string   `json:"to"`
	DaysWithSales     int      `json:"days_with_sales"`
	Total             string   `json:"total"`
	DailyAverage      string   `json:"daily_average"`
	BenchmarkDeltaPct *float64 `json:"benchmark_delta_pct"`
	PeriodDeltaPct    *float64 `json:"period_delta_pct"`
	VolatilityPct     *float64 `json:"volatility_pct"`
}

type UpsertRecordRequest struct {
	StoreID  string `json:"store_id"`
	SaleDate string `json:"sale_date"`
	NetCents int64  `json:"net_cents"`
}

func (r *UpsertRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{Field: "store_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.SaleDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "sale_date", Message: "must be a YYYY-MM-DD date"})
	}
	if r.NetCents < 0 {
		errs = append(errs, validator.ValidationError{Field: "net_cents", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PerformanceRequest struct {
	StoreID string
	From    string
	To      string
}

func (r *PerformanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{Field: "store_id", Message: "is required"})
	}
	from, okFrom := validator.IsValidDate(r.From)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be a YYYY-MM-DD date"})
	}
	to, okTo := validator.IsValidDate(r.To)
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be a YYYY-MM-DD date"})
	}
	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must not be before from"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
