package safe

import (
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// LedgerRow is one reconciled day in the safe ledger: the drawer count
// against the store's expected amount. Amounts render as fixed-point
// strings so the frontend never does float math on money.
type LedgerRow struct {
	EntryID   string  `json:"entry_id"`
	CountDate string  `json:"count_date"`
	Counted   string  `json:"counted"`
	Expected  string  `json:"expected"`
	Variance  string  `json:"variance"`
	Balanced  bool    `json:"balanced"`
	Note      *string `json:"note"`
}

// Ledger is the safe ledger for one store over a period.
type Ledger struct {
	StoreID       string      `json:"store_id"`
	From          string      `json:"from"`
	To            string      `json:"to"`
	Rows          []LedgerRow `json:"rows"`
	TotalVariance string      `json:"total_variance"`
}

// Cents formats a minor-unit amount as a fixed two-decimal string.
func Cents(v int64) string {
	return decimal.NewFromInt(v).Div(decimal.NewFromInt(100)).StringFixed(2)
}

type RecordCountRequest struct {
	StoreID      string  `json:"store_id"`
	CountDate    string  `json:"count_date"`
	CountedCents int64   `json:"counted_cents"`
	Note         *string `json:"note,omitempty"`
}

func (r *RecordCountRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{Field: "store_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.CountDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "count_date", Message: "must be a YYYY-MM-DD date"})
	}
	if r.CountedCents < 0 {
		errs = append(errs, validator.ValidationError{Field: "counted_cents", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LedgerRequest struct {
	StoreID string
	From    string
	To      string
}

func (r *LedgerRequest) Validate() error {
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
