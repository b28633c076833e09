package payroll

import (
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/domain/advance"
	"github.com/shiftline/shiftline-backend-go/internal/domain/schedule"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/domain/store"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

// ReportRequest bounds one payroll report run. AsOf defaults to now: shifts
// elapsed by AsOf count as worked, schedule slots after it as projected.
type ReportRequest struct {
	StoreID   string
	From      string
	To        string
	AsOf      *string
	ProfileID *string
}

func (r *ReportRequest) Validate() error {
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
	if r.AsOf != nil {
		if _, ok := validator.IsValidDateTime(*r.AsOf); !ok {
			errs = append(errs, validator.ValidationError{Field: "as_of", Message: "must be an ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period returns the parsed [from, to) bounds and the asOf cutoff.
// Call after Validate. The to bound is exclusive: the day after the
// requested end date.
func (r *ReportRequest) Period(now time.Time) (from, to, asOf time.Time) {
	from, _ = time.Parse("2006-01-02", r.From)
	to, _ = time.Parse("2006-01-02", r.To)
	to = to.AddDate(0, 0, 1)
	asOf = now
	if r.AsOf != nil {
		asOf, _ = validator.IsValidDateTime(*r.AsOf)
	}
	return from, to, asOf
}

// StoreConfig is the slice of store configuration the pipeline reads.
type StoreConfig struct {
	LaborTier         store.LaborTier
	VarianceWarnHours float64
	DriftWarnHours    float64
}

// Snapshot is the set of rows one report run computes over. The pipeline
// never touches the database: the caller fetches these and hands them in.
type Snapshot struct {
	Shifts   []shift.Shift
	Advances []advance.Advance
	Schedule []schedule.Entry
	Stores   map[string]StoreConfig
}

// EmployeeSummary is one output row, also used for the grand-totals row.
// Field names and order are frozen: the CSV/PDF/text exporters and the
// frontend tables consume them as-is.
type EmployeeSummary struct {
	UserID         string  `json:"user_id"`
	FullName       string  `json:"full_name"`
	WorkedHours    float64 `json:"worked_hours"`
	ProjectedHours float64 `json:"projected_hours"`
	AdvanceHours   float64 `json:"advance_hours"`
	SubmitHours    float64 `json:"submit_hours"`
}

// OpenTotals is the independently computed scheduled total, split by the
// store labor tier.
type OpenTotals struct {
	LV1Hours   float64 `json:"lv1_hours"`
	LV2Hours   float64 `json:"lv2_hours"`
	TotalHours float64 `json:"total_hours"`
}

// Anomaly kinds, in severity order.
const (
	IssueKindOpen     = "open"
	IssueKindOverride = "override"
	IssueKindDrift    = "drift"
)

// Anomaly is one per-shift finding surfaced for manager review. Advisory
// only; never blocks payroll submission.
type Anomaly struct {
	ShiftID   string `json:"shift_id"`
	Issue     string `json:"issue"`
	IssueKind string `json:"issueKind"`
	Employee  string `json:"employee"`
	Store     string `json:"store"`
	Label     string `json:"label"`
	Detail    string `json:"detail"`
}

// Reconciliation is the cross-check section of the report. Omitted (null)
// when the schedule source is unavailable; the payroll summary still renders.
type Reconciliation struct {
	OpenTotals       OpenTotals `json:"open_totals"`
	Diff             float64    `json:"reconciliationDiff"`
	Balanced         bool       `json:"balanced"`
	VarianceExceeded bool       `json:"variance_exceeded"`
	Anomalies        []Anomaly  `json:"anomalies"`
}

// Report is the full payroll report payload.
type Report struct {
	StoreID        string            `json:"store_id"`
	From           string            `json:"from"`
	To             string            `json:"to"`
	AsOf           string            `json:"as_of"`
	GeneratedAt    string            `json:"generated_at"`
	Employees      []EmployeeSummary `json:"employees"`
	Totals         EmployeeSummary   `json:"totals"`
	Reconciliation *Reconciliation   `json:"reconciliation"`
}

// ShiftLine is one normalized row of the shift-level CSV export.
type ShiftLine struct {
	ShiftID      string
	UserID       string
	FullName     string
	StoreID      string
	StartAt      time.Time
	EndAt        time.Time
	Minutes      int
	RoundedHours float64
}
