package payroll

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/domain/payroll"
	"github.com/shiftline/shiftline-backend-go/internal/domain/schedule"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/domain/store"
)

// Diffs within this band count as balanced.
const balanceEpsilonHours = 0.01

// Applied when a store has no drift threshold configured.
const defaultDriftWarnHours = 1.0

// Applied when a store has no variance threshold configured.
const defaultVarianceWarnHours = 2.0

const anomalyLabelLayout = "2006-01-02 15:04"

// OpenScheduleTotals sums the planned schedule for the period, split by the
// store labor tier. Stores without a known config count as lv1.
func OpenScheduleTotals(entries []schedule.Entry, stores map[string]payroll.StoreConfig) payroll.OpenTotals {
	var totals payroll.OpenTotals
	for _, e := range entries {
		hours := RoundHours(e.Minutes())
		if cfg, ok := stores[e.StoreID]; ok && cfg.LaborTier == store.TierLV2 {
			totals.LV2Hours += hours
		} else {
			totals.LV1Hours += hours
		}
		totals.TotalHours += hours
	}
	return totals
}

// ReconciliationDiff compares payroll gross hours (worked plus projected,
// before advance deduction) against the open-schedule total. The signed
// difference is reported as-is; it is never hidden or auto-corrected.
func ReconciliationDiff(grossHours float64, open payroll.OpenTotals) (diff float64, balanced bool) {
	diff = grossHours - open.TotalHours
	return diff, math.Abs(diff) <= balanceEpsilonHours
}

// VarianceExceeded reports whether the diff is large enough to escalate
// past the routine check marker, using the store's configured threshold.
func VarianceExceeded(diff float64, stores map[string]payroll.StoreConfig, storeID string) bool {
	threshold := defaultVarianceWarnHours
	if cfg, ok := stores[storeID]; ok && cfg.VarianceWarnHours > 0 {
		threshold = cfg.VarianceWarnHours
	}
	return math.Abs(diff) > threshold
}

// DetectAnomalies scans the period's shifts for timing problems a manager
// should look at before finalizing pay. Open shifts come first, then manual
// closes awaiting review, then unexplained drift; within a kind the input
// order is preserved.
func DetectAnomalies(shifts []shift.Shift, entries []schedule.Entry, stores map[string]payroll.StoreConfig) []payroll.Anomaly {
	var open, override, drift []payroll.Anomaly

	for _, s := range shifts {
		if s.Excluded {
			continue
		}
		if s.IsOpen() {
			open = append(open, payroll.Anomaly{
				ShiftID:   s.ID,
				Issue:     "shift was never clocked out",
				IssueKind: payroll.IssueKindOpen,
				Employee:  employeeName(s),
				Store:     s.StoreID,
				Label:     s.StartedAt.UTC().Format(anomalyLabelLayout),
				Detail:    fmt.Sprintf("open since %s", s.StartedAt.UTC().Format(anomalyLabelLayout)),
			})
		}
	}

	for _, s := range shifts {
		if s.Excluded {
			continue
		}
		if s.PendingOverride() {
			detail := "closed by the employee outside the clock-out flow"
			if s.LastAction != "" {
				detail = s.LastAction
			}
			override = append(override, payroll.Anomaly{
				ShiftID:   s.ID,
				Issue:     "manual close awaiting manager review",
				IssueKind: payroll.IssueKindOverride,
				Employee:  employeeName(s),
				Store:     s.StoreID,
				Label:     s.StartedAt.UTC().Format(anomalyLabelLayout),
				Detail:    detail,
			})
		}
	}

	for _, s := range shifts {
		if s.Excluded || s.EndedAt == nil {
			continue
		}
		if s.Note != nil && strings.TrimSpace(*s.Note) != "" {
			// An explained variance is not an anomaly; only the missing
			// explanation triggers the flag
			continue
		}
		scheduledMinutes, ok := scheduledLength(s, entries)
		if !ok {
			continue
		}
		actualMinutes := ShiftMinutes(s.StartedAt, *s.EndedAt)
		driftHours := math.Abs(float64(actualMinutes-scheduledMinutes)) / 60
		threshold := defaultDriftWarnHours
		if cfg, found := stores[s.StoreID]; found && cfg.DriftWarnHours > 0 {
			threshold = cfg.DriftWarnHours
		}
		if driftHours <= threshold {
			continue
		}
		drift = append(drift, payroll.Anomaly{
			ShiftID:   s.ID,
			Issue:     "shift length drifted from schedule with no note",
			IssueKind: payroll.IssueKindDrift,
			Employee:  employeeName(s),
			Store:     s.StoreID,
			Label:     s.StartedAt.UTC().Format(anomalyLabelLayout),
			Detail: fmt.Sprintf("actual %sh vs scheduled %sh",
				formatHours(float64(actualMinutes)/60),
				formatHours(float64(scheduledMinutes)/60)),
		})
	}

	anomalies := make([]payroll.Anomaly, 0, len(open)+len(override)+len(drift))
	anomalies = append(anomalies, open...)
	anomalies = append(anomalies, override...)
	anomalies = append(anomalies, drift...)
	return anomalies
}

// scheduledLength finds the planned slot the shift was worked against: the
// same employee on the same calendar day as the planned (or actual) start.
func scheduledLength(s shift.Shift, entries []schedule.Entry) (int, bool) {
	ref := s.StartedAt
	if s.PlannedStartAt != nil {
		ref = *s.PlannedStartAt
	}
	day := ref.UTC().Truncate(24 * time.Hour)
	for _, e := range entries {
		if e.ProfileID != s.ProfileID {
			continue
		}
		if e.ScheduledStart.UTC().Truncate(24 * time.Hour).Equal(day) {
			return e.Minutes(), true
		}
	}
	return 0, false
}

func employeeName(s shift.Shift) string {
	if s.FullName != nil && *s.FullName != "" {
		return *s.FullName
	}
	return s.ProfileID
}

func formatHours(h float64) string {
	return strconv.FormatFloat(math.Round(h*100)/100, 'f', -1, 64)
}
