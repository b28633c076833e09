package payroll

import (
	"math"
	"sort"
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/domain/advance"
	"github.com/shiftline/shiftline-backend-go/internal/domain/payroll"
)

// ShiftMinutes converts a clock-in/clock-out pair into billable minutes.
// Negative spans collapse to zero; this guards against clock skew between
// the POS terminals a store runs.
func ShiftMinutes(start, end time.Time) int {
	minutes := int(math.Round(end.Sub(start).Minutes()))
	if minutes < 0 {
		return 0
	}
	return minutes
}

// RoundHours applies the payroll rounding rule to a minute count:
// a remainder under 20 minutes rounds down to the whole hour, over 40
// rounds up, and anything between counts as a half hour. The asymmetric
// middle band is a deliberate pay policy, not a rounding bug.
func RoundHours(minutes int) float64 {
	hours := minutes / 60
	rem := minutes % 60
	switch {
	case rem < 20:
		return float64(hours)
	case rem > 40:
		return float64(hours + 1)
	default:
		return float64(hours) + 0.5
	}
}

type employeeAccum struct {
	fullName  string
	worked    float64
	projected float64
	advance   float64
}

// Aggregate produces one summary row per employee over [from, to) plus the
// grand-totals row. Shifts fully elapsed by asOf contribute worked hours from
// their actual times; schedule slots starting after asOf contribute projected
// hours from their planned times; verified advances are deducted, floored at
// zero per employee. When profileID is set the employee list narrows to that
// employee but the totals row still covers the full set.
func Aggregate(snap payroll.Snapshot, from, to, asOf time.Time, profileID *string) ([]payroll.EmployeeSummary, payroll.EmployeeSummary) {
	accums := make(map[string]*employeeAccum)

	get := func(id string, name *string) *employeeAccum {
		acc, ok := accums[id]
		if !ok {
			acc = &employeeAccum{}
			accums[id] = acc
		}
		if acc.fullName == "" && name != nil {
			acc.fullName = *name
		}
		return acc
	}

	for _, s := range snap.Shifts {
		if s.Excluded || s.EndedAt == nil {
			// Open shifts never contribute hours; the reconciler flags them
			continue
		}
		if s.EndedAt.After(asOf) {
			continue
		}
		acc := get(s.ProfileID, s.FullName)
		acc.worked += RoundHours(ShiftMinutes(s.StartedAt, *s.EndedAt))
	}

	for _, e := range snap.Schedule {
		if !e.ScheduledStart.After(asOf) {
			continue
		}
		if e.ScheduledStart.Before(from) || !e.ScheduledStart.Before(to) {
			continue
		}
		acc := get(e.ProfileID, e.FullName)
		acc.projected += RoundHours(e.Minutes())
	}

	for _, a := range snap.Advances {
		if a.Status != advance.StatusVerified {
			continue
		}
		acc := get(a.ProfileID, a.FullName)
		acc.advance += a.AdvanceHours
	}

	ids := make([]string, 0, len(accums))
	for id := range accums {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := accums[ids[i]], accums[ids[j]]
		if a.fullName != b.fullName {
			return a.fullName < b.fullName
		}
		return ids[i] < ids[j]
	})

	employees := make([]payroll.EmployeeSummary, 0, len(ids))
	totals := payroll.EmployeeSummary{FullName: "Totals"}

	for _, id := range ids {
		acc := accums[id]
		submit := acc.worked + acc.projected - acc.advance
		if submit < 0 {
			submit = 0
		}
		row := payroll.EmployeeSummary{
			UserID:         id,
			FullName:       acc.fullName,
			WorkedHours:    acc.worked,
			ProjectedHours: acc.projected,
			AdvanceHours:   acc.advance,
			SubmitHours:    submit,
		}

		totals.WorkedHours += row.WorkedHours
		totals.ProjectedHours += row.ProjectedHours
		totals.AdvanceHours += row.AdvanceHours
		totals.SubmitHours += row.SubmitHours

		if profileID != nil && id != *profileID {
			continue
		}
		employees = append(employees, row)
	}

	return employees, totals
}

// ShiftLines normalizes the completed shifts of the period into the flat
// rows the shift-level CSV and spreadsheet exports consume.
func ShiftLines(snap payroll.Snapshot, asOf time.Time, profileID *string) []payroll.ShiftLine {
	lines := make([]payroll.ShiftLine, 0, len(snap.Shifts))
	for _, s := range snap.Shifts {
		if s.Excluded || s.EndedAt == nil || s.EndedAt.After(asOf) {
			continue
		}
		if profileID != nil && s.ProfileID != *profileID {
			continue
		}
		name := ""
		if s.FullName != nil {
			name = *s.FullName
		}
		minutes := ShiftMinutes(s.StartedAt, *s.EndedAt)
		lines = append(lines, payroll.ShiftLine{
			ShiftID:      s.ID,
			UserID:       s.ProfileID,
			FullName:     name,
			StoreID:      s.StoreID,
			StartAt:      s.StartedAt,
			EndAt:        *s.EndedAt,
			Minutes:      minutes,
			RoundedHours: RoundHours(minutes),
		})
	}
	sort.Slice(lines, func(i, j int) bool {
		if !lines[i].StartAt.Equal(lines[j].StartAt) {
			return lines[i].StartAt.Before(lines[j].StartAt)
		}
		return lines[i].ShiftID < lines[j].ShiftID
	})
	return lines
}
