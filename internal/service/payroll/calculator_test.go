package payroll

import (
	"testing"
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/domain/advance"
	"github.com/shiftline/shiftline-backend-go/internal/domain/payroll"
	"github.com/shiftline/shiftline-backend-go/internal/domain/schedule"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestRoundHours(t *testing.T) {
	tests := []struct {
		minutes int
		want    float64
	}{
		{0, 0},
		{19, 0},
		{20, 0.5},
		{40, 0.5},
		{41, 1},
		{59, 1},
		{60, 1},
		{79, 1},
		{80, 1.5},
		{125, 2},
		{245, 4},
		{260, 4.5},
		{280, 4.5},
		{281, 5},
		{480, 8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundHours(tt.minutes), "minutes=%d", tt.minutes)
	}
}

func TestShiftMinutes(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 240, ShiftMinutes(start, start.Add(4*time.Hour)))
	assert.Equal(t, 2, ShiftMinutes(start, start.Add(90*time.Second)))
	// Clock skew can put the end before the start; never go negative
	assert.Equal(t, 0, ShiftMinutes(start, start.Add(-10*time.Minute)))
}

func TestAggregate_WorkedProjectedAndAdvance(t *testing.T) {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	asOf := from.AddDate(0, 0, 3)

	day1 := from.Add(9 * time.Hour)
	day2 := from.AddDate(0, 0, 1).Add(9 * time.Hour)
	day5 := from.AddDate(0, 0, 4).Add(9 * time.Hour)

	snap := payroll.Snapshot{
		Shifts: []shift.Shift{
			// 240 minutes rounds to 4h
			{ID: "s1", ProfileID: "u1", StoreID: "st1", FullName: strPtr("Ana"),
				StartedAt: day1, EndedAt: timePtr(day1.Add(240 * time.Minute))},
			// 265 minutes rounds to 4.5h
			{ID: "s2", ProfileID: "u1", StoreID: "st1", FullName: strPtr("Ana"),
				StartedAt: day2, EndedAt: timePtr(day2.Add(265 * time.Minute))},
		},
		Schedule: []schedule.Entry{
			// Future slot: projected, not worked
			{ID: "e1", ProfileID: "u1", StoreID: "st1", FullName: strPtr("Ana"),
				ScheduledStart: day5, ScheduledEnd: day5.Add(4 * time.Hour)},
		},
		Advances: []advance.Advance{
			{ID: "a1", ProfileID: "u1", AdvanceHours: 1.0, Status: advance.StatusVerified},
		},
	}

	employees, totals := Aggregate(snap, from, to, asOf, nil)

	require.Len(t, employees, 1)
	row := employees[0]
	assert.Equal(t, "u1", row.UserID)
	assert.Equal(t, "Ana", row.FullName)
	assert.Equal(t, 8.5, row.WorkedHours)
	assert.Equal(t, 4.0, row.ProjectedHours)
	assert.Equal(t, 1.0, row.AdvanceHours)
	assert.Equal(t, 11.5, row.SubmitHours)

	assert.Equal(t, "Totals", totals.FullName)
	assert.Equal(t, 11.5, totals.SubmitHours)
}

func TestAggregate_AdvanceNeverDrivesNegative(t *testing.T) {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	start := from.Add(9 * time.Hour)

	snap := payroll.Snapshot{
		Shifts: []shift.Shift{
			{ID: "s1", ProfileID: "u1", StoreID: "st1",
				StartedAt: start, EndedAt: timePtr(start.Add(2 * time.Hour))},
		},
		Advances: []advance.Advance{
			{ID: "a1", ProfileID: "u1", AdvanceHours: 5.0, Status: advance.StatusVerified},
		},
	}

	employees, totals := Aggregate(snap, from, to, to, nil)

	require.Len(t, employees, 1)
	assert.Equal(t, 0.0, employees[0].SubmitHours)
	assert.Equal(t, 0.0, totals.SubmitHours)
}

func TestAggregate_SkipsOpenExcludedAndUnverified(t *testing.T) {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	start := from.Add(9 * time.Hour)

	snap := payroll.Snapshot{
		Shifts: []shift.Shift{
			{ID: "s1", ProfileID: "u1", StoreID: "st1",
				StartedAt: start, EndedAt: timePtr(start.Add(4 * time.Hour))},
			// Still open; contributes nothing
			{ID: "s2", ProfileID: "u1", StoreID: "st1", StartedAt: start.Add(24 * time.Hour)},
			// Excluded by a manager
			{ID: "s3", ProfileID: "u1", StoreID: "st1", Excluded: true,
				StartedAt: start, EndedAt: timePtr(start.Add(8 * time.Hour))},
		},
		Advances: []advance.Advance{
			{ID: "a1", ProfileID: "u1", AdvanceHours: 1.0, Status: advance.StatusPending},
			{ID: "a2", ProfileID: "u1", AdvanceHours: 1.0, Status: advance.StatusVoided},
		},
	}

	employees, _ := Aggregate(snap, from, to, to, nil)

	require.Len(t, employees, 1)
	assert.Equal(t, 4.0, employees[0].WorkedHours)
	assert.Equal(t, 0.0, employees[0].AdvanceHours)
	assert.Equal(t, 4.0, employees[0].SubmitHours)
}

func TestAggregate_AsOfCutoff(t *testing.T) {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	asOf := from.AddDate(0, 0, 2)

	beforeCut := from.Add(9 * time.Hour)
	afterCut := asOf.Add(9 * time.Hour)

	snap := payroll.Snapshot{
		Shifts: []shift.Shift{
			{ID: "s1", ProfileID: "u1", StoreID: "st1",
				StartedAt: beforeCut, EndedAt: timePtr(beforeCut.Add(4 * time.Hour))},
			// Ends after the cutoff; not yet worked
			{ID: "s2", ProfileID: "u1", StoreID: "st1",
				StartedAt: afterCut, EndedAt: timePtr(afterCut.Add(4 * time.Hour))},
		},
		Schedule: []schedule.Entry{
			// Starts before the cutoff; already covered by actuals
			{ID: "e1", ProfileID: "u1", StoreID: "st1",
				ScheduledStart: beforeCut, ScheduledEnd: beforeCut.Add(4 * time.Hour)},
			{ID: "e2", ProfileID: "u1", StoreID: "st1",
				ScheduledStart: afterCut, ScheduledEnd: afterCut.Add(3 * time.Hour)},
		},
	}

	employees, _ := Aggregate(snap, from, to, asOf, nil)

	require.Len(t, employees, 1)
	assert.Equal(t, 4.0, employees[0].WorkedHours)
	assert.Equal(t, 3.0, employees[0].ProjectedHours)
}

func TestAggregate_ProfileFilterKeepsFullTotals(t *testing.T) {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	start := from.Add(9 * time.Hour)

	snap := payroll.Snapshot{
		Shifts: []shift.Shift{
			{ID: "s1", ProfileID: "u1", StoreID: "st1", FullName: strPtr("Ana"),
				StartedAt: start, EndedAt: timePtr(start.Add(4 * time.Hour))},
			{ID: "s2", ProfileID: "u2", StoreID: "st1", FullName: strPtr("Ben"),
				StartedAt: start, EndedAt: timePtr(start.Add(6 * time.Hour))},
		},
	}

	profileID := "u2"
	employees, totals := Aggregate(snap, from, to, to, &profileID)

	require.Len(t, employees, 1)
	assert.Equal(t, "u2", employees[0].UserID)
	assert.Equal(t, 6.0, employees[0].WorkedHours)
	// Totals still cover every employee, not just the filtered one
	assert.Equal(t, 10.0, totals.WorkedHours)
}

func TestAggregate_SortsByNameThenID(t *testing.T) {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	start := from.Add(9 * time.Hour)

	snap := payroll.Snapshot{
		Shifts: []shift.Shift{
			{ID: "s1", ProfileID: "u2", StoreID: "st1", FullName: strPtr("Zoe"),
				StartedAt: start, EndedAt: timePtr(start.Add(time.Hour))},
			{ID: "s2", ProfileID: "u1", StoreID: "st1", FullName: strPtr("Ana"),
				StartedAt: start, EndedAt: timePtr(start.Add(time.Hour))},
		},
	}

	employees, _ := Aggregate(snap, from, to, to, nil)

	require.Len(t, employees, 2)
	assert.Equal(t, "Ana", employees[0].FullName)
	assert.Equal(t, "Zoe", employees[1].FullName)
}

func TestShiftLines(t *testing.T) {
	asOf := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	early := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	late := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)

	snap := payroll.Snapshot{
		Shifts: []shift.Shift{
			{ID: "s2", ProfileID: "u1", StoreID: "st1", FullName: strPtr("Ana"),
				StartedAt: late, EndedAt: timePtr(late.Add(265 * time.Minute))},
			{ID: "s1", ProfileID: "u1", StoreID: "st1", FullName: strPtr("Ana"),
				StartedAt: early, EndedAt: timePtr(early.Add(240 * time.Minute))},
			// Open shift never exports
			{ID: "s3", ProfileID: "u1", StoreID: "st1", StartedAt: early},
			{ID: "s4", ProfileID: "u1", StoreID: "st1", Excluded: true,
				StartedAt: early, EndedAt: timePtr(early.Add(time.Hour))},
		},
	}

	lines := ShiftLines(snap, asOf, nil)

	require.Len(t, lines, 2)
	assert.Equal(t, "s1", lines[0].ShiftID)
	assert.Equal(t, 240, lines[0].Minutes)
	assert.Equal(t, 4.0, lines[0].RoundedHours)
	assert.Equal(t, "s2", lines[1].ShiftID)
	assert.Equal(t, 265, lines[1].Minutes)
	assert.Equal(t, 4.5, lines[1].RoundedHours)
}
