package payroll

import (
	"testing"
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/domain/payroll"
	"github.com/shiftline/shiftline-backend-go/internal/domain/schedule"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/domain/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenScheduleTotals_TierSplit(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	entries := []schedule.Entry{
		{StoreID: "st1", ScheduledStart: start, ScheduledEnd: start.Add(4 * time.Hour)},
		{StoreID: "st2", ScheduledStart: start, ScheduledEnd: start.Add(6 * time.Hour)},
		// Unknown store falls into lv1
		{StoreID: "st9", ScheduledStart: start, ScheduledEnd: start.Add(2 * time.Hour)},
	}
	stores := map[string]payroll.StoreConfig{
		"st1": {LaborTier: store.TierLV1},
		"st2": {LaborTier: store.TierLV2},
	}

	totals := OpenScheduleTotals(entries, stores)

	assert.Equal(t, 6.0, totals.LV1Hours)
	assert.Equal(t, 6.0, totals.LV2Hours)
	assert.Equal(t, 12.0, totals.TotalHours)
}

func TestReconciliationDiff(t *testing.T) {
	open := payroll.OpenTotals{TotalHours: 40}

	diff, balanced := ReconciliationDiff(42.5, open)
	assert.Equal(t, 2.5, diff)
	assert.False(t, balanced)

	diff, balanced = ReconciliationDiff(38, open)
	assert.Equal(t, -2.0, diff)
	assert.False(t, balanced)

	_, balanced = ReconciliationDiff(40.005, open)
	assert.True(t, balanced)

	_, balanced = ReconciliationDiff(40.02, open)
	assert.False(t, balanced)
}

func TestVarianceExceeded(t *testing.T) {
	stores := map[string]payroll.StoreConfig{
		"str-cfg": {VarianceWarnHours: 5.0},
	}

	// Default threshold is 2h for unknown or unconfigured stores
	assert.True(t, VarianceExceeded(2.5, stores, "str-unknown"))
	assert.True(t, VarianceExceeded(-2.5, stores, "str-unknown"))
	assert.False(t, VarianceExceeded(1.5, stores, "str-unknown"))
	assert.False(t, VarianceExceeded(2.0, stores, "str-unknown"))

	// Store configuration overrides the default
	assert.False(t, VarianceExceeded(2.5, stores, "str-cfg"))
	assert.True(t, VarianceExceeded(-5.5, stores, "str-cfg"))
}

func TestDetectAnomalies_KindOrder(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)

	shifts := []shift.Shift{
		// Drifted 4h against a 8h slot, no note
		{ID: "s-drift", ProfileID: "u1", StoreID: "st1", FullName: strPtr("Ana"),
			StartedAt: start, EndedAt: timePtr(start.Add(4 * time.Hour))},
		// Manual close awaiting review
		{ID: "s-override", ProfileID: "u2", StoreID: "st1", FullName: strPtr("Ben"),
			StartedAt: start, EndedAt: timePtr(end), ManualClosed: true},
		// Never clocked out
		{ID: "s-open", ProfileID: "u3", StoreID: "st1", FullName: strPtr("Cal"),
			StartedAt: start},
	}
	entries := []schedule.Entry{
		{ProfileID: "u1", StoreID: "st1", ScheduledStart: start, ScheduledEnd: end},
	}

	anomalies := DetectAnomalies(shifts, entries, nil)

	require.Len(t, anomalies, 3)
	assert.Equal(t, payroll.IssueKindOpen, anomalies[0].IssueKind)
	assert.Equal(t, "s-open", anomalies[0].ShiftID)
	assert.Equal(t, payroll.IssueKindOverride, anomalies[1].IssueKind)
	assert.Equal(t, "s-override", anomalies[1].ShiftID)
	assert.Equal(t, payroll.IssueKindDrift, anomalies[2].IssueKind)
	assert.Equal(t, "s-drift", anomalies[2].ShiftID)
	assert.Equal(t, "Ana", anomalies[2].Employee)
}

func TestDetectAnomalies_InputOrderWithinKind(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	shifts := []shift.Shift{
		{ID: "open-b", ProfileID: "u2", StoreID: "st1", StartedAt: start.Add(time.Hour)},
		{ID: "open-a", ProfileID: "u1", StoreID: "st1", StartedAt: start},
	}

	anomalies := DetectAnomalies(shifts, nil, nil)

	require.Len(t, anomalies, 2)
	assert.Equal(t, "open-b", anomalies[0].ShiftID)
	assert.Equal(t, "open-a", anomalies[1].ShiftID)
}

func TestDetectAnomalies_NoteSuppressesDrift(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	entries := []schedule.Entry{
		{ProfileID: "u1", StoreID: "st1", ScheduledStart: start, ScheduledEnd: start.Add(8 * time.Hour)},
	}

	noNote := []shift.Shift{
		{ID: "s1", ProfileID: "u1", StoreID: "st1",
			StartedAt: start, EndedAt: timePtr(start.Add(4 * time.Hour))},
	}
	anomalies := DetectAnomalies(noNote, entries, nil)
	require.Len(t, anomalies, 1)
	assert.Equal(t, payroll.IssueKindDrift, anomalies[0].IssueKind)

	withNote := []shift.Shift{
		{ID: "s1", ProfileID: "u1", StoreID: "st1", Note: strPtr("sent home early"),
			StartedAt: start, EndedAt: timePtr(start.Add(4 * time.Hour))},
	}
	assert.Empty(t, DetectAnomalies(withNote, entries, nil))

	// Whitespace is not an explanation
	blankNote := []shift.Shift{
		{ID: "s1", ProfileID: "u1", StoreID: "st1", Note: strPtr("   "),
			StartedAt: start, EndedAt: timePtr(start.Add(4 * time.Hour))},
	}
	assert.Len(t, DetectAnomalies(blankNote, entries, nil), 1)
}

func TestDetectAnomalies_StoreDriftThreshold(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	entries := []schedule.Entry{
		{ProfileID: "u1", StoreID: "st1", ScheduledStart: start, ScheduledEnd: start.Add(8 * time.Hour)},
	}
	// 1.5h short of the slot
	shifts := []shift.Shift{
		{ID: "s1", ProfileID: "u1", StoreID: "st1",
			StartedAt: start, EndedAt: timePtr(start.Add(390 * time.Minute))},
	}

	// Default threshold of 1h flags it
	assert.Len(t, DetectAnomalies(shifts, entries, nil), 1)

	// A laxer store config does not
	stores := map[string]payroll.StoreConfig{"st1": {DriftWarnHours: 2.0}}
	assert.Empty(t, DetectAnomalies(shifts, entries, stores))
}

func TestDetectAnomalies_NoMatchingSlotNoDrift(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	shifts := []shift.Shift{
		{ID: "s1", ProfileID: "u1", StoreID: "st1",
			StartedAt: start, EndedAt: timePtr(start.Add(12 * time.Hour))},
	}
	// Slot belongs to a different employee
	entries := []schedule.Entry{
		{ProfileID: "u2", StoreID: "st1", ScheduledStart: start, ScheduledEnd: start.Add(8 * time.Hour)},
	}

	assert.Empty(t, DetectAnomalies(shifts, entries, nil))
}

func TestDetectAnomalies_ExcludedShiftsSkipped(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	shifts := []shift.Shift{
		{ID: "s1", ProfileID: "u1", StoreID: "st1", Excluded: true, StartedAt: start},
		{ID: "s2", ProfileID: "u2", StoreID: "st1", Excluded: true, ManualClosed: true,
			StartedAt: start, EndedAt: timePtr(start.Add(time.Hour))},
	}

	assert.Empty(t, DetectAnomalies(shifts, nil, nil))
}

func TestDetectAnomalies_ReviewedOverrideNotFlagged(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	reviewed := start.Add(10 * time.Hour)
	shifts := []shift.Shift{
		{ID: "s1", ProfileID: "u1", StoreID: "st1", ManualClosed: true,
			ManualClosedReviewedAt: timePtr(reviewed),
			StartedAt:              start, EndedAt: timePtr(start.Add(8 * time.Hour))},
	}

	assert.Empty(t, DetectAnomalies(shifts, nil, nil))
}
