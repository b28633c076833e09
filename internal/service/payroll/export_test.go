package payroll

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleLines() []payroll.ShiftLine {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return []payroll.ShiftLine{
		{
			ShiftID:      "shf-1",
			UserID:       "usr-1",
			FullName:     "Ana Lima",
			StoreID:      "str-1",
			StartAt:      start,
			EndAt:        start.Add(265 * time.Minute),
			Minutes:      265,
			RoundedHours: 4.5,
		},
	}
}

func TestRenderCSV_FrozenHeader(t *testing.T) {
	out, err := RenderCSV(nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 1)
	// Downstream imports key on this exact header
	assert.Equal(t, "shift_id,user_id,full_name,store_id,start_at,end_at,minutes,rounded_hours", lines[0])
}

func TestRenderCSV_Rows(t *testing.T) {
	out, err := RenderCSV(sampleLines())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "shf-1,usr-1,Ana Lima,str-1,2026-03-02T09:00:00Z,2026-03-02T13:25:00Z,265,4.5", lines[1])
}

func TestRenderText_WithReconciliation(t *testing.T) {
	rep := payroll.Report{
		StoreID: "str-1",
		From:    "2026-03-02",
		To:      "2026-03-08",
		Employees: []payroll.EmployeeSummary{
			{UserID: "usr-1", FullName: "Ana Lima", WorkedHours: 8.5, ProjectedHours: 4, AdvanceHours: 1, SubmitHours: 11.5},
		},
		Totals: payroll.EmployeeSummary{FullName: "Totals", WorkedHours: 8.5, ProjectedHours: 4, AdvanceHours: 1, SubmitHours: 11.5},
		Reconciliation: &payroll.Reconciliation{
			OpenTotals: payroll.OpenTotals{LV1Hours: 10, LV2Hours: 0, TotalHours: 10},
			Diff:       2.5,
			Balanced:   false,
			Anomalies: []payroll.Anomaly{
				{ShiftID: "shf-9", IssueKind: payroll.IssueKindOpen, Employee: "Ben", Label: "2026-03-03 09:00", Issue: "shift was never clocked out"},
			},
		},
	}

	text := RenderText(rep)

	assert.Contains(t, text, "Payroll 2026-03-02 to 2026-03-08")
	assert.Contains(t, text, "Ana Lima: 11.5h (worked 8.5, projected 4, advance 1)")
	assert.Contains(t, text, "Total to submit: 11.5h")
	// Positive diffs carry an explicit sign
	assert.Contains(t, text, "Diff: +2.50h (CHECK)")
	assert.NotContains(t, text, "Variance above store warn threshold")
	assert.Contains(t, text, "Flagged shifts: 1")
	assert.Contains(t, text, "- [open] 2026-03-03 09:00 Ben: shift was never clocked out")
}

func TestRenderText_VarianceEscalation(t *testing.T) {
	rep := payroll.Report{
		From: "2026-03-02", To: "2026-03-08", StoreID: "str-1",
		Reconciliation: &payroll.Reconciliation{Diff: -3.5, VarianceExceeded: true},
	}

	text := RenderText(rep)

	assert.Contains(t, text, "Diff: -3.50h (CHECK)")
	assert.Contains(t, text, "Variance above store warn threshold")
}

func TestRenderText_Balanced(t *testing.T) {
	rep := payroll.Report{
		From: "2026-03-02", To: "2026-03-08", StoreID: "str-1",
		Reconciliation: &payroll.Reconciliation{Diff: 0, Balanced: true},
	}

	text := RenderText(rep)

	assert.Contains(t, text, "No shifts in range.")
	assert.Contains(t, text, "Diff: +0.00h (balanced)")
}

func TestRenderText_NegativeDiff(t *testing.T) {
	rep := payroll.Report{
		From: "2026-03-02", To: "2026-03-08", StoreID: "str-1",
		Reconciliation: &payroll.Reconciliation{Diff: -1.25},
	}

	assert.Contains(t, RenderText(rep), "Diff: -1.25h (CHECK)")
}

func TestRenderText_NoReconciliationSection(t *testing.T) {
	rep := payroll.Report{From: "2026-03-02", To: "2026-03-08", StoreID: "str-1"}

	text := RenderText(rep)

	assert.NotContains(t, text, "Diff:")
	assert.NotContains(t, text, "Schedule total:")
}

func TestRenderXLSX(t *testing.T) {
	rep := payroll.Report{
		StoreID: "str-1", From: "2026-03-02", To: "2026-03-08",
		Employees: []payroll.EmployeeSummary{
			{UserID: "usr-1", FullName: "Ana Lima", WorkedHours: 8.5, SubmitHours: 8.5},
		},
		Totals: payroll.EmployeeSummary{FullName: "Totals", WorkedHours: 8.5, SubmitHours: 8.5},
	}

	out, err := RenderXLSX(rep, sampleLines())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	cell, err := f.GetCellValue("Payroll", "A1")
	require.NoError(t, err)
	assert.Equal(t, "user_id", cell)

	name, err := f.GetCellValue("Payroll", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", name)

	shiftID, err := f.GetCellValue("Shifts", "A2")
	require.NoError(t, err)
	assert.Equal(t, "shf-1", shiftID)
}
