package payroll

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/domain/payroll"
	"github.com/xuri/excelize/v2"
)

// csvHeader is frozen: downstream spreadsheet imports key on these exact
// column names and order.
var csvHeader = []string{"shift_id", "user_id", "full_name", "store_id", "start_at", "end_at", "minutes", "rounded_hours"}

// RenderCSV writes the normalized shift lines as CSV.
func RenderCSV(lines []payroll.ShiftLine) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, l := range lines {
		record := []string{
			l.ShiftID,
			l.UserID,
			l.FullName,
			l.StoreID,
			l.StartAt.UTC().Format(time.RFC3339),
			l.EndAt.UTC().Format(time.RFC3339),
			strconv.Itoa(l.Minutes),
			formatHours(l.RoundedHours),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderText renders the report as a plain-text summary, one employee per
// line, ready to paste into a group chat.
func RenderText(rep payroll.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Payroll %s to %s\n", rep.From, rep.To)
	fmt.Fprintf(&b, "Store %s\n", rep.StoreID)

	if len(rep.Employees) == 0 {
		b.WriteString("No shifts in range.\n")
	}
	for _, e := range rep.Employees {
		fmt.Fprintf(&b, "%s: %sh (worked %s, projected %s, advance %s)\n",
			e.FullName,
			formatHours(e.SubmitHours),
			formatHours(e.WorkedHours),
			formatHours(e.ProjectedHours),
			formatHours(e.AdvanceHours),
		)
	}

	fmt.Fprintf(&b, "Total to submit: %sh\n", formatHours(rep.Totals.SubmitHours))

	if rep.Reconciliation != nil {
		rec := rep.Reconciliation
		fmt.Fprintf(&b, "Schedule total: %sh (lv1 %s, lv2 %s)\n",
			formatHours(rec.OpenTotals.TotalHours),
			formatHours(rec.OpenTotals.LV1Hours),
			formatHours(rec.OpenTotals.LV2Hours),
		)
		// Positive diffs render with an explicit sign
		if rec.Balanced {
			fmt.Fprintf(&b, "Diff: %+.2fh (balanced)\n", rec.Diff)
		} else {
			fmt.Fprintf(&b, "Diff: %+.2fh (CHECK)\n", rec.Diff)
		}
		if rec.VarianceExceeded {
			b.WriteString("Variance above store warn threshold\n")
		}
		if n := len(rec.Anomalies); n > 0 {
			fmt.Fprintf(&b, "Flagged shifts: %d\n", n)
			for _, a := range rec.Anomalies {
				fmt.Fprintf(&b, "- [%s] %s %s: %s\n", a.IssueKind, a.Label, a.Employee, a.Issue)
			}
		}
	}

	return b.String()
}

// RenderXLSX renders the report plus the shift lines as a two-sheet
// spreadsheet.
func RenderXLSX(rep payroll.Report, lines []payroll.ShiftLine) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Payroll"
	f.SetSheetName("Sheet1", summarySheet)

	summaryHeader := []interface{}{"user_id", "full_name", "worked_hours", "projected_hours", "advance_hours", "submit_hours"}
	if err := f.SetSheetRow(summarySheet, "A1", &summaryHeader); err != nil {
		return nil, fmt.Errorf("failed to write summary header: %w", err)
	}
	row := 2
	for _, e := range rep.Employees {
		cell := fmt.Sprintf("A%d", row)
		values := []interface{}{e.UserID, e.FullName, e.WorkedHours, e.ProjectedHours, e.AdvanceHours, e.SubmitHours}
		if err := f.SetSheetRow(summarySheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write summary row: %w", err)
		}
		row++
	}
	totals := []interface{}{"", "Totals", rep.Totals.WorkedHours, rep.Totals.ProjectedHours, rep.Totals.AdvanceHours, rep.Totals.SubmitHours}
	if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", row), &totals); err != nil {
		return nil, fmt.Errorf("failed to write totals row: %w", err)
	}
	row += 2

	if rep.Reconciliation != nil {
		rec := rep.Reconciliation
		recRows := [][]interface{}{
			{"open_total_hours", rec.OpenTotals.TotalHours},
			{"lv1_hours", rec.OpenTotals.LV1Hours},
			{"lv2_hours", rec.OpenTotals.LV2Hours},
			{"reconciliation_diff", fmt.Sprintf("%+.2f", rec.Diff)},
			{"variance_exceeded", rec.VarianceExceeded},
			{"flagged_shifts", len(rec.Anomalies)},
		}
		for _, values := range recRows {
			v := values
			if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", row), &v); err != nil {
				return nil, fmt.Errorf("failed to write reconciliation row: %w", err)
			}
			row++
		}
	}

	const shiftSheet = "Shifts"
	if _, err := f.NewSheet(shiftSheet); err != nil {
		return nil, fmt.Errorf("failed to create shifts sheet: %w", err)
	}
	shiftHeader := make([]interface{}, len(csvHeader))
	for i, h := range csvHeader {
		shiftHeader[i] = h
	}
	if err := f.SetSheetRow(shiftSheet, "A1", &shiftHeader); err != nil {
		return nil, fmt.Errorf("failed to write shifts header: %w", err)
	}
	for i, l := range lines {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			l.ShiftID, l.UserID, l.FullName, l.StoreID,
			l.StartAt.UTC().Format(time.RFC3339), l.EndAt.UTC().Format(time.RFC3339),
			l.Minutes, l.RoundedHours,
		}
		if err := f.SetSheetRow(shiftSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write shift row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
