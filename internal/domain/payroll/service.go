package payroll

import "context"

// PayrollService generates the payroll report and its export renditions.
type PayrollService interface {
	GenerateReport(ctx context.Context, req ReportRequest) (Report, error)

	// ExportCSV renders the shift-level CSV for the same period.
	ExportCSV(ctx context.Context, req ReportRequest) ([]byte, error)

	// ExportXLSX renders the report as a spreadsheet.
	ExportXLSX(ctx context.Context, req ReportRequest) ([]byte, error)

	// ExportText renders the report as a plain-text summary suitable for
	// pasting into a chat message.
	ExportText(ctx context.Context, req ReportRequest) (string, error)
}
