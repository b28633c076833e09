package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shiftline/shiftline-backend-go/internal/domain/payroll"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Report(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportXLSX(w http.ResponseWriter, r *http.Request)
	ExportText(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

func reportRequestFromQuery(r *http.Request) payroll.ReportRequest {
	q := r.URL.Query()
	req := payroll.ReportRequest{
		StoreID: q.Get("store_id"),
		From:    q.Get("from"),
		To:      q.Get("to"),
	}
	if asOf := q.Get("as_of"); asOf != "" {
		req.AsOf = &asOf
	}
	if profileID := q.Get("profile_id"); profileID != "" {
		req.ProfileID = &profileID
	}
	return req
}

// Report implements PayrollHandler.
func (h *PayrollHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	rep, err := h.payrollService.GenerateReport(r.Context(), req)
	if err != nil {
		slog.Error("Payroll report service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rep)
}

// ExportCSV implements PayrollHandler.
func (h *PayrollHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	data, err := h.payrollService.ExportCSV(r.Context(), req)
	if err != nil {
		slog.Error("Payroll CSV export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("payroll_%s_%s.csv", req.From, req.To)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ExportXLSX implements PayrollHandler.
func (h *PayrollHandlerImpl) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	data, err := h.payrollService.ExportXLSX(r.Context(), req)
	if err != nil {
		slog.Error("Payroll XLSX export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("payroll_%s_%s.xlsx", req.From, req.To)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ExportText implements PayrollHandler.
func (h *PayrollHandlerImpl) ExportText(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	text, err := h.payrollService.ExportText(r.Context(), req)
	if err != nil {
		slog.Error("Payroll text export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}
