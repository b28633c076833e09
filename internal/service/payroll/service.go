package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/domain/advance"
	"github.com/shiftline/shiftline-backend-go/internal/domain/payroll"
	"github.com/shiftline/shiftline-backend-go/internal/domain/schedule"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/domain/store"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/claims"
	"golang.org/x/sync/errgroup"
)

// Caps one report run; longer spans belong in separate reports.
const maxReportSpanDays = 366

type PayrollServiceImpl struct {
	shiftRepo    shift.ShiftRepository
	advanceRepo  advance.AdvanceRepository
	scheduleRepo schedule.ScheduleRepository
	storeRepo    store.StoreRepository
}

func NewPayrollService(
	shiftRepo shift.ShiftRepository,
	advanceRepo advance.AdvanceRepository,
	scheduleRepo schedule.ScheduleRepository,
	storeRepo store.StoreRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		shiftRepo:    shiftRepo,
		advanceRepo:  advanceRepo,
		scheduleRepo: scheduleRepo,
		storeRepo:    storeRepo,
	}
}

// generate runs one full report: snapshot, aggregate, reconcile.
// The schedule fetch is non-fatal only for past-only reports, where the
// schedule feeds nothing but the advisory reconciliation section. When
// the period still has days ahead of asOf the schedule also drives
// projected hours, so a failure there must fail the whole report.
func (s *PayrollServiceImpl) generate(ctx context.Context, req payroll.ReportRequest) (payroll.Report, []payroll.ShiftLine, error) {
	if err := req.Validate(); err != nil {
		return payroll.Report{}, nil, err
	}
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return payroll.Report{}, nil, err
	}
	if err := caller.RequireStore(req.StoreID); err != nil {
		return payroll.Report{}, nil, err
	}

	now := time.Now().UTC()
	from, to, asOf := req.Period(now)
	if to.Sub(from) > maxReportSpanDays*24*time.Hour {
		return payroll.Report{}, nil, fmt.Errorf("%w: span exceeds %d days", payroll.ErrInvalidPeriod, maxReportSpanDays)
	}

	storeIDs := []string{req.StoreID}

	var (
		st          store.Store
		shifts      []shift.Shift
		advances    []advance.Advance
		entries     []schedule.Entry
		scheduleErr error
	)

	// The four snapshot reads are independent; fetch them in parallel
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		st, err = s.storeRepo.GetByID(gctx, req.StoreID)
		return err
	})
	g.Go(func() error {
		var err error
		shifts, err = s.shiftRepo.ListByPeriod(gctx, storeIDs, from, to)
		if err != nil {
			return fmt.Errorf("%w: shifts: %v", payroll.ErrSnapshotFailed, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		advances, err = s.advanceRepo.ListByPeriod(gctx, storeIDs, from, to)
		if err != nil {
			return fmt.Errorf("%w: advances: %v", payroll.ErrSnapshotFailed, err)
		}
		return nil
	})
	g.Go(func() error {
		entries, scheduleErr = s.scheduleRepo.ListByPeriod(gctx, storeIDs, from, to)
		return nil
	})
	if err := g.Wait(); err != nil {
		return payroll.Report{}, nil, err
	}

	// A closed shift ending before it started is corrupt data; refuse to
	// report on it rather than silently zeroing the row
	for _, sh := range shifts {
		if sh.EndedAt != nil && sh.EndedAt.Before(sh.StartedAt) {
			return payroll.Report{}, nil, fmt.Errorf("%w: shift %s", payroll.ErrMalformedShift, sh.ID)
		}
	}

	snap := payroll.Snapshot{
		Shifts:   shifts,
		Advances: advances,
		Schedule: entries,
		Stores: map[string]payroll.StoreConfig{
			st.ID: {
				LaborTier:         st.LaborTier,
				VarianceWarnHours: st.PayrollVarianceWarnHours,
				DriftWarnHours:    st.PayrollShiftDriftWarnHours,
			},
		},
	}

	employees, totals := Aggregate(snap, from, to, asOf, req.ProfileID)
	lines := ShiftLines(snap, asOf, req.ProfileID)

	rep := payroll.Report{
		StoreID:     req.StoreID,
		From:        req.From,
		To:          req.To,
		AsOf:        asOf.Format(time.RFC3339),
		GeneratedAt: now.Format(time.RFC3339),
		Employees:   employees,
		Totals:      totals,
	}

	if scheduleErr != nil {
		if asOf.Before(to) {
			// Projected hours come from schedule slots; reporting zero for
			// them because the source is down would under-count pay
			return payroll.Report{}, nil, fmt.Errorf("%w: schedule: %v", payroll.ErrSnapshotFailed, scheduleErr)
		}
		// Past-only report: the schedule only feeds the advisory
		// cross-check, so degrade instead of failing
		slog.Warn("payroll reconciliation skipped, schedule source unavailable",
			"store_id", req.StoreID, "error", scheduleErr)
		return rep, lines, nil
	}

	open := OpenScheduleTotals(entries, snap.Stores)
	gross := totals.WorkedHours + totals.ProjectedHours
	diff, balanced := ReconciliationDiff(gross, open)
	rep.Reconciliation = &payroll.Reconciliation{
		OpenTotals:       open,
		Diff:             diff,
		Balanced:         balanced,
		VarianceExceeded: VarianceExceeded(diff, snap.Stores, req.StoreID),
		Anomalies:        DetectAnomalies(shifts, entries, snap.Stores),
	}
	return rep, lines, nil
}

func (s *PayrollServiceImpl) GenerateReport(ctx context.Context, req payroll.ReportRequest) (payroll.Report, error) {
	rep, _, err := s.generate(ctx, req)
	return rep, err
}

func (s *PayrollServiceImpl) ExportCSV(ctx context.Context, req payroll.ReportRequest) ([]byte, error) {
	_, lines, err := s.generate(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, payroll.ErrNothingToExport
	}
	return RenderCSV(lines)
}

func (s *PayrollServiceImpl) ExportXLSX(ctx context.Context, req payroll.ReportRequest) ([]byte, error) {
	rep, lines, err := s.generate(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, payroll.ErrNothingToExport
	}
	return RenderXLSX(rep, lines)
}

func (s *PayrollServiceImpl) ExportText(ctx context.Context, req payroll.ReportRequest) (string, error) {
	rep, _, err := s.generate(ctx, req)
	if err != nil {
		return "", err
	}
	return RenderText(rep), nil
}
