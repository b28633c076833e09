package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftline/shiftline-backend-go/internal/domain/advance"
	"github.com/shiftline/shiftline-backend-go/internal/domain/payroll"
	"github.com/shiftline/shiftline-backend-go/internal/domain/schedule"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/domain/store"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShiftRepo struct {
	shifts []shift.Shift
	err    error
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	return s, nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) GetOpenByProfile(ctx context.Context, profileID string) (*shift.Shift, error) {
	return nil, nil
}

func (f *fakeShiftRepo) ListByPeriod(ctx context.Context, storeIDs []string, from, to time.Time) ([]shift.Shift, error) {
	return f.shifts, f.err
}

func (f *fakeShiftRepo) ListOpenOlderThan(ctx context.Context, cutoff time.Time) ([]shift.Shift, error) {
	return nil, nil
}

func (f *fakeShiftRepo) Update(ctx context.Context, s shift.Shift) error { return nil }

func (f *fakeShiftRepo) SetExcluded(ctx context.Context, id string, excluded bool, lastAction string) error {
	return nil
}

type fakeAdvanceRepo struct {
	advances []advance.Advance
	err      error
}

func (f *fakeAdvanceRepo) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	return a, nil
}

func (f *fakeAdvanceRepo) GetByID(ctx context.Context, id string) (advance.Advance, error) {
	return advance.Advance{}, advance.ErrAdvanceNotFound
}

func (f *fakeAdvanceRepo) ListByPeriod(ctx context.Context, storeIDs []string, from, to time.Time) ([]advance.Advance, error) {
	return f.advances, f.err
}

func (f *fakeAdvanceRepo) SetStatus(ctx context.Context, id string, status advance.Status) error {
	return nil
}

type fakeScheduleRepo struct {
	entries []schedule.Entry
	err     error
}

func (f *fakeScheduleRepo) Create(ctx context.Context, e schedule.Entry) (schedule.Entry, error) {
	return e, nil
}

func (f *fakeScheduleRepo) GetByID(ctx context.Context, id string) (schedule.Entry, error) {
	return schedule.Entry{}, schedule.ErrEntryNotFound
}

func (f *fakeScheduleRepo) ListByPeriod(ctx context.Context, storeIDs []string, from, to time.Time) ([]schedule.Entry, error) {
	return f.entries, f.err
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeStoreRepo struct {
	store store.Store
	err   error
}

func (f *fakeStoreRepo) Create(ctx context.Context, s store.Store) (store.Store, error) {
	return s, nil
}

func (f *fakeStoreRepo) GetByID(ctx context.Context, id string) (store.Store, error) {
	return f.store, f.err
}

func (f *fakeStoreRepo) GetByIDs(ctx context.Context, ids []string) ([]store.Store, error) {
	return []store.Store{f.store}, f.err
}

func (f *fakeStoreRepo) List(ctx context.Context) ([]store.Store, error) {
	return []store.Store{f.store}, f.err
}

func (f *fakeStoreRepo) Update(ctx context.Context, s store.Store) error { return nil }

// managerContext builds a request context carrying verified manager claims,
// the same shape the jwtauth middleware produces.
func managerContext(t *testing.T, storeIDs []string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("payroll-test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":   "mgr-1",
		"email":     "manager@example.com",
		"role":      string(user.RoleManager),
		"store_ids": storeIDs,
		"type":      "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func testService(shifts *fakeShiftRepo, advances *fakeAdvanceRepo, entries *fakeScheduleRepo, stores *fakeStoreRepo) payroll.PayrollService {
	return NewPayrollService(shifts, advances, entries, stores)
}

func TestPayrollService_GenerateReport(t *testing.T) {
	ctx := managerContext(t, []string{"str-1"})
	day1 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)

	svc := testService(
		&fakeShiftRepo{shifts: []shift.Shift{
			{ID: "s1", ProfileID: "u1", StoreID: "str-1", FullName: strPtr("Ana"),
				StartedAt: day1, EndedAt: timePtr(day1.Add(240 * time.Minute))},
			{ID: "s2", ProfileID: "u1", StoreID: "str-1", FullName: strPtr("Ana"),
				StartedAt: day2, EndedAt: timePtr(day2.Add(265 * time.Minute))},
		}},
		&fakeAdvanceRepo{advances: []advance.Advance{
			{ID: "a1", ProfileID: "u1", AdvanceHours: 1.0, Status: advance.StatusVerified},
		}},
		&fakeScheduleRepo{entries: []schedule.Entry{
			{ID: "e1", ProfileID: "u1", StoreID: "str-1",
				ScheduledStart: day1, ScheduledEnd: day1.Add(4 * time.Hour)},
			{ID: "e2", ProfileID: "u1", StoreID: "str-1",
				ScheduledStart: day2, ScheduledEnd: day2.Add(265 * time.Minute)},
		}},
		&fakeStoreRepo{store: store.Store{ID: "str-1", LaborTier: store.TierLV1, PayrollShiftDriftWarnHours: 1.0}},
	)

	asOf := "2026-03-08T00:00:00Z"
	rep, err := svc.GenerateReport(ctx, payroll.ReportRequest{
		StoreID: "str-1", From: "2026-03-02", To: "2026-03-08", AsOf: &asOf,
	})

	require.NoError(t, err)
	require.Len(t, rep.Employees, 1)
	assert.Equal(t, 8.5, rep.Employees[0].WorkedHours)
	assert.Equal(t, 1.0, rep.Employees[0].AdvanceHours)
	assert.Equal(t, 7.5, rep.Employees[0].SubmitHours)

	require.NotNil(t, rep.Reconciliation)
	assert.Equal(t, 8.5, rep.Reconciliation.OpenTotals.TotalHours)
	assert.Equal(t, 0.0, rep.Reconciliation.Diff)
	assert.True(t, rep.Reconciliation.Balanced)
	assert.False(t, rep.Reconciliation.VarianceExceeded)
	assert.Empty(t, rep.Reconciliation.Anomalies)
}

func TestPayrollService_GenerateReport_VarianceThreshold(t *testing.T) {
	ctx := managerContext(t, []string{"str-1"})
	day1 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	shifts := &fakeShiftRepo{shifts: []shift.Shift{
		{ID: "s1", ProfileID: "u1", StoreID: "str-1", FullName: strPtr("Ana"),
			StartedAt: day1, EndedAt: timePtr(day1.Add(4 * time.Hour)),
			Note: strPtr("sent home early")},
	}}
	entries := &fakeScheduleRepo{entries: []schedule.Entry{
		{ID: "e1", ProfileID: "u1", StoreID: "str-1",
			ScheduledStart: day1, ScheduledEnd: day1.Add(6 * time.Hour)},
	}}

	asOf := "2026-03-09T00:00:00Z"
	req := payroll.ReportRequest{
		StoreID: "str-1", From: "2026-03-02", To: "2026-03-08", AsOf: &asOf,
	}

	// Tight store threshold: a 2h shortfall escalates
	svc := testService(shifts, &fakeAdvanceRepo{}, entries,
		&fakeStoreRepo{store: store.Store{ID: "str-1", LaborTier: store.TierLV1, PayrollVarianceWarnHours: 1.0}})
	rep, err := svc.GenerateReport(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, rep.Reconciliation)
	assert.Equal(t, -2.0, rep.Reconciliation.Diff)
	assert.False(t, rep.Reconciliation.Balanced)
	assert.True(t, rep.Reconciliation.VarianceExceeded)

	// Loose store threshold: the same shortfall stays a routine check
	svc = testService(shifts, &fakeAdvanceRepo{}, entries,
		&fakeStoreRepo{store: store.Store{ID: "str-1", LaborTier: store.TierLV1, PayrollVarianceWarnHours: 4.0}})
	rep, err = svc.GenerateReport(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, rep.Reconciliation)
	assert.False(t, rep.Reconciliation.VarianceExceeded)
}

func TestPayrollService_GenerateReport_ScheduleSourceDown(t *testing.T) {
	ctx := managerContext(t, []string{"str-1"})
	day1 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	svc := testService(
		&fakeShiftRepo{shifts: []shift.Shift{
			{ID: "s1", ProfileID: "u1", StoreID: "str-1",
				StartedAt: day1, EndedAt: timePtr(day1.Add(4 * time.Hour))},
		}},
		&fakeAdvanceRepo{},
		&fakeScheduleRepo{err: schedule.ErrSourceUnhealthy},
		&fakeStoreRepo{store: store.Store{ID: "str-1", LaborTier: store.TierLV1}},
	)

	// asOf past the period end: no projected hours depend on the schedule
	asOf := "2026-03-09T00:00:00Z"
	rep, err := svc.GenerateReport(ctx, payroll.ReportRequest{
		StoreID: "str-1", From: "2026-03-02", To: "2026-03-08", AsOf: &asOf,
	})

	// Payroll still renders; only the cross-check section is dropped
	require.NoError(t, err)
	require.Len(t, rep.Employees, 1)
	assert.Equal(t, 4.0, rep.Totals.WorkedHours)
	assert.Nil(t, rep.Reconciliation)
}

func TestPayrollService_GenerateReport_ScheduleSourceDownMidPeriod(t *testing.T) {
	ctx := managerContext(t, []string{"str-1"})
	day1 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	svc := testService(
		&fakeShiftRepo{shifts: []shift.Shift{
			{ID: "s1", ProfileID: "u1", StoreID: "str-1",
				StartedAt: day1, EndedAt: timePtr(day1.Add(4 * time.Hour))},
		}},
		&fakeAdvanceRepo{},
		&fakeScheduleRepo{err: schedule.ErrSourceUnhealthy},
		&fakeStoreRepo{store: store.Store{ID: "str-1", LaborTier: store.TierLV1}},
	)

	// asOf inside the period: remaining days would be projected from the
	// schedule, so its outage cannot be papered over with zeros
	asOf := "2026-03-05T00:00:00Z"
	_, err := svc.GenerateReport(ctx, payroll.ReportRequest{
		StoreID: "str-1", From: "2026-03-02", To: "2026-03-08", AsOf: &asOf,
	})

	assert.ErrorIs(t, err, payroll.ErrSnapshotFailed)
}

func TestPayrollService_GenerateReport_SnapshotFailure(t *testing.T) {
	ctx := managerContext(t, []string{"str-1"})

	svc := testService(
		&fakeShiftRepo{err: errors.New("connection refused")},
		&fakeAdvanceRepo{},
		&fakeScheduleRepo{},
		&fakeStoreRepo{store: store.Store{ID: "str-1"}},
	)

	_, err := svc.GenerateReport(ctx, payroll.ReportRequest{
		StoreID: "str-1", From: "2026-03-02", To: "2026-03-08",
	})

	assert.ErrorIs(t, err, payroll.ErrSnapshotFailed)
}

func TestPayrollService_GenerateReport_StoreOutsideScope(t *testing.T) {
	ctx := managerContext(t, []string{"str-2"})

	svc := testService(&fakeShiftRepo{}, &fakeAdvanceRepo{}, &fakeScheduleRepo{}, &fakeStoreRepo{})

	_, err := svc.GenerateReport(ctx, payroll.ReportRequest{
		StoreID: "str-1", From: "2026-03-02", To: "2026-03-08",
	})

	assert.ErrorIs(t, err, user.ErrStoreOutsideScope)
}

func TestPayrollService_GenerateReport_InvalidPeriod(t *testing.T) {
	ctx := managerContext(t, []string{"str-1"})

	svc := testService(&fakeShiftRepo{}, &fakeAdvanceRepo{}, &fakeScheduleRepo{}, &fakeStoreRepo{})

	_, err := svc.GenerateReport(ctx, payroll.ReportRequest{
		StoreID: "str-1", From: "2026-03-08", To: "2026-03-02",
	})

	assert.Error(t, err)
}

func TestPayrollService_GenerateReport_EmptyPeriod(t *testing.T) {
	ctx := managerContext(t, []string{"str-1"})

	svc := testService(
		&fakeShiftRepo{},
		&fakeAdvanceRepo{},
		&fakeScheduleRepo{},
		&fakeStoreRepo{store: store.Store{ID: "str-1", LaborTier: store.TierLV1}},
	)

	rep, err := svc.GenerateReport(ctx, payroll.ReportRequest{
		StoreID: "str-1", From: "2026-03-02", To: "2026-03-08",
	})

	// No data is a valid answer, not a failure
	require.NoError(t, err)
	assert.Empty(t, rep.Employees)
	assert.Equal(t, 0.0, rep.Totals.SubmitHours)
	require.NotNil(t, rep.Reconciliation)
	assert.True(t, rep.Reconciliation.Balanced)
}

func TestPayrollService_GenerateReport_MalformedShift(t *testing.T) {
	ctx := managerContext(t, []string{"str-1"})
	day1 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	backwards := day1.Add(-2 * time.Hour)

	svc := testService(
		&fakeShiftRepo{shifts: []shift.Shift{
			{ID: "s1", ProfileID: "u1", StoreID: "str-1",
				StartedAt: day1, EndedAt: &backwards},
		}},
		&fakeAdvanceRepo{},
		&fakeScheduleRepo{},
		&fakeStoreRepo{store: store.Store{ID: "str-1"}},
	)

	_, err := svc.GenerateReport(ctx, payroll.ReportRequest{
		StoreID: "str-1", From: "2026-03-02", To: "2026-03-08",
	})

	assert.ErrorIs(t, err, payroll.ErrMalformedShift)
}

func TestPayrollService_ExportCSV_Empty(t *testing.T) {
	ctx := managerContext(t, []string{"str-1"})

	svc := testService(
		&fakeShiftRepo{},
		&fakeAdvanceRepo{},
		&fakeScheduleRepo{},
		&fakeStoreRepo{store: store.Store{ID: "str-1"}},
	)

	_, err := svc.ExportCSV(ctx, payroll.ReportRequest{
		StoreID: "str-1", From: "2026-03-02", To: "2026-03-08",
	})

	assert.ErrorIs(t, err, payroll.ErrNothingToExport)
}

func TestPayrollService_ExportCSV(t *testing.T) {
	ctx := managerContext(t, []string{"str-1"})
	day1 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	svc := testService(
		&fakeShiftRepo{shifts: []shift.Shift{
			{ID: "s1", ProfileID: "u1", StoreID: "str-1", FullName: strPtr("Ana"),
				StartedAt: day1, EndedAt: timePtr(day1.Add(4 * time.Hour))},
		}},
		&fakeAdvanceRepo{},
		&fakeScheduleRepo{},
		&fakeStoreRepo{store: store.Store{ID: "str-1"}},
	)

	asOf := "2026-03-08T00:00:00Z"
	out, err := svc.ExportCSV(ctx, payroll.ReportRequest{
		StoreID: "str-1", From: "2026-03-02", To: "2026-03-08", AsOf: &asOf,
	})

	require.NoError(t, err)
	assert.Contains(t, string(out), "shift_id,user_id,full_name,store_id,start_at,end_at,minutes,rounded_hours\n")
	assert.Contains(t, string(out), "s1,u1,Ana,str-1,2026-03-02T09:00:00Z,2026-03-02T13:00:00Z,240,4\n")
}
