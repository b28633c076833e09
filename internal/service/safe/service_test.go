package safe

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftline/shiftline-backend-go/internal/domain/safe"
	"github.com/shiftline/shiftline-backend-go/internal/domain/store"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSafeRepo struct {
	entries  []safe.Entry
	existing *safe.Entry
	created  *safe.Entry
}

func (f *fakeSafeRepo) Create(ctx context.Context, e safe.Entry) (safe.Entry, error) {
	f.created = &e
	return e, nil
}

func (f *fakeSafeRepo) GetByID(ctx context.Context, id string) (safe.Entry, error) {
	return safe.Entry{}, safe.ErrEntryNotFound
}

func (f *fakeSafeRepo) GetByStoreAndDate(ctx context.Context, storeID string, date time.Time) (*safe.Entry, error) {
	return f.existing, nil
}

func (f *fakeSafeRepo) ListByPeriod(ctx context.Context, storeID string, from, to time.Time) ([]safe.Entry, error) {
	return f.entries, nil
}

type fakeStoreRepo struct {
	store store.Store
}

func (f *fakeStoreRepo) Create(ctx context.Context, s store.Store) (store.Store, error) {
	return s, nil
}

func (f *fakeStoreRepo) GetByID(ctx context.Context, id string) (store.Store, error) {
	return f.store, nil
}

func (f *fakeStoreRepo) GetByIDs(ctx context.Context, ids []string) ([]store.Store, error) {
	return []store.Store{f.store}, nil
}

func (f *fakeStoreRepo) List(ctx context.Context) ([]store.Store, error) {
	return []store.Store{f.store}, nil
}

func (f *fakeStoreRepo) Update(ctx context.Context, s store.Store) error { return nil }

func employeeContext(t *testing.T, storeIDs []string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("safe-test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":   "emp-1",
		"email":     "employee@example.com",
		"role":      string(user.RoleEmployee),
		"store_ids": storeIDs,
		"type":      "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestSafeService_RecordCount(t *testing.T) {
	ctx := employeeContext(t, []string{"str-1"})
	repo := &fakeSafeRepo{}
	svc := NewSafeService(repo, &fakeStoreRepo{store: store.Store{ID: "str-1", ExpectedDrawerCents: 500_00}})

	row, err := svc.RecordCount(ctx, safe.RecordCountRequest{
		StoreID: "str-1", CountDate: "2026-03-02", CountedCents: 487_50,
	})

	require.NoError(t, err)
	assert.Equal(t, "487.50", row.Counted)
	assert.Equal(t, "500.00", row.Expected)
	assert.Equal(t, "-12.50", row.Variance)
	assert.False(t, row.Balanced)

	require.NotNil(t, repo.created)
	assert.Equal(t, "emp-1", repo.created.RecordedBy)
}

func TestSafeService_RecordCount_Balanced(t *testing.T) {
	ctx := employeeContext(t, []string{"str-1"})
	svc := NewSafeService(&fakeSafeRepo{}, &fakeStoreRepo{store: store.Store{ID: "str-1", ExpectedDrawerCents: 500_00}})

	row, err := svc.RecordCount(ctx, safe.RecordCountRequest{
		StoreID: "str-1", CountDate: "2026-03-02", CountedCents: 500_00,
	})

	require.NoError(t, err)
	assert.Equal(t, "0.00", row.Variance)
	assert.True(t, row.Balanced)
}

func TestSafeService_RecordCount_Duplicate(t *testing.T) {
	ctx := employeeContext(t, []string{"str-1"})
	repo := &fakeSafeRepo{existing: &safe.Entry{ID: "cnt-1"}}
	svc := NewSafeService(repo, &fakeStoreRepo{store: store.Store{ID: "str-1"}})

	_, err := svc.RecordCount(ctx, safe.RecordCountRequest{
		StoreID: "str-1", CountDate: "2026-03-02", CountedCents: 100_00,
	})

	assert.ErrorIs(t, err, safe.ErrDuplicateCount)
}

func TestSafeService_RecordCount_StoreOutsideScope(t *testing.T) {
	ctx := employeeContext(t, []string{"str-2"})
	svc := NewSafeService(&fakeSafeRepo{}, &fakeStoreRepo{})

	_, err := svc.RecordCount(ctx, safe.RecordCountRequest{
		StoreID: "str-1", CountDate: "2026-03-02", CountedCents: 100_00,
	})

	assert.ErrorIs(t, err, user.ErrStoreOutsideScope)
}

func TestSafeService_Ledger(t *testing.T) {
	ctx := employeeContext(t, []string{"str-1"})
	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }
	repo := &fakeSafeRepo{entries: []safe.Entry{
		{ID: "cnt-1", StoreID: "str-1", CountDate: day(2), CountedCents: 500_00},
		{ID: "cnt-2", StoreID: "str-1", CountDate: day(3), CountedCents: 512_00},
		{ID: "cnt-3", StoreID: "str-1", CountDate: day(4), CountedCents: 495_00},
	}}
	svc := NewSafeService(repo, &fakeStoreRepo{store: store.Store{ID: "str-1", ExpectedDrawerCents: 500_00}})

	ledger, err := svc.Ledger(ctx, safe.LedgerRequest{StoreID: "str-1", From: "2026-03-02", To: "2026-03-08"})

	require.NoError(t, err)
	require.Len(t, ledger.Rows, 3)
	assert.True(t, ledger.Rows[0].Balanced)
	assert.Equal(t, "12.00", ledger.Rows[1].Variance)
	assert.Equal(t, "-5.00", ledger.Rows[2].Variance)
	assert.Equal(t, "7.00", ledger.TotalVariance)
}
