package safe

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shiftline/shiftline-backend-go/internal/domain/safe"
	"github.com/shiftline/shiftline-backend-go/internal/domain/store"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/claims"
)

type SafeServiceImpl struct {
	safeRepo  safe.SafeRepository
	storeRepo store.StoreRepository
}

func NewSafeService(safeRepo safe.SafeRepository, storeRepo store.StoreRepository) safe.SafeService {
	return &SafeServiceImpl{safeRepo: safeRepo, storeRepo: storeRepo}
}

// reconcile builds one ledger row from a count and the store's expected
// drawer amount.
func reconcile(e safe.Entry, expectedCents int64) safe.LedgerRow {
	variance := e.CountedCents - expectedCents
	return safe.LedgerRow{
		EntryID:   e.ID,
		CountDate: e.CountDate.Format("2006-01-02"),
		Counted:   safe.Cents(e.CountedCents),
		Expected:  safe.Cents(expectedCents),
		Variance:  safe.Cents(variance),
		Balanced:  variance == 0,
		Note:      e.Note,
	}
}

func (s *SafeServiceImpl) RecordCount(ctx context.Context, req safe.RecordCountRequest) (safe.LedgerRow, error) {
	if err := req.Validate(); err != nil {
		return safe.LedgerRow{}, err
	}
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return safe.LedgerRow{}, err
	}
	if err := caller.RequireStore(req.StoreID); err != nil {
		return safe.LedgerRow{}, err
	}

	date, _ := time.Parse("2006-01-02", req.CountDate)

	existing, err := s.safeRepo.GetByStoreAndDate(ctx, req.StoreID, date)
	if err != nil {
		return safe.LedgerRow{}, err
	}
	if existing != nil {
		return safe.LedgerRow{}, safe.ErrDuplicateCount
	}

	st, err := s.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		return safe.LedgerRow{}, err
	}

	rec := safe.Entry{
		ID:           uuid.NewString(),
		StoreID:      req.StoreID,
		CountDate:    date,
		CountedCents: req.CountedCents,
		Note:         req.Note,
		RecordedBy:   caller.UserID,
	}

	created, err := s.safeRepo.Create(ctx, rec)
	if err != nil {
		return safe.LedgerRow{}, err
	}
	return reconcile(created, st.ExpectedDrawerCents), nil
}

func (s *SafeServiceImpl) Ledger(ctx context.Context, req safe.LedgerRequest) (safe.Ledger, error) {
	if err := req.Validate(); err != nil {
		return safe.Ledger{}, err
	}
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return safe.Ledger{}, err
	}
	if err := caller.RequireStore(req.StoreID); err != nil {
		return safe.Ledger{}, err
	}

	st, err := s.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		return safe.Ledger{}, err
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)
	to = to.AddDate(0, 0, 1)

	entries, err := s.safeRepo.ListByPeriod(ctx, req.StoreID, from, to)
	if err != nil {
		return safe.Ledger{}, err
	}

	ledger := safe.Ledger{
		StoreID: req.StoreID,
		From:    req.From,
		To:      req.To,
		Rows:    make([]safe.LedgerRow, 0, len(entries)),
	}
	var totalVariance int64
	for _, e := range entries {
		row := reconcile(e, st.ExpectedDrawerCents)
		ledger.Rows = append(ledger.Rows, row)
		totalVariance += e.CountedCents - st.ExpectedDrawerCents
	}
	ledger.TotalVariance = safe.Cents(totalVariance)
	return ledger, nil
}
