package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shiftline/shiftline-backend-go/internal/domain/sales"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/claims"
	"golang.org/x/sync/errgroup"
)

type SalesServiceImpl struct {
	salesRepo sales.SalesRepository
}

func NewSalesService(salesRepo sales.SalesRepository) sales.SalesService {
	return &SalesServiceImpl{salesRepo: salesRepo}
}

func (s *SalesServiceImpl) UpsertRecord(ctx context.Context, req sales.UpsertRecordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return err
	}
	if err := caller.RequireManager(); err != nil {
		return err
	}
	if err := caller.RequireStore(req.StoreID); err != nil {
		return err
	}

	date, _ := time.Parse("2006-01-02", req.SaleDate)
	_, err = s.salesRepo.Upsert(ctx, sales.Record{
		ID:       uuid.NewString(),
		StoreID:  req.StoreID,
		SaleDate: date,
		NetCents: req.NetCents,
	})
	return err
}

func (s *SalesServiceImpl) Performance(ctx context.Context, req sales.PerformanceRequest) (sales.Performance, error) {
	if err := req.Validate(); err != nil {
		return sales.Performance{}, err
	}
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return sales.Performance{}, err
	}
	if err := caller.RequireStore(req.StoreID); err != nil {
		return sales.Performance{}, err
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)
	to = to.AddDate(0, 0, 1)

	// Previous period of equal length, ending where this one starts
	periodDays := int(to.Sub(from).Hours() / 24)
	prevFrom := from.AddDate(0, 0, -periodDays)

	var records, benchmark, previous []sales.Record

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.salesRepo.ListByPeriod(gctx, req.StoreID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		benchmark, err = s.salesRepo.ListAllByPeriod(gctx, caller.StoreIDs, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.salesRepo.ListByPeriod(gctx, req.StoreID, prevFrom, from)
		return err
	})
	if err := g.Wait(); err != nil {
		return sales.Performance{}, err
	}

	return Analyze(req.StoreID, req.From, req.To, records, benchmark, previous), nil
}
