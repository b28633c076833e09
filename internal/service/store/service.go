package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/shiftline/shiftline-backend-go/internal/domain/store"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/claims"
)

// Defaults applied when a store is registered without explicit
// reconciliation configuration.
const (
	defaultVarianceWarnHours   = 2.0
	defaultShiftDriftWarnHours = 1.0
)

type StoreServiceImpl struct {
	storeRepo store.StoreRepository
}

func NewStoreService(storeRepo store.StoreRepository) store.StoreService {
	return &StoreServiceImpl{storeRepo: storeRepo}
}

func (s *StoreServiceImpl) Create(ctx context.Context, req store.CreateStoreRequest) (store.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return store.StoreResponse{}, err
	}
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return store.StoreResponse{}, err
	}
	if err := caller.RequireManager(); err != nil {
		return store.StoreResponse{}, err
	}

	rec := store.Store{
		ID:                         uuid.NewString(),
		Name:                       req.Name,
		LaborTier:                  store.LaborTier(req.LaborTier),
		PayrollVarianceWarnHours:   defaultVarianceWarnHours,
		PayrollShiftDriftWarnHours: defaultShiftDriftWarnHours,
	}
	if req.ExpectedDrawerCents != nil {
		rec.ExpectedDrawerCents = *req.ExpectedDrawerCents
	}
	if req.PayrollVarianceWarnHours != nil {
		rec.PayrollVarianceWarnHours = *req.PayrollVarianceWarnHours
	}
	if req.PayrollShiftDriftWarnHours != nil {
		rec.PayrollShiftDriftWarnHours = *req.PayrollShiftDriftWarnHours
	}

	created, err := s.storeRepo.Create(ctx, rec)
	if err != nil {
		return store.StoreResponse{}, err
	}
	return store.ToResponse(created), nil
}

func (s *StoreServiceImpl) Update(ctx context.Context, req store.UpdateStoreRequest) (store.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return store.StoreResponse{}, err
	}
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return store.StoreResponse{}, err
	}
	if err := caller.RequireManager(); err != nil {
		return store.StoreResponse{}, err
	}
	if err := caller.RequireStore(req.ID); err != nil {
		return store.StoreResponse{}, err
	}

	rec, err := s.storeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return store.StoreResponse{}, err
	}

	if req.Name != nil {
		rec.Name = *req.Name
	}
	if req.LaborTier != nil {
		rec.LaborTier = store.LaborTier(*req.LaborTier)
	}
	if req.ExpectedDrawerCents != nil {
		rec.ExpectedDrawerCents = *req.ExpectedDrawerCents
	}
	if req.PayrollVarianceWarnHours != nil {
		rec.PayrollVarianceWarnHours = *req.PayrollVarianceWarnHours
	}
	if req.PayrollShiftDriftWarnHours != nil {
		rec.PayrollShiftDriftWarnHours = *req.PayrollShiftDriftWarnHours
	}

	if err := s.storeRepo.Update(ctx, rec); err != nil {
		return store.StoreResponse{}, err
	}
	return store.ToResponse(rec), nil
}

func (s *StoreServiceImpl) GetByID(ctx context.Context, id string) (store.StoreResponse, error) {
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return store.StoreResponse{}, err
	}
	if err := caller.RequireStore(id); err != nil {
		return store.StoreResponse{}, err
	}

	rec, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return store.StoreResponse{}, err
	}
	return store.ToResponse(rec), nil
}

// List returns the stores within the caller's scope.
func (s *StoreServiceImpl) List(ctx context.Context) ([]store.StoreResponse, error) {
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.storeRepo.GetByIDs(ctx, caller.StoreIDs)
	if err != nil {
		return nil, err
	}

	out := make([]store.StoreResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, store.ToResponse(r))
	}
	return out, nil
}
