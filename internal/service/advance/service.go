package advance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shiftline/shiftline-backend-go/internal/domain/advance"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/claims"
)

type AdvanceServiceImpl struct {
	advanceRepo advance.AdvanceRepository
}

func NewAdvanceService(advanceRepo advance.AdvanceRepository) advance.AdvanceService {
	return &AdvanceServiceImpl{advanceRepo: advanceRepo}
}

func (s *AdvanceServiceImpl) Create(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	if err := caller.RequireManager(); err != nil {
		return advance.AdvanceResponse{}, err
	}
	if req.StoreID != nil {
		if err := caller.RequireStore(*req.StoreID); err != nil {
			return advance.AdvanceResponse{}, err
		}
	}

	rec := advance.Advance{
		ID:           uuid.NewString(),
		ProfileID:    req.ProfileID,
		StoreID:      req.StoreID,
		AdvanceDate:  req.ParsedDate(),
		AdvanceHours: req.AdvanceHours,
		CashCents:    req.CashCents,
		Note:         req.Note,
		Status:       advance.StatusPending,
		CreatedBy:    caller.UserID,
	}

	created, err := s.advanceRepo.Create(ctx, rec)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	return advance.ToResponse(created), nil
}

func (s *AdvanceServiceImpl) Resolve(ctx context.Context, req advance.ResolveAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	if err := caller.RequireManager(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	rec, err := s.advanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	if rec.StoreID != nil {
		if err := caller.RequireStore(*rec.StoreID); err != nil {
			return advance.AdvanceResponse{}, err
		}
	}
	if rec.Status != advance.StatusPending {
		return advance.AdvanceResponse{}, advance.ErrAdvanceAlreadyProcessed
	}

	status := advance.Status(req.Status)
	if err := s.advanceRepo.SetStatus(ctx, req.ID, status); err != nil {
		return advance.AdvanceResponse{}, err
	}
	rec.Status = status
	return advance.ToResponse(rec), nil
}

func (s *AdvanceServiceImpl) List(ctx context.Context, storeID string, from, to time.Time) ([]advance.AdvanceResponse, error) {
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := caller.RequireStore(storeID); err != nil {
		return nil, err
	}

	rows, err := s.advanceRepo.ListByPeriod(ctx, []string{storeID}, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]advance.AdvanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, advance.ToResponse(r))
	}
	return out, nil
}
