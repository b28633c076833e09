package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shiftline/shiftline-backend-go/internal/domain/schedule"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/claims"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

type ScheduleServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
}

func NewScheduleService(scheduleRepo schedule.ScheduleRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{scheduleRepo: scheduleRepo}
}

func (s *ScheduleServiceImpl) Create(ctx context.Context, req schedule.CreateEntryRequest) (schedule.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.EntryResponse{}, err
	}
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return schedule.EntryResponse{}, err
	}
	if err := caller.RequireManager(); err != nil {
		return schedule.EntryResponse{}, err
	}
	if err := caller.RequireStore(req.StoreID); err != nil {
		return schedule.EntryResponse{}, err
	}

	start, _ := validator.IsValidDateTime(req.ScheduledStart)
	end, _ := validator.IsValidDateTime(req.ScheduledEnd)

	rec := schedule.Entry{
		ID:             uuid.NewString(),
		ProfileID:      req.ProfileID,
		StoreID:        req.StoreID,
		ScheduledStart: start.UTC(),
		ScheduledEnd:   end.UTC(),
	}

	created, err := s.scheduleRepo.Create(ctx, rec)
	if err != nil {
		return schedule.EntryResponse{}, err
	}
	return schedule.ToResponse(created), nil
}

func (s *ScheduleServiceImpl) Delete(ctx context.Context, id string) error {
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return err
	}
	if err := caller.RequireManager(); err != nil {
		return err
	}

	rec, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := caller.RequireStore(rec.StoreID); err != nil {
		return err
	}

	return s.scheduleRepo.Delete(ctx, id)
}

func (s *ScheduleServiceImpl) List(ctx context.Context, storeID string, from, to time.Time) ([]schedule.EntryResponse, error) {
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := caller.RequireStore(storeID); err != nil {
		return nil, err
	}

	rows, err := s.scheduleRepo.ListByPeriod(ctx, []string{storeID}, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]schedule.EntryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, schedule.ToResponse(r))
	}
	return out, nil
}
