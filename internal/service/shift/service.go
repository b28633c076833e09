package shift

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/claims"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

// Audit labels written to last_action on every mutation.
const (
	actionClockIn     = "clock_in"
	actionClockOut    = "clock_out"
	actionManualClose = "manual_close"
	actionReviewClose = "manual_close_reviewed"
	actionManagerEdit = "manager_edit"
	actionExcluded    = "excluded"
	actionRestored    = "restored"
)

type ShiftServiceImpl struct {
	shiftRepo shift.ShiftRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{shiftRepo: shiftRepo}
}

func (s *ShiftServiceImpl) ClockIn(ctx context.Context, req shift.ClockInRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if err := caller.RequireStore(req.StoreID); err != nil {
		return shift.ShiftResponse{}, err
	}

	open, err := s.shiftRepo.GetOpenByProfile(ctx, caller.UserID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if open != nil {
		return shift.ShiftResponse{}, shift.ErrAlreadyClockedIn
	}

	now := time.Now().UTC()
	rec := shift.Shift{
		ID:         uuid.NewString(),
		StoreID:    req.StoreID,
		ProfileID:  caller.UserID,
		ShiftType:  shift.Kind(req.ShiftType),
		StartedAt:  now,
		LastAction: actionClockIn,
	}
	if req.PlannedStartAt != nil {
		planned, _ := validator.IsValidDateTime(*req.PlannedStartAt)
		rec.PlannedStartAt = &planned
	}

	created, err := s.shiftRepo.Create(ctx, rec)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(created), nil
}

func (s *ShiftServiceImpl) ClockOut(ctx context.Context) (shift.ShiftResponse, error) {
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	open, err := s.shiftRepo.GetOpenByProfile(ctx, caller.UserID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if open == nil {
		return shift.ShiftResponse{}, shift.ErrNotClockedIn
	}

	now := time.Now().UTC()
	if now.Before(open.StartedAt) {
		return shift.ShiftResponse{}, shift.ErrEndBeforeStart
	}
	open.EndedAt = &now
	open.LastAction = actionClockOut

	if err := s.shiftRepo.Update(ctx, *open); err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(*open), nil
}

func (s *ShiftServiceImpl) ManualClose(ctx context.Context, req shift.ManualCloseRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	open, err := s.shiftRepo.GetOpenByProfile(ctx, caller.UserID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if open == nil {
		return shift.ShiftResponse{}, shift.ErrNotClockedIn
	}

	endedAt, _ := validator.IsValidDateTime(req.EndedAt)
	endedAt = endedAt.UTC()
	if endedAt.Before(open.StartedAt) {
		return shift.ShiftResponse{}, shift.ErrEndBeforeStart
	}

	open.EndedAt = &endedAt
	open.Note = req.Note
	open.ManualClosed = true
	open.ManualClosedReviewedAt = nil
	open.LastAction = actionManualClose

	if err := s.shiftRepo.Update(ctx, *open); err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(*open), nil
}

func (s *ShiftServiceImpl) ReviewManualClose(ctx context.Context, shiftID string) (shift.ShiftResponse, error) {
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if err := caller.RequireManager(); err != nil {
		return shift.ShiftResponse{}, err
	}

	rec, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if err := caller.RequireStore(rec.StoreID); err != nil {
		return shift.ShiftResponse{}, err
	}
	if !rec.PendingOverride() {
		return shift.ShiftResponse{}, shift.ErrNotPendingReview
	}

	now := time.Now().UTC()
	rec.ManualClosedReviewedAt = &now
	rec.LastAction = actionReviewClose

	if err := s.shiftRepo.Update(ctx, rec); err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(rec), nil
}

func (s *ShiftServiceImpl) Edit(ctx context.Context, req shift.EditShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if err := caller.RequireManager(); err != nil {
		return shift.ShiftResponse{}, err
	}

	rec, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if err := caller.RequireStore(rec.StoreID); err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.StartedAt != nil {
		t, _ := validator.IsValidDateTime(*req.StartedAt)
		rec.StartedAt = t.UTC()
	}
	if req.EndedAt != nil {
		t, _ := validator.IsValidDateTime(*req.EndedAt)
		t = t.UTC()
		rec.EndedAt = &t
	}
	if rec.EndedAt != nil && rec.EndedAt.Before(rec.StartedAt) {
		return shift.ShiftResponse{}, shift.ErrEndBeforeStart
	}
	if req.ShiftType != nil {
		rec.ShiftType = shift.Kind(*req.ShiftType)
	}
	if req.Note != nil {
		rec.Note = req.Note
	}
	rec.LastAction = actionManagerEdit

	if err := s.shiftRepo.Update(ctx, rec); err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(rec), nil
}

func (s *ShiftServiceImpl) SetExcluded(ctx context.Context, shiftID string, excluded bool) error {
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return err
	}
	if err := caller.RequireManager(); err != nil {
		return err
	}

	rec, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return err
	}
	if err := caller.RequireStore(rec.StoreID); err != nil {
		return err
	}

	action := actionExcluded
	if !excluded {
		action = actionRestored
	}
	return s.shiftRepo.SetExcluded(ctx, shiftID, excluded, action)
}

func (s *ShiftServiceImpl) List(ctx context.Context, req shift.ListShiftsRequest) ([]shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := caller.RequireStore(req.StoreID); err != nil {
		return nil, err
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)
	to = to.AddDate(0, 0, 1)

	rows, err := s.shiftRepo.ListByPeriod(ctx, []string{req.StoreID}, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]shift.ShiftResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, shift.ToResponse(r))
	}
	return out, nil
}

func (s *ShiftServiceImpl) Current(ctx context.Context) (*shift.ShiftResponse, error) {
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	open, err := s.shiftRepo.GetOpenByProfile(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, nil
	}
	resp := shift.ToResponse(*open)
	return &resp, nil
}
