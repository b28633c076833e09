package shift

import (
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

type ShiftResponse struct {
	ID             string  `json:"id"`
	StoreID        string  `json:"store_id"`
	ProfileID      string  `json:"profile_id"`
	ShiftType      string  `json:"shift_type"`
	PlannedStartAt *string `json:"planned_start_at"`
	StartedAt      string  `json:"started_at"`
	EndedAt        *string `json:"ended_at"`
	Note           *string `json:"note"`
	ManualClosed   bool    `json:"manual_closed"`
	ReviewedAt     *string `json:"manual_closed_reviewed_at"`
	LastAction     string  `json:"last_action"`
	Excluded       bool    `json:"excluded"`
	FullName       *string `json:"full_name,omitempty"`
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func ToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:             s.ID,
		StoreID:        s.StoreID,
		ProfileID:      s.ProfileID,
		ShiftType:      string(s.ShiftType),
		PlannedStartAt: formatTimePtr(s.PlannedStartAt),
		StartedAt:      s.StartedAt.UTC().Format(time.RFC3339),
		EndedAt:        formatTimePtr(s.EndedAt),
		Note:           s.Note,
		ManualClosed:   s.ManualClosed,
		ReviewedAt:     formatTimePtr(s.ManualClosedReviewedAt),
		LastAction:     s.LastAction,
		Excluded:       s.Excluded,
		FullName:       s.FullName,
	}
}

type ClockInRequest struct {
	StoreID        string  `json:"store_id"`
	ShiftType      string  `json:"shift_type"`
	PlannedStartAt *string `json:"planned_start_at,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{Field: "store_id", Message: "is required"})
	}
	if !Kind(r.ShiftType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "shift_type", Message: "must be one of 'open', 'close', 'double', 'other'"})
	}
	if r.PlannedStartAt != nil {
		if _, ok := validator.IsValidDateTime(*r.PlannedStartAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "planned_start_at", Message: "must be an ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ManualCloseRequest ends a shift outside the normal clock-out flow.
// The shift stays flagged until a manager reviews it.
type ManualCloseRequest struct {
	EndedAt string  `json:"ended_at"`
	Note    *string `json:"note,omitempty"`
}

func (r *ManualCloseRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDateTime(r.EndedAt); !ok {
		errs = append(errs, validator.ValidationError{Field: "ended_at", Message: "must be an ISO8601 timestamp"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EditShiftRequest is a manager correction of a shift record.
type EditShiftRequest struct {
	ID        string
	StartedAt *string `json:"started_at,omitempty"`
	EndedAt   *string `json:"ended_at,omitempty"`
	ShiftType *string `json:"shift_type,omitempty"`
	Note      *string `json:"note,omitempty"`
}

func (r *EditShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	var started, ended *time.Time
	if r.StartedAt != nil {
		t, ok := validator.IsValidDateTime(*r.StartedAt)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "started_at", Message: "must be an ISO8601 timestamp"})
		} else {
			started = &t
		}
	}
	if r.EndedAt != nil {
		t, ok := validator.IsValidDateTime(*r.EndedAt)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "ended_at", Message: "must be an ISO8601 timestamp"})
		} else {
			ended = &t
		}
	}
	if started != nil && ended != nil && ended.Before(*started) {
		errs = append(errs, validator.ValidationError{Field: "ended_at", Message: "must not be before started_at"})
	}
	if r.ShiftType != nil && !Kind(*r.ShiftType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "shift_type", Message: "must be one of 'open', 'close', 'double', 'other'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListShiftsRequest struct {
	StoreID string
	From    string
	To      string
}

func (r *ListShiftsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{Field: "store_id", Message: "is required"})
	}
	from, okFrom := validator.IsValidDate(r.From)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be a YYYY-MM-DD date"})
	}
	to, okTo := validator.IsValidDate(r.To)
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be a YYYY-MM-DD date"})
	}
	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must not be before from"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
