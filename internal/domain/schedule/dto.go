package schedule

import (
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

type EntryResponse struct {
	ID             string  `json:"id"`
	ProfileID      string  `json:"profile_id"`
	StoreID        string  `json:"store_id"`
	ScheduledStart string  `json:"scheduled_start"`
	ScheduledEnd   string  `json:"scheduled_end"`
	FullName       *string `json:"full_name,omitempty"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:             e.ID,
		ProfileID:      e.ProfileID,
		StoreID:        e.StoreID,
		ScheduledStart: e.ScheduledStart.UTC().Format(time.RFC3339),
		ScheduledEnd:   e.ScheduledEnd.UTC().Format(time.RFC3339),
		FullName:       e.FullName,
	}
}

type CreateEntryRequest struct {
	ProfileID      string `json:"profile_id"`
	StoreID        string `json:"store_id"`
	ScheduledStart string `json:"scheduled_start"`
	ScheduledEnd   string `json:"scheduled_end"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProfileID) {
		errs = append(errs, validator.ValidationError{Field: "profile_id", Message: "is required"})
	}
	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{Field: "store_id", Message: "is required"})
	}

	start, okStart := validator.IsValidDateTime(r.ScheduledStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "scheduled_start", Message: "must be an ISO8601 timestamp"})
	}
	end, okEnd := validator.IsValidDateTime(r.ScheduledEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "scheduled_end", Message: "must be an ISO8601 timestamp"})
	}
	if okStart && okEnd && !end.After(start) {
		errs = append(errs, validator.ValidationError{Field: "scheduled_end", Message: "must be after scheduled_start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
