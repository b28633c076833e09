package advance

import (
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AdvanceResponse struct {
	ID           string  `json:"id"`
	ProfileID    string  `json:"profile_id"`
	StoreID      *string `json:"store_id"`
	AdvanceDate  string  `json:"advance_date"`
	AdvanceHours float64 `json:"advance_hours"`
	Cash         *string `json:"cash,omitempty"`
	Note         *string `json:"note"`
	Status       string  `json:"status"`
	FullName     *string `json:"full_name,omitempty"`
}

func ToResponse(a Advance) AdvanceResponse {
	resp := AdvanceResponse{
		ID:           a.ID,
		ProfileID:    a.ProfileID,
		StoreID:      a.StoreID,
		AdvanceDate:  a.AdvanceDate.Format("2006-01-02"),
		AdvanceHours: a.AdvanceHours,
		Note:         a.Note,
		Status:       string(a.Status),
		FullName:     a.FullName,
	}
	if a.CashCents != nil {
		cash := decimal.NewFromInt(*a.CashCents).Div(decimal.NewFromInt(100)).StringFixed(2)
		resp.Cash = &cash
	}
	return resp
}

type CreateAdvanceRequest struct {
	ProfileID    string  `json:"profile_id"`
	StoreID      *string `json:"store_id,omitempty"`
	AdvanceDate  string  `json:"advance_date"`
	AdvanceHours float64 `json:"advance_hours"`
	CashCents    *int64  `json:"cash_cents,omitempty"`
	Note         *string `json:"note,omitempty"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProfileID) {
		errs = append(errs, validator.ValidationError{Field: "profile_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.AdvanceDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "advance_date", Message: "must be a YYYY-MM-DD date"})
	}
	if !validator.IsValidHours(r.AdvanceHours) {
		errs = append(errs, validator.ValidationError{Field: "advance_hours", Message: "must be a non-negative multiple of 0.25"})
	}
	if r.AdvanceHours == 0 && r.CashCents == nil {
		errs = append(errs, validator.ValidationError{Field: "advance_hours", Message: "advance must carry hours or cash"})
	}
	if r.CashCents != nil && *r.CashCents < 0 {
		errs = append(errs, validator.ValidationError{Field: "cash_cents", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedDate returns the request date. Call after Validate.
func (r *CreateAdvanceRequest) ParsedDate() time.Time {
	t, _ := time.Parse("2006-01-02", r.AdvanceDate)
	return t
}

type ResolveAdvanceRequest struct {
	ID     string
	Status string `json:"status"`
}

func (r *ResolveAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusVerified) && r.Status != string(StatusVoided) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'verified' or 'voided'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
