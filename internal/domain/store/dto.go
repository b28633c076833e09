package store

import (
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

type StoreResponse struct {
	ID                         string  `json:"id"`
	Name                       string  `json:"name"`
	LaborTier                  string  `json:"labor_tier"`
	ExpectedDrawerCents        int64   `json:"expected_drawer_cents"`
	PayrollVarianceWarnHours   float64 `json:"payroll_variance_warn_hours"`
	PayrollShiftDriftWarnHours float64 `json:"payroll_shift_drift_warn_hours"`
}

func ToResponse(s Store) StoreResponse {
	return StoreResponse{
		ID:                         s.ID,
		Name:                       s.Name,
		LaborTier:                  string(s.LaborTier),
		ExpectedDrawerCents:        s.ExpectedDrawerCents,
		PayrollVarianceWarnHours:   s.PayrollVarianceWarnHours,
		PayrollShiftDriftWarnHours: s.PayrollShiftDriftWarnHours,
	}
}

type CreateStoreRequest struct {
	Name                       string   `json:"name"`
	LaborTier                  string   `json:"labor_tier"`
	ExpectedDrawerCents        *int64   `json:"expected_drawer_cents,omitempty"`
	PayrollVarianceWarnHours   *float64 `json:"payroll_variance_warn_hours,omitempty"`
	PayrollShiftDriftWarnHours *float64 `json:"payroll_shift_drift_warn_hours,omitempty"`
}

func (r *CreateStoreRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !LaborTier(r.LaborTier).Valid() {
		errs = append(errs, validator.ValidationError{Field: "labor_tier", Message: "must be 'lv1' or 'lv2'"})
	}
	if r.ExpectedDrawerCents != nil && *r.ExpectedDrawerCents < 0 {
		errs = append(errs, validator.ValidationError{Field: "expected_drawer_cents", Message: "must be non-negative"})
	}
	if r.PayrollVarianceWarnHours != nil && *r.PayrollVarianceWarnHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "payroll_variance_warn_hours", Message: "must be non-negative"})
	}
	if r.PayrollShiftDriftWarnHours != nil && *r.PayrollShiftDriftWarnHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "payroll_shift_drift_warn_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStoreRequest struct {
	ID                         string
	Name                       *string  `json:"name,omitempty"`
	LaborTier                  *string  `json:"labor_tier,omitempty"`
	ExpectedDrawerCents        *int64   `json:"expected_drawer_cents,omitempty"`
	PayrollVarianceWarnHours   *float64 `json:"payroll_variance_warn_hours,omitempty"`
	PayrollShiftDriftWarnHours *float64 `json:"payroll_shift_drift_warn_hours,omitempty"`
}

func (r *UpdateStoreRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.LaborTier != nil && !LaborTier(*r.LaborTier).Valid() {
		errs = append(errs, validator.ValidationError{Field: "labor_tier", Message: "must be 'lv1' or 'lv2'"})
	}
	if r.ExpectedDrawerCents != nil && *r.ExpectedDrawerCents < 0 {
		errs = append(errs, validator.ValidationError{Field: "expected_drawer_cents", Message: "must be non-negative"})
	}
	if r.PayrollVarianceWarnHours != nil && *r.PayrollVarianceWarnHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "payroll_variance_warn_hours", Message: "must be non-negative"})
	}
	if r.PayrollShiftDriftWarnHours != nil && *r.PayrollShiftDriftWarnHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "payroll_shift_drift_warn_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
