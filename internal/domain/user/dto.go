package user

import (
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

type UserResponse struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	Role     string   `json:"role"`
	StoreIDs []string `json:"store_ids"`
	Hourly   bool     `json:"hourly"`
	IsActive bool     `json:"is_active"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
		StoreIDs: u.StoreIDs,
		Hourly:   u.Hourly,
		IsActive: u.IsActive,
	}
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role"`
	StoreID  string `json:"store_id"`
	Hourly   bool   `json:"hourly"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if !Role(r.Role).Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be 'manager' or 'employee'"})
	}
	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{Field: "store_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
