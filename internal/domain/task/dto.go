package task

import (
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

type TaskResponse struct {
	ID           string  `json:"id"`
	StoreID      string  `json:"store_id"`
	AssigneeID   string  `json:"assignee_id"`
	Title        string  `json:"title"`
	Details      *string `json:"details"`
	Status       string  `json:"status"`
	CreatedBy    string  `json:"created_by"`
	CompletedAt  *string `json:"completed_at"`
	AssigneeName *string `json:"assignee_name,omitempty"`
}

func ToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:           t.ID,
		StoreID:      t.StoreID,
		AssigneeID:   t.AssigneeID,
		Title:        t.Title,
		Details:      t.Details,
		Status:       string(t.Status),
		CreatedBy:    t.CreatedBy,
		AssigneeName: t.AssigneeName,
	}
	if t.CompletedAt != nil {
		s := t.CompletedAt.UTC().Format(time.RFC3339)
		resp.CompletedAt = &s
	}
	return resp
}

type CreateTaskRequest struct {
	StoreID    string  `json:"store_id"`
	AssigneeID string  `json:"assignee_id"`
	Title      string  `json:"title"`
	Details    *string `json:"details,omitempty"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{Field: "store_id", Message: "is required"})
	}
	if validator.IsEmpty(r.AssigneeID) {
		errs = append(errs, validator.ValidationError{Field: "assignee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
