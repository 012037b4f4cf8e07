package note

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
)

type NoteFilter struct {
	Status string
}

func (f *NoteFilter) Validate() error {
	if f.Status != "" && !Status(f.Status).Valid() {
		return validator.Single("status", "must be 'Pending' or 'Done'")
	}
	return nil
}

func (f NoteFilter) Matches(n Note) bool {
	return f.Status == "" || string(n.Status) == f.Status
}

type CreateNoteRequest struct {
	Content        string `json:"content"`
	TargetDateTime string `json:"target_date_time"`
	Status         string `json:"status,omitempty"`
}

func (r *CreateNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "is required"})
	}
	if validator.IsEmpty(r.TargetDateTime) {
		errs = append(errs, validator.ValidationError{Field: "target_date_time", Message: "is required"})
	} else if _, ok := validator.IsValidDateTime(r.TargetDateTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "target_date_time", Message: "must be an ISO 8601 date-time"})
	}
	if r.Status != "" && !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'Pending' or 'Done'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateNoteRequest) ToEntity() Note {
	target, _ := validator.IsValidDateTime(r.TargetDateTime)
	n := Note{
		Content:        strings.TrimSpace(r.Content),
		TargetDateTime: target,
		Status:         StatusPending,
	}
	if r.Status != "" {
		n.Status = Status(r.Status)
	}
	return n
}

type UpdateNoteRequest struct {
	ID             string
	Content        *string `json:"content,omitempty"`
	TargetDateTime *string `json:"target_date_time,omitempty"`
	Status         *string `json:"status,omitempty"`
}

func (r *UpdateNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Content != nil && validator.IsEmpty(*r.Content) {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "cannot be empty"})
	}
	if r.TargetDateTime != nil {
		if _, ok := validator.IsValidDateTime(*r.TargetDateTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "target_date_time", Message: "must be an ISO 8601 date-time"})
		}
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'Pending' or 'Done'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpdateNoteRequest) Apply(n Note) Note {
	if r.Content != nil {
		n.Content = strings.TrimSpace(*r.Content)
	}
	if r.TargetDateTime != nil {
		n.TargetDateTime, _ = validator.IsValidDateTime(*r.TargetDateTime)
	}
	if r.Status != nil {
		n.Status = Status(*r.Status)
	}
	return n
}

type NoteResponse struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	TargetDateTime time.Time `json:"target_date_time"`
	Status         Status    `json:"status"`
	Overdue        bool      `json:"overdue"`
	DueToday       bool      `json:"due_today"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewNoteResponse(n Note, now time.Time) NoteResponse {
	return NoteResponse{
		ID:             n.ID,
		Content:        n.Content,
		TargetDateTime: n.TargetDateTime,
		Status:         n.Status,
		Overdue:        n.Overdue(now),
		DueToday:       n.DueToday(now),
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}
