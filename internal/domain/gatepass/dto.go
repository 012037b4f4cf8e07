package gatepass

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
)

// GatepassFilter matches entries whose receive date or send date falls in
// the range.
type GatepassFilter struct {
	StartDate string
	EndDate   string
}

func (f *GatepassFilter) Validate() error {
	if errs := validator.ValidateDateRange(f.StartDate, f.EndDate); len(errs) > 0 {
		return errs
	}
	return nil
}

func (f GatepassFilter) Matches(g Gatepass) bool {
	if f.StartDate == "" && f.EndDate == "" {
		return true
	}
	if validator.InDateRange(g.ReceiveDate, f.StartDate, f.EndDate) {
		return true
	}
	return g.SendDate != nil && validator.InDateRange(*g.SendDate, f.StartDate, f.EndDate)
}

type CreateGatepassRequest struct {
	ReceiveDate   string `json:"receive_date"`
	SendDate      string `json:"send_date,omitempty"`
	Category      string `json:"category"`
	InvoiceNumber string `json:"invoice_number"`
	Remarks       string `json:"remarks"`
	Quantity      string `json:"quantity"`
	SpecialNote   string `json:"special_note"`
	NoteDate      string `json:"note_date,omitempty"`
}

func (r *CreateGatepassRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ReceiveDate) {
		errs = append(errs, validator.ValidationError{Field: "receive_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.ReceiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "receive_date", Message: "must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "is required"})
	}
	errs = append(errs, optionalDate("send_date", r.SendDate)...)
	errs = append(errs, optionalDate("note_date", r.NoteDate)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateGatepassRequest) ToEntity() Gatepass {
	receive, _ := validator.IsValidDate(r.ReceiveDate)
	return Gatepass{
		ReceiveDate:   receive,
		SendDate:      datePtr(r.SendDate),
		Category:      strings.TrimSpace(r.Category),
		InvoiceNumber: r.InvoiceNumber,
		Remarks:       r.Remarks,
		Quantity:      r.Quantity,
		SpecialNote:   r.SpecialNote,
		NoteDate:      datePtr(r.NoteDate),
	}
}

type UpdateGatepassRequest struct {
	ID            string
	ReceiveDate   *string `json:"receive_date,omitempty"`
	SendDate      *string `json:"send_date,omitempty"`
	Category      *string `json:"category,omitempty"`
	InvoiceNumber *string `json:"invoice_number,omitempty"`
	Remarks       *string `json:"remarks,omitempty"`
	Quantity      *string `json:"quantity,omitempty"`
	SpecialNote   *string `json:"special_note,omitempty"`
	NoteDate      *string `json:"note_date,omitempty"`
}

func (r *UpdateGatepassRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ReceiveDate != nil {
		if _, ok := validator.IsValidDate(*r.ReceiveDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "receive_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.Category != nil && validator.IsEmpty(*r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "cannot be empty"})
	}
	if r.SendDate != nil {
		errs = append(errs, optionalDate("send_date", *r.SendDate)...)
	}
	if r.NoteDate != nil {
		errs = append(errs, optionalDate("note_date", *r.NoteDate)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpdateGatepassRequest) Apply(g Gatepass) Gatepass {
	if r.ReceiveDate != nil {
		g.ReceiveDate, _ = validator.IsValidDate(*r.ReceiveDate)
	}
	if r.SendDate != nil {
		g.SendDate = datePtr(*r.SendDate)
	}
	if r.Category != nil {
		g.Category = strings.TrimSpace(*r.Category)
	}
	if r.InvoiceNumber != nil {
		g.InvoiceNumber = *r.InvoiceNumber
	}
	if r.Remarks != nil {
		g.Remarks = *r.Remarks
	}
	if r.Quantity != nil {
		g.Quantity = *r.Quantity
	}
	if r.SpecialNote != nil {
		g.SpecialNote = *r.SpecialNote
	}
	if r.NoteDate != nil {
		g.NoteDate = datePtr(*r.NoteDate)
	}
	return g
}

type GatepassResponse struct {
	ID            string    `json:"id"`
	ReceiveDate   string    `json:"receive_date"`
	SendDate      *string   `json:"send_date"`
	Category      string    `json:"category"`
	InvoiceNumber string    `json:"invoice_number"`
	Remarks       string    `json:"remarks"`
	Quantity      string    `json:"quantity"`
	SpecialNote   string    `json:"special_note"`
	NoteDate      *string   `json:"note_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewGatepassResponse(g Gatepass) GatepassResponse {
	return GatepassResponse{
		ID:            g.ID,
		ReceiveDate:   g.ReceiveDate.Format(validator.DateLayout),
		SendDate:      formatPtr(g.SendDate),
		Category:      g.Category,
		InvoiceNumber: g.InvoiceNumber,
		Remarks:       g.Remarks,
		Quantity:      g.Quantity,
		SpecialNote:   g.SpecialNote,
		NoteDate:      formatPtr(g.NoteDate),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

func optionalDate(field, value string) validator.ValidationErrors {
	if value == "" {
		return nil
	}
	if _, ok := validator.IsValidDate(value); !ok {
		return validator.Single(field, "must be in YYYY-MM-DD format")
	}
	return nil
}

// datePtr maps an empty string to nil.
func datePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	d, ok := validator.IsValidDate(s)
	if !ok {
		return nil
	}
	return &d
}

func formatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(validator.DateLayout)
	return &s
}
