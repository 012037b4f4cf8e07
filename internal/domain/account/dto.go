package account

import (
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RecordFilter struct {
	Type      string
	StartDate string
	EndDate   string
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Type != "" && !RecordType(f.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'credit' or 'debit'"})
	}
	errs = append(errs, validator.ValidateDateRange(f.StartDate, f.EndDate)...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (f RecordFilter) Matches(r Record) bool {
	if f.Type != "" && string(r.Type) != f.Type {
		return false
	}
	return validator.InDateRange(r.Date, f.StartDate, f.EndDate)
}

type CreateRecordRequest struct {
	Type        string           `json:"type"`
	Date        string           `json:"date,omitempty"`
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if !RecordType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'credit' or 'debit'"})
	}
	if r.Amount == nil {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "is required"})
	} else {
		errs = append(errs, validator.Amount("amount", *r.Amount)...)
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity assumes Validate has passed. An empty date means today.
func (r *CreateRecordRequest) ToEntity(today time.Time) Record {
	rec := Record{
		Type:        RecordType(r.Type),
		Date:        validator.DateOnly(today),
		Description: r.Description,
		Amount:      *r.Amount,
	}
	if d, ok := validator.IsValidDate(r.Date); ok {
		rec.Date = d
	}
	return rec
}

type UpdateRecordRequest struct {
	ID          string
	Type        *string          `json:"type,omitempty"`
	Date        *string          `json:"date,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != nil && !RecordType(*r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'credit' or 'debit'"})
	}
	if r.Amount != nil {
		errs = append(errs, validator.Amount("amount", *r.Amount)...)
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpdateRecordRequest) Apply(rec Record) Record {
	if r.Type != nil {
		rec.Type = RecordType(*r.Type)
	}
	if r.Date != nil {
		rec.Date, _ = validator.IsValidDate(*r.Date)
	}
	if r.Description != nil {
		rec.Description = *r.Description
	}
	if r.Amount != nil {
		rec.Amount = *r.Amount
	}
	return rec
}

type RecordResponse struct {
	ID          string          `json:"id"`
	Type        RecordType      `json:"type"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func NewRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:          r.ID,
		Type:        r.Type,
		Date:        formatDate(r.Date),
		Description: r.Description,
		Amount:      r.Amount,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type SummaryResponse struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Credit decimal.Decimal `json:"credit"`
	Debit  decimal.Decimal `json:"debit"`
	Net    decimal.Decimal `json:"net"`
}

func NewSummaryResponse(s Summary) SummaryResponse {
	return SummaryResponse{
		From:   formatDate(s.From),
		To:     formatDate(s.To),
		Credit: s.Credit,
		Debit:  s.Debit,
		Net:    s.Credit.Sub(s.Debit),
	}
}

type DailyPointResponse struct {
	Date   string          `json:"date"`
	Label  string          `json:"label"`
	Credit decimal.Decimal `json:"credit"`
	Debit  decimal.Decimal `json:"debit"`
}

func NewDailyPointResponse(p DailyPoint) DailyPointResponse {
	return DailyPointResponse{
		Date:   formatDate(p.Date),
		Label:  p.Date.Format("Mon"),
		Credit: p.Credit,
		Debit:  p.Debit,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(validator.DateLayout)
}
