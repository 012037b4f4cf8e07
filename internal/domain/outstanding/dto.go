package outstanding

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type OutstandingFilter struct {
	Type      string
	Search    string
	StartDate string
	EndDate   string
}

func (f *OutstandingFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Type != "" && !Type(f.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'payable' or 'receivable'"})
	}
	errs = append(errs, validator.ValidateDateRange(f.StartDate, f.EndDate)...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Matches applies the filter to a single record.
func (f OutstandingFilter) Matches(o Outstanding) bool {
	if f.Type != "" && string(o.Type) != f.Type {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(o.Name), strings.ToLower(strings.TrimSpace(f.Search))) {
		return false
	}
	return validator.InDateRange(o.Date, f.StartDate, f.EndDate)
}

type CreateOutstandingRequest struct {
	Type        string           `json:"type"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        string           `json:"date,omitempty"`
	Status      string           `json:"status,omitempty"`
}

func (r *CreateOutstandingRequest) Validate() error {
	var errs validator.ValidationErrors

	if !Type(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'payable' or 'receivable'"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
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
	if r.Status != "" && !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'Pending', 'Paid' or 'Partially Paid'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateOutstandingRequest struct {
	ID          string
	Type        *string          `json:"type,omitempty"`
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *string          `json:"date,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

func (r *UpdateOutstandingRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != nil && !Type(*r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'payable' or 'receivable'"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}
	if r.Amount != nil {
		errs = append(errs, validator.Amount("amount", *r.Amount)...)
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'Pending', 'Paid' or 'Partially Paid'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OutstandingResponse struct {
	ID          string          `json:"id"`
	Type        Type            `json:"type"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func NewOutstandingResponse(o Outstanding) OutstandingResponse {
	return OutstandingResponse{
		ID:          o.ID,
		Type:        o.Type,
		Name:        o.Name,
		Description: o.Description,
		Amount:      o.Amount,
		Date:        o.Date.Format(validator.DateLayout),
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

type TotalsResponse struct {
	Payable    decimal.Decimal `json:"payable"`
	Receivable decimal.Decimal `json:"receivable"`
}

// Totals sums the open balances of records per type.
func Totals(records []Outstanding) TotalsResponse {
	totals := TotalsResponse{Payable: decimal.Zero, Receivable: decimal.Zero}
	for _, o := range records {
		if !o.Status.Open() {
			continue
		}
		switch o.Type {
		case TypePayable:
			totals.Payable = totals.Payable.Add(o.Amount)
		case TypeReceivable:
			totals.Receivable = totals.Receivable.Add(o.Amount)
		}
	}
	return totals
}

// parseDate is only called on values that already passed validation.
func parseDate(s string) time.Time {
	d, _ := validator.IsValidDate(s)
	return d
}
