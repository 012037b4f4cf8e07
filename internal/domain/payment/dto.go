package payment

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PaymentFilter struct {
	Search    string
	StartDate string
	EndDate   string
}

func (f *PaymentFilter) Validate() error {
	if errs := validator.ValidateDateRange(f.StartDate, f.EndDate); len(errs) > 0 {
		return errs
	}
	return nil
}

// Matches filters on the paid-to name (case-insensitive substring) and the
// payment date range.
func (f PaymentFilter) Matches(p Payment) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(p.PaidTo), strings.ToLower(strings.TrimSpace(f.Search))) {
		return false
	}
	return validator.InDateRange(p.Date, f.StartDate, f.EndDate)
}

type CreatePaymentRequest struct {
	Date   string           `json:"payment_date"`
	Reason string           `json:"reason"`
	PaidTo string           `json:"paid_to"`
	Amount *decimal.Decimal `json:"amount"`
}

func (r *CreatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if validator.IsEmpty(r.PaidTo) {
		errs = append(errs, validator.ValidationError{Field: "paid_to", Message: "is required"})
	}
	if r.Amount == nil {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "is required"})
	} else {
		errs = append(errs, validator.Amount("amount", *r.Amount)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreatePaymentRequest) ToEntity() Payment {
	date, _ := validator.IsValidDate(r.Date)
	return Payment{
		Date:   date,
		Reason: strings.TrimSpace(r.Reason),
		PaidTo: strings.TrimSpace(r.PaidTo),
		Amount: *r.Amount,
	}
}

type UpdatePaymentRequest struct {
	ID     string
	Date   *string          `json:"payment_date,omitempty"`
	Reason *string          `json:"reason,omitempty"`
	PaidTo *string          `json:"paid_to,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

func (r *UpdatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.Reason != nil && validator.IsEmpty(*r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "cannot be empty"})
	}
	if r.PaidTo != nil && validator.IsEmpty(*r.PaidTo) {
		errs = append(errs, validator.ValidationError{Field: "paid_to", Message: "cannot be empty"})
	}
	if r.Amount != nil {
		errs = append(errs, validator.Amount("amount", *r.Amount)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpdatePaymentRequest) Apply(p Payment) Payment {
	if r.Date != nil {
		p.Date, _ = validator.IsValidDate(*r.Date)
	}
	if r.Reason != nil {
		p.Reason = strings.TrimSpace(*r.Reason)
	}
	if r.PaidTo != nil {
		p.PaidTo = strings.TrimSpace(*r.PaidTo)
	}
	if r.Amount != nil {
		p.Amount = *r.Amount
	}
	return p
}

type PaymentResponse struct {
	ID        string          `json:"id"`
	Date      string          `json:"payment_date"`
	Reason    string          `json:"reason"`
	PaidTo    string          `json:"paid_to"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func NewPaymentResponse(p Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		Date:      p.Date.Format(validator.DateLayout),
		Reason:    p.Reason,
		PaidTo:    p.PaidTo,
		Amount:    p.Amount,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type DateGroupResponse struct {
	Date     string            `json:"date"`
	Total    decimal.Decimal   `json:"total"`
	Payments []PaymentResponse `json:"payments"`
}

func NewDateGroupResponse(g DateGroup) DateGroupResponse {
	resp := DateGroupResponse{
		Date:     g.Date.Format(validator.DateLayout),
		Total:    g.Total,
		Payments: make([]PaymentResponse, 0, len(g.Payments)),
	}
	for _, p := range g.Payments {
		resp.Payments = append(resp.Payments, NewPaymentResponse(p))
	}
	return resp
}
