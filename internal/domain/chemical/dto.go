package chemical

import (
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/numeric"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateChemicalRequest struct {
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	InitialQuantity numeric.Lenient `json:"initial_quantity"`
}

type UpdateChemicalRequest struct {
	ID   string
	Name *string `json:"name,omitempty"`
	Unit *string `json:"unit,omitempty"`
}

type PurchaseRequest struct {
	ChemicalID   string
	Quantity     numeric.Lenient  `json:"quantity"`
	Supplier     string           `json:"supplier,omitempty"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	PurchaseDate string           `json:"purchase_date,omitempty"`
}

func (r *PurchaseRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Cost != nil {
		errs = append(errs, validator.Amount("cost", *r.Cost)...)
	}
	if r.PurchaseDate != "" {
		if _, ok := validator.IsValidDate(r.PurchaseDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "purchase_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UsageRequest struct {
	ChemicalID   string
	QuantityUsed numeric.Lenient `json:"quantity_used"`
	Reason       string          `json:"reason,omitempty"`
}

type ChemicalResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	LastUpdated time.Time       `json:"last_updated"`
	CreatedAt   time.Time       `json:"created_at"`
}

func NewChemicalResponse(c Chemical) ChemicalResponse {
	return ChemicalResponse{
		ID:          c.ID,
		Name:        c.Name,
		Unit:        c.Unit,
		Quantity:    c.Quantity,
		LastUpdated: c.LastUpdated,
		CreatedAt:   c.CreatedAt,
	}
}

type MovementResponse struct {
	ID         string           `json:"id"`
	ChemicalID string           `json:"chemical_id"`
	Kind       MovementKind     `json:"kind"`
	Quantity   decimal.Decimal  `json:"quantity"`
	Supplier   string           `json:"supplier,omitempty"`
	Cost       *decimal.Decimal `json:"cost,omitempty"`
	Reason     string           `json:"reason,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

func NewMovementResponse(m Movement) MovementResponse {
	return MovementResponse{
		ID:         m.ID,
		ChemicalID: m.ChemicalID,
		Kind:       m.Kind,
		Quantity:   m.Quantity,
		Supplier:   m.Supplier,
		Cost:       m.Cost,
		Reason:     m.Reason,
		OccurredAt: m.OccurredAt,
	}
}
