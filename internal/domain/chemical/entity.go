package chemical

import (
	"time"

	"github.com/shopspring/decimal"
)

type Chemical struct {
	ID          string
	Name        string
	Unit        string
	Quantity    decimal.Decimal
	LastUpdated time.Time
	CreatedAt   time.Time
}

type MovementKind string

const (
	MovementPurchase MovementKind = "purchase"
	MovementUsage    MovementKind = "usage"
)

// Movement is one purchase or usage event in a chemical's history.
type Movement struct {
	ID         string
	ChemicalID string
	Kind       MovementKind
	Quantity   decimal.Decimal
	Supplier   string
	Cost       *decimal.Decimal
	Reason     string
	OccurredAt time.Time
	CreatedAt  time.Time
}
