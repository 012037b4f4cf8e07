package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID        string
	Date      time.Time
	Reason    string
	PaidTo    string
	Amount    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
