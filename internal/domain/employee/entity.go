package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyRateDivisor is the number of days a monthly base salary is spread
// over when deriving the default daily rate.
const DailyRateDivisor = 30

type Employee struct {
	ID            string
	Name          string
	Role          string
	Department    string
	BaseSalary    decimal.Decimal
	OTRate        decimal.Decimal
	Address       string
	Birthday      *time.Time
	Email         string
	ContactNumber string
	NIC           string
	BankAccount   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DefaultDailyRate is base salary over thirty days, rounded to cents.
// A non-positive base yields zero.
func (e Employee) DefaultDailyRate() decimal.Decimal {
	if !e.BaseSalary.IsPositive() {
		return decimal.Zero
	}
	return e.BaseSalary.Div(decimal.NewFromInt(DailyRateDivisor)).Round(2)
}
