package account

import (
	"time"

	"github.com/shopspring/decimal"
)

type RecordType string

const (
	RecordTypeCredit RecordType = "credit"
	RecordTypeDebit  RecordType = "debit"
)

func (t RecordType) Valid() bool {
	return t == RecordTypeCredit || t == RecordTypeDebit
}

// Record is a single credit or debit entry. A zero Date means the stored
// value could not be read as a date.
type Record struct {
	ID          string
	Type        RecordType
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
