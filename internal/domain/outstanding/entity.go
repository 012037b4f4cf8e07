package outstanding

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypePayable    Type = "payable"
	TypeReceivable Type = "receivable"
)

func (t Type) Valid() bool {
	return t == TypePayable || t == TypeReceivable
}

type Status string

const (
	StatusPending       Status = "Pending"
	StatusPaid          Status = "Paid"
	StatusPartiallyPaid Status = "Partially Paid"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusPartiallyPaid:
		return true
	}
	return false
}

// Open reports whether money is still owed on a record in this status.
func (s Status) Open() bool {
	return s == StatusPending || s == StatusPartiallyPaid
}

// Outstanding is a payable or receivable balance. Status is set by hand and
// is never derived from Amount.
type Outstanding struct {
	ID          string
	Type        Type
	Name        string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
