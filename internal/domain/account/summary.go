package account

import (
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// WindowDays is the length of the summary window, reference day included.
const WindowDays = 7

type Summary struct {
	From   time.Time
	To     time.Time
	Credit decimal.Decimal
	Debit  decimal.Decimal
}

type DailyPoint struct {
	Date   time.Time
	Credit decimal.Decimal
	Debit  decimal.Decimal
}

// Window returns the first and last calendar day of the summary window
// ending on ref.
func Window(ref time.Time) (from, to time.Time) {
	to = validator.DateOnly(ref)
	return to.AddDate(0, 0, -(WindowDays - 1)), to
}

// Summarize totals credits and debits dated within [ref-6d, ref], compared
// by calendar day. Records without a usable date are skipped.
func Summarize(records []Record, ref time.Time) Summary {
	from, to := Window(ref)
	s := Summary{From: from, To: to, Credit: decimal.Zero, Debit: decimal.Zero}

	for _, r := range records {
		if _, ok := recordDay(r, from, to); !ok {
			continue
		}
		switch r.Type {
		case RecordTypeCredit:
			s.Credit = s.Credit.Add(r.Amount)
		case RecordTypeDebit:
			s.Debit = s.Debit.Add(r.Amount)
		}
	}
	return s
}

// DailySeries splits the same window into one point per day, oldest first.
func DailySeries(records []Record, ref time.Time) []DailyPoint {
	from, to := Window(ref)

	points := make([]DailyPoint, WindowDays)
	for i := range points {
		points[i] = DailyPoint{Date: from.AddDate(0, 0, i), Credit: decimal.Zero, Debit: decimal.Zero}
	}

	for _, r := range records {
		day, ok := recordDay(r, from, to)
		if !ok {
			continue
		}
		i := int(day.Sub(from).Hours() / 24)
		switch r.Type {
		case RecordTypeCredit:
			points[i].Credit = points[i].Credit.Add(r.Amount)
		case RecordTypeDebit:
			points[i].Debit = points[i].Debit.Add(r.Amount)
		}
	}
	return points
}

func recordDay(r Record, from, to time.Time) (time.Time, bool) {
	if r.Date.IsZero() {
		return time.Time{}, false
	}
	day := validator.DateOnly(r.Date)
	if day.Before(from) || day.After(to) {
		return time.Time{}, false
	}
	return day, true
}
