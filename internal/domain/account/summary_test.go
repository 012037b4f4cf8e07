package account

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day0 = time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)

func rec(t RecordType, amount int64, date time.Time) Record {
	return Record{Type: t, Amount: decimal.NewFromInt(amount), Date: date}
}

func TestSummarize_SameDay(t *testing.T) {
	records := []Record{
		rec(RecordTypeCredit, 100, day0),
		rec(RecordTypeDebit, 40, day0),
	}

	s := Summarize(records, day0)

	assert.Equal(t, "100", s.Credit.String())
	assert.Equal(t, "40", s.Debit.String())
}

func TestSummarize_IgnoresRecordsOutsideWindow(t *testing.T) {
	// Arrange
	records := []Record{
		rec(RecordTypeCredit, 100, day0),
		rec(RecordTypeDebit, 40, day0),
	}
	before := Summarize(records, day0)

	// Act
	records = append(records,
		rec(RecordTypeCredit, 500, day0.AddDate(0, 0, -8)),
		rec(RecordTypeCredit, 700, day0.AddDate(0, 0, 1)),
	)
	after := Summarize(records, day0)

	// Assert
	assert.True(t, before.Credit.Equal(after.Credit))
	assert.True(t, before.Debit.Equal(after.Debit))
}

func TestSummarize_WindowIsInclusiveCalendarDays(t *testing.T) {
	// Late on the reference day and early on the first day both count, even
	// though they are more than 144 hours apart.
	ref := day0.Add(2 * time.Hour)
	records := []Record{
		rec(RecordTypeCredit, 10, day0.AddDate(0, 0, -6)),
		rec(RecordTypeCredit, 20, day0.Add(23*time.Hour+59*time.Minute)),
		rec(RecordTypeCredit, 40, day0.AddDate(0, 0, -7).Add(23*time.Hour)),
	}

	s := Summarize(records, ref)

	assert.Equal(t, "30", s.Credit.String())
	assert.Equal(t, day0.AddDate(0, 0, -6), s.From)
	assert.Equal(t, day0, s.To)
}

func TestSummarize_SkipsUndatedRecords(t *testing.T) {
	records := []Record{
		rec(RecordTypeCredit, 100, day0),
		rec(RecordTypeCredit, 900, time.Time{}),
	}

	s := Summarize(records, day0)

	assert.Equal(t, "100", s.Credit.String())
}

func TestSummarize_Idempotent(t *testing.T) {
	records := []Record{rec(RecordTypeCredit, 15, day0), rec(RecordTypeDebit, 5, day0.AddDate(0, 0, -3))}

	assert.Equal(t, Summarize(records, day0), Summarize(records, day0))
}

func TestDailySeries(t *testing.T) {
	records := []Record{
		rec(RecordTypeCredit, 100, day0),
		rec(RecordTypeDebit, 40, day0),
		rec(RecordTypeDebit, 25, day0.AddDate(0, 0, -6)),
		rec(RecordTypeCredit, 999, day0.AddDate(0, 0, -7)),
	}

	points := DailySeries(records, day0)

	require.Len(t, points, WindowDays)
	assert.Equal(t, day0.AddDate(0, 0, -6), points[0].Date)
	assert.Equal(t, "25", points[0].Debit.String())
	assert.True(t, points[0].Credit.IsZero())
	assert.Equal(t, day0, points[6].Date)
	assert.Equal(t, "100", points[6].Credit.String())
	assert.Equal(t, "40", points[6].Debit.String())
	for _, p := range points[1:6] {
		assert.True(t, p.Credit.IsZero())
		assert.True(t, p.Debit.IsZero())
	}
}
