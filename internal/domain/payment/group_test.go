package payment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByDate(t *testing.T) {
	d1 := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	payments := []Payment{
		{ID: "p1", Date: d1, Amount: decimal.NewFromInt(1500)},
		{ID: "p2", Date: d2, Amount: decimal.NewFromInt(250)},
		{ID: "p3", Date: d1, Amount: decimal.RequireFromString("75.50")},
	}

	groups := GroupByDate(payments)

	require.Len(t, groups, 2)
	assert.Equal(t, d2, groups[0].Date)
	assert.Equal(t, "250", groups[0].Total.String())
	assert.Equal(t, d1, groups[1].Date)
	assert.Equal(t, "1575.5", groups[1].Total.String())
	require.Len(t, groups[1].Payments, 2)
	assert.Equal(t, "p1", groups[1].Payments[0].ID)
	assert.Equal(t, "p3", groups[1].Payments[1].ID)
}

func TestGroupByDate_Empty(t *testing.T) {
	assert.Empty(t, GroupByDate(nil))
}

func TestPaymentFilter_Matches(t *testing.T) {
	p := Payment{PaidTo: "ABC Suppliers", Date: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)}

	assert.True(t, PaymentFilter{Search: "abc"}.Matches(p))
	assert.False(t, PaymentFilter{Search: "xyz"}.Matches(p))
	assert.True(t, PaymentFilter{StartDate: "2025-05-01", EndDate: "2025-05-02"}.Matches(p))
	assert.False(t, PaymentFilter{EndDate: "2025-05-01"}.Matches(p))
}
