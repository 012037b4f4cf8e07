package chemical

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ledgerNow = time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC)

func stock(qty int64) Chemical {
	return Chemical{
		ID:          "chem-1",
		Name:        "Chlorine",
		Unit:        "L",
		Quantity:    decimal.NewFromInt(qty),
		LastUpdated: ledgerNow.Add(-48 * time.Hour),
	}
}

func TestApplyPurchase_AddsQuantity(t *testing.T) {
	got, err := ApplyPurchase(stock(10), decimal.RequireFromString("2.5"), ledgerNow)

	require.NoError(t, err)
	assert.Equal(t, "12.5", got.Quantity.String())
	assert.Equal(t, ledgerNow, got.LastUpdated)
}

func TestApplyPurchase_RejectsNonPositive(t *testing.T) {
	for _, qty := range []string{"0", "-1"} {
		before := stock(10)

		got, err := ApplyPurchase(before, decimal.RequireFromString(qty), ledgerNow)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "quantity must be a positive number", verrs.ToMap()["quantity"])
		assert.True(t, got.Quantity.Equal(before.Quantity))
		assert.Equal(t, before.LastUpdated, got.LastUpdated)
	}
}

func TestApplyUsage_Shortfall(t *testing.T) {
	// Arrange
	before := stock(10)

	// Act
	got, err := ApplyUsage(before, decimal.NewFromInt(15), ledgerNow)

	// Assert
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "cannot use 15 L, only 10 L available", verrs.ToMap()["quantity_used"])
	assert.Equal(t, "10", got.Quantity.String())
}

func TestApplyUsage_ExactlyAll(t *testing.T) {
	got, err := ApplyUsage(stock(10), decimal.NewFromInt(10), ledgerNow)

	require.NoError(t, err)
	assert.True(t, got.Quantity.IsZero())
}

func TestApplyUsage_RejectsNonPositive(t *testing.T) {
	_, err := ApplyUsage(stock(10), decimal.Zero, ledgerNow)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "quantity must be a positive number", verrs.ToMap()["quantity_used"])
}

func TestUsageThenPurchase(t *testing.T) {
	// Arrange
	c := stock(10)
	first := ledgerNow
	second := ledgerNow.Add(time.Hour)

	// Act
	c, err := ApplyUsage(c, decimal.NewFromInt(4), first)
	require.NoError(t, err)
	assert.Equal(t, first, c.LastUpdated)

	c, err = ApplyPurchase(c, decimal.NewFromInt(6), second)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "12", c.Quantity.String())
	assert.Equal(t, second, c.LastUpdated)
}

func TestNewChemical(t *testing.T) {
	c, err := NewChemical("  Caustic Soda ", "kg", decimal.Zero, ledgerNow)
	require.NoError(t, err)
	assert.Equal(t, "Caustic Soda", c.Name)
	assert.True(t, c.Quantity.IsZero())
	assert.Equal(t, ledgerNow, c.LastUpdated)

	_, err = NewChemical("", "", decimal.NewFromInt(-1), ledgerNow)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
}

func TestUpdateDetails_KeepsQuantity(t *testing.T) {
	name := "Sodium Hypochlorite"

	got, err := UpdateDetails(stock(10), &name, nil, ledgerNow)

	require.NoError(t, err)
	assert.Equal(t, name, got.Name)
	assert.Equal(t, "L", got.Unit)
	assert.Equal(t, "10", got.Quantity.String())
	assert.Equal(t, ledgerNow, got.LastUpdated)
}

func TestUpdateDetails_NoChangesStillTouches(t *testing.T) {
	got, err := UpdateDetails(stock(10), nil, nil, ledgerNow)

	require.NoError(t, err)
	assert.Equal(t, ledgerNow, got.LastUpdated)
}

func TestNameTaken(t *testing.T) {
	existing := []Chemical{{ID: "a", Name: "Chlorine"}, {ID: "b", Name: "Alum"}}

	assert.True(t, NameTaken(existing, "chlorine", ""))
	assert.True(t, NameTaken(existing, " ALUM ", "a"))
	assert.False(t, NameTaken(existing, "alum", "b"))
	assert.False(t, NameTaken(existing, "Soda", ""))
}

func TestApplyPurchase_RejectsFinerThanStoredScale(t *testing.T) {
	before := stock(10)

	got, err := ApplyPurchase(before, decimal.RequireFromString("0.0004"), ledgerNow)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "must have at most 3 decimal places", verrs.ToMap()["quantity"])
	assert.True(t, got.Quantity.Equal(before.Quantity))
	assert.Equal(t, before.LastUpdated, got.LastUpdated)
}

func TestApplyPurchase_AcceptsSmallestStoredUnit(t *testing.T) {
	got, err := ApplyPurchase(stock(10), decimal.RequireFromString("0.001"), ledgerNow)

	require.NoError(t, err)
	assert.Equal(t, "10.001", got.Quantity.String())
}

func TestApplyPurchase_RejectsOverflowingStock(t *testing.T) {
	before := stock(99999999999)

	_, err := ApplyPurchase(before, decimal.NewFromInt(1), ledgerNow)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap()["quantity"], "above the largest storable quantity")
}

func TestApplyPurchase_RejectsHugeExponent(t *testing.T) {
	_, err := ApplyPurchase(stock(10), decimal.RequireFromString("1e30000000"), ledgerNow)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "must have at most 11 digits before the decimal point", verrs.ToMap()["quantity"])
}

func TestApplyUsage_RejectsFinerThanStoredScale(t *testing.T) {
	_, err := ApplyUsage(stock(1), decimal.RequireFromString("0.0004"), ledgerNow)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "must have at most 3 decimal places", verrs.ToMap()["quantity_used"])
}

func TestNewChemical_RejectsUnstorableInitialQuantity(t *testing.T) {
	_, err := NewChemical("Alum", "kg", decimal.RequireFromString("1.2345"), ledgerNow)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "must have at most 3 decimal places", verrs.ToMap()["initial_quantity"])
}
