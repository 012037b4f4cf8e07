package chemical

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/chemical"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/numeric"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 10, 8, 30, 0, 0, time.UTC)

func qty(s string) numeric.Lenient {
	return numeric.NewLenient(decimal.RequireFromString(s))
}

func newTestService(t *testing.T) (chemical.ChemicalService, *clock.FakeClock) {
	t.Helper()
	clk := clock.NewFakeClock(testNow)
	return NewChemicalService(memory.NewChemicalRepository(), clk, nil), clk
}

func seed(t *testing.T, svc chemical.ChemicalService, name, initial string) chemical.ChemicalResponse {
	t.Helper()
	c, err := svc.CreateChemicalType(context.Background(), chemical.CreateChemicalRequest{
		Name:            name,
		Unit:            "L",
		InitialQuantity: qty(initial),
	})
	require.NoError(t, err)
	return c
}

func TestChemicalService_CreateChemicalType_DuplicateNameIgnoresCase(t *testing.T) {
	// Arrange
	ctx := context.Background()
	svc, _ := newTestService(t)
	seed(t, svc, "Chlorine", "10")

	// Act
	_, err := svc.CreateChemicalType(ctx, chemical.CreateChemicalRequest{Name: "  CHLORINE ", Unit: "L"})

	// Assert
	assert.ErrorIs(t, err, chemical.ErrChemicalNameExists)
	all, err := svc.ListChemicals(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestChemicalService_RecordPurchase(t *testing.T) {
	// Arrange
	ctx := context.Background()
	svc, clk := newTestService(t)
	c := seed(t, svc, "Chlorine", "10")
	clk.Advance(time.Hour)

	// Act
	got, err := svc.RecordPurchase(ctx, chemical.PurchaseRequest{
		ChemicalID:   c.ID,
		Quantity:     qty("5.5"),
		Supplier:     "Lanka Chem",
		PurchaseDate: "2025-06-09",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "15.5", got.Quantity.String())
	assert.Equal(t, testNow.Add(time.Hour), got.LastUpdated)

	movements, err := svc.ListMovements(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, chemical.MovementPurchase, movements[0].Kind)
	assert.Equal(t, "Lanka Chem", movements[0].Supplier)
}

func TestChemicalService_RecordPurchase_RejectsNonPositive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	c := seed(t, svc, "Chlorine", "10")

	_, err := svc.RecordPurchase(ctx, chemical.PurchaseRequest{ChemicalID: c.ID, Quantity: qty("0")})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "quantity must be a positive number", verrs.ToMap()["quantity"])

	got, err := svc.GetChemical(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "10", got.Quantity.String())
}

func TestChemicalService_RecordUsage_Shortfall(t *testing.T) {
	// Arrange
	ctx := context.Background()
	svc, _ := newTestService(t)
	c := seed(t, svc, "Chlorine", "3")

	// Act
	_, err := svc.RecordUsage(ctx, chemical.UsageRequest{ChemicalID: c.ID, QuantityUsed: qty("5")})

	// Assert
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "cannot use 5 L, only 3 L available", verrs.ToMap()["quantity_used"])

	got, err := svc.GetChemical(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "3", got.Quantity.String())

	movements, err := svc.ListMovements(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestChemicalService_RecordUsage_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RecordUsage(context.Background(), chemical.UsageRequest{ChemicalID: "missing", QuantityUsed: qty("1")})

	assert.ErrorIs(t, err, chemical.ErrChemicalNotFound)
}

func TestChemicalService_RecordUsage_ConcurrentNeverNegative(t *testing.T) {
	// Arrange
	ctx := context.Background()
	svc, _ := newTestService(t)
	c := seed(t, svc, "Chlorine", "10")

	// Act
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RecordUsage(ctx, chemical.UsageRequest{ChemicalID: c.ID, QuantityUsed: qty("1")})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Assert
	assert.Equal(t, 10, succeeded)
	got, err := svc.GetChemical(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, got.Quantity.IsZero())
}

func TestChemicalService_UpdateChemicalDetails_KeepsQuantity(t *testing.T) {
	// Arrange
	ctx := context.Background()
	svc, clk := newTestService(t)
	c := seed(t, svc, "Chlorine", "7")
	clk.Advance(24 * time.Hour)
	name := "Liquid Chlorine"

	// Act
	got, err := svc.UpdateChemicalDetails(ctx, chemical.UpdateChemicalRequest{ID: c.ID, Name: &name})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Liquid Chlorine", got.Name)
	assert.Equal(t, "7", got.Quantity.String())
	assert.Equal(t, testNow.Add(24*time.Hour), got.LastUpdated)
}

func TestChemicalService_UpdateChemicalDetails_RenameCollision(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	seed(t, svc, "Chlorine", "1")
	other := seed(t, svc, "Alum", "1")
	name := "chlorine"

	_, err := svc.UpdateChemicalDetails(ctx, chemical.UpdateChemicalRequest{ID: other.ID, Name: &name})

	assert.ErrorIs(t, err, chemical.ErrChemicalNameExists)
}
