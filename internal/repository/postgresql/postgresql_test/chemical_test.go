package postgresql_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/chemical"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChemical(t *testing.T, repo chemical.ChemicalRepository, name string, qty int64) chemical.Chemical {
	t.Helper()
	c, err := chemical.NewChemical(name, "L", decimal.NewFromInt(qty), time.Now())
	require.NoError(t, err)
	created, err := repo.Create(context.Background(), c)
	require.NoError(t, err)
	return created
}

func TestChemicalRepository_Create_NameCollisionIgnoresCase(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewChemicalRepository(setup.DB)
	newChemical(t, repo, "Chlorine", 10)

	c, err := chemical.NewChemical("CHLORINE", "L", decimal.Zero, time.Now())
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), c)

	assert.ErrorIs(t, err, chemical.ErrChemicalNameExists)
}

func TestChemicalRepository_UpdateStock_ConcurrentUsageNeverNegative(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewChemicalRepository(setup.DB)
	c := newChemical(t, repo, "Alum", 10)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			one := decimal.NewFromInt(1)
			mv := chemical.Movement{Kind: chemical.MovementUsage, Quantity: one, OccurredAt: time.Now()}
			_, err := repo.UpdateStock(context.Background(), c.ID, mv, func(current chemical.Chemical) (chemical.Chemical, error) {
				return chemical.ApplyUsage(current, one, time.Now())
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, succeeded)
	assert.True(t, got.Quantity.IsZero(), got.Quantity.String())

	movements, err := repo.ListMovements(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Len(t, movements, 10)
}

func TestChemicalRepository_UpdateStock_FailedMutationWritesNothing(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewChemicalRepository(setup.DB)
	c := newChemical(t, repo, "Soda Ash", 3)
	boom := errors.New("rejected")

	mv := chemical.Movement{Kind: chemical.MovementUsage, Quantity: decimal.NewFromInt(1), OccurredAt: time.Now()}
	_, err := repo.UpdateStock(context.Background(), c.ID, mv, func(chemical.Chemical) (chemical.Chemical, error) {
		return chemical.Chemical{}, boom
	})

	assert.ErrorIs(t, err, boom)
	movements, err := repo.ListMovements(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestChemicalRepository_GetByID_NotFound(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewChemicalRepository(setup.DB)

	_, err := repo.GetByID(context.Background(), "0192f0a0-0000-7000-8000-000000000000")

	assert.ErrorIs(t, err, chemical.ErrChemicalNotFound)
}

func TestChemicalRepository_MalformedID_NotFound(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewChemicalRepository(setup.DB)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "abc")
	assert.ErrorIs(t, err, chemical.ErrChemicalNotFound)

	_, err = repo.ListMovements(ctx, "abc")
	assert.ErrorIs(t, err, chemical.ErrChemicalNotFound)

	_, err = repo.UpdateDetails(ctx, chemical.Chemical{ID: "abc", Name: "Alum", Unit: "kg"})
	assert.ErrorIs(t, err, chemical.ErrChemicalNotFound)

	mv := chemical.Movement{Kind: chemical.MovementUsage, Quantity: decimal.NewFromInt(1), OccurredAt: time.Now()}
	_, err = repo.UpdateStock(ctx, "abc", mv, func(c chemical.Chemical) (chemical.Chemical, error) {
		return chemical.ApplyUsage(c, decimal.NewFromInt(1), time.Now())
	})
	assert.ErrorIs(t, err, chemical.ErrChemicalNotFound)
}
