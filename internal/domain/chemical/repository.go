package chemical

import "context"

// StockMutation computes the new state of a chemical from its current one.
type StockMutation func(current Chemical) (Chemical, error)

type ChemicalRepository interface {
	List(ctx context.Context) ([]Chemical, error)
	GetByID(ctx context.Context, id string) (Chemical, error)

	// Create fails with ErrChemicalNameExists on a case-insensitive name clash
	Create(ctx context.Context, c Chemical) (Chemical, error)

	// UpdateDetails persists name, unit and last_updated only
	UpdateDetails(ctx context.Context, c Chemical) (Chemical, error)

	// UpdateStock reads the chemical, applies fn and stores the result along
	// with mv as one atomic step. Nothing is written when fn fails.
	UpdateStock(ctx context.Context, id string, mv Movement, fn StockMutation) (Chemical, error)

	ListMovements(ctx context.Context, chemicalID string) ([]Movement, error)
}
