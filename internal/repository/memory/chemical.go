package memory

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/chemical"
)

type chemicalRepositoryImpl struct {
	rows      *table[chemical.Chemical]
	movements *table[chemical.Movement]
}

func NewChemicalRepository() chemical.ChemicalRepository {
	return &chemicalRepositoryImpl{
		rows:      newTable[chemical.Chemical](),
		movements: newTable[chemical.Movement](),
	}
}

func (r *chemicalRepositoryImpl) List(ctx context.Context) ([]chemical.Chemical, error) {
	return r.rows.selectWhere(nil, func(a, b chemical.Chemical) bool {
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}), nil
}

func (r *chemicalRepositoryImpl) GetByID(ctx context.Context, id string) (chemical.Chemical, error) {
	c, ok := r.rows.get(id)
	if !ok {
		return chemical.Chemical{}, chemical.ErrChemicalNotFound
	}
	return c, nil
}

// snapshot must be called with r.rows.mu held.
func (r *chemicalRepositoryImpl) snapshot() []chemical.Chemical {
	all := make([]chemical.Chemical, 0, len(r.rows.rows))
	for _, c := range r.rows.rows {
		all = append(all, c)
	}
	return all
}

func (r *chemicalRepositoryImpl) Create(ctx context.Context, c chemical.Chemical) (chemical.Chemical, error) {
	r.rows.mu.Lock()
	defer r.rows.mu.Unlock()

	if chemical.NameTaken(r.snapshot(), c.Name, "") {
		return chemical.Chemical{}, chemical.ErrChemicalNameExists
	}
	if c.ID == "" {
		c.ID = newID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now()
	}
	r.rows.rows[c.ID] = c
	return c, nil
}

func (r *chemicalRepositoryImpl) UpdateDetails(ctx context.Context, c chemical.Chemical) (chemical.Chemical, error) {
	r.rows.mu.Lock()
	defer r.rows.mu.Unlock()

	current, ok := r.rows.rows[c.ID]
	if !ok {
		return chemical.Chemical{}, chemical.ErrChemicalNotFound
	}
	if chemical.NameTaken(r.snapshot(), c.Name, c.ID) {
		return chemical.Chemical{}, chemical.ErrChemicalNameExists
	}

	current.Name = c.Name
	current.Unit = c.Unit
	current.LastUpdated = c.LastUpdated
	r.rows.rows[c.ID] = current
	return current, nil
}

func (r *chemicalRepositoryImpl) UpdateStock(ctx context.Context, id string, mv chemical.Movement, fn chemical.StockMutation) (chemical.Chemical, error) {
	r.rows.mu.Lock()
	defer r.rows.mu.Unlock()

	current, ok := r.rows.rows[id]
	if !ok {
		return chemical.Chemical{}, chemical.ErrChemicalNotFound
	}

	updated, err := fn(current)
	if err != nil {
		return current, err
	}
	r.rows.rows[id] = updated

	if mv.ID == "" {
		mv.ID = newID()
	}
	mv.ChemicalID = id
	mv.CreatedAt = now()
	r.movements.put(mv.ID, mv)

	return updated, nil
}

func (r *chemicalRepositoryImpl) ListMovements(ctx context.Context, chemicalID string) ([]chemical.Movement, error) {
	if _, ok := r.rows.get(chemicalID); !ok {
		return nil, chemical.ErrChemicalNotFound
	}
	return r.movements.selectWhere(
		func(m chemical.Movement) bool { return m.ChemicalID == chemicalID },
		func(a, b chemical.Movement) bool {
			if a.OccurredAt.Equal(b.OccurredAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.OccurredAt.After(b.OccurredAt)
		},
	), nil
}
