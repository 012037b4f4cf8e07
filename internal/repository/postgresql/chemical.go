package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/chemical"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const chemicalColumns = `id, name, unit, quantity, last_updated, created_at`

type chemicalRepositoryImpl struct {
	db *database.DB
}

func NewChemicalRepository(db *database.DB) chemical.ChemicalRepository {
	return &chemicalRepositoryImpl{db: db}
}

func scanChemical(row pgx.Row) (chemical.Chemical, error) {
	var c chemical.Chemical
	err := row.Scan(&c.ID, &c.Name, &c.Unit, &c.Quantity, &c.LastUpdated, &c.CreatedAt)
	return c, err
}

// List implements chemical.ChemicalRepository.
func (r *chemicalRepositoryImpl) List(ctx context.Context) ([]chemical.Chemical, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, "SELECT "+chemicalColumns+" FROM chemicals ORDER BY LOWER(name)")
	if err != nil {
		return nil, fmt.Errorf("failed to list chemicals: %w", err)
	}
	defer rows.Close()

	chemicals := make([]chemical.Chemical, 0)
	for rows.Next() {
		c, err := scanChemical(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chemical: %w", err)
		}
		chemicals = append(chemicals, c)
	}
	return chemicals, rows.Err()
}

// GetByID implements chemical.ChemicalRepository.
func (r *chemicalRepositoryImpl) GetByID(ctx context.Context, id string) (chemical.Chemical, error) {
	if !validID(id) {
		return chemical.Chemical{}, chemical.ErrChemicalNotFound
	}
	q := GetQuerier(ctx, r.db)

	found, err := scanChemical(q.QueryRow(ctx, "SELECT "+chemicalColumns+" FROM chemicals WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return chemical.Chemical{}, chemical.ErrChemicalNotFound
		}
		return chemical.Chemical{}, fmt.Errorf("failed to get chemical with id %s: %w", id, err)
	}
	return found, nil
}

// Create implements chemical.ChemicalRepository. The unique index on
// LOWER(name) enforces case-insensitive uniqueness.
func (r *chemicalRepositoryImpl) Create(ctx context.Context, c chemical.Chemical) (chemical.Chemical, error) {
	q := GetQuerier(ctx, r.db)

	if c.ID == "" {
		c.ID = newID()
	}

	query := `
		INSERT INTO chemicals (id, name, unit, quantity, last_updated)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + chemicalColumns

	created, err := scanChemical(q.QueryRow(ctx, query, c.ID, c.Name, c.Unit, c.Quantity, c.LastUpdated))
	if err != nil {
		if isUniqueViolation(err) {
			return chemical.Chemical{}, chemical.ErrChemicalNameExists
		}
		return chemical.Chemical{}, fmt.Errorf("failed to create chemical: %w", err)
	}
	return created, nil
}

// UpdateDetails implements chemical.ChemicalRepository.
func (r *chemicalRepositoryImpl) UpdateDetails(ctx context.Context, c chemical.Chemical) (chemical.Chemical, error) {
	if !validID(c.ID) {
		return chemical.Chemical{}, chemical.ErrChemicalNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE chemicals
		SET name = $2, unit = $3, last_updated = $4
		WHERE id = $1
		RETURNING ` + chemicalColumns

	updated, err := scanChemical(q.QueryRow(ctx, query, c.ID, c.Name, c.Unit, c.LastUpdated))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return chemical.Chemical{}, chemical.ErrChemicalNotFound
		}
		if isUniqueViolation(err) {
			return chemical.Chemical{}, chemical.ErrChemicalNameExists
		}
		return chemical.Chemical{}, fmt.Errorf("failed to update chemical with id %s: %w", c.ID, err)
	}
	return updated, nil
}

// UpdateStock implements chemical.ChemicalRepository. The row is locked with
// SELECT ... FOR UPDATE so concurrent usages are serialized.
func (r *chemicalRepositoryImpl) UpdateStock(ctx context.Context, id string, mv chemical.Movement, fn chemical.StockMutation) (chemical.Chemical, error) {
	if !validID(id) {
		return chemical.Chemical{}, chemical.ErrChemicalNotFound
	}
	var result chemical.Chemical

	err := WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		current, err := scanChemical(tx.QueryRow(ctx, "SELECT "+chemicalColumns+" FROM chemicals WHERE id = $1 FOR UPDATE", id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return chemical.ErrChemicalNotFound
			}
			return fmt.Errorf("failed to lock chemical with id %s: %w", id, err)
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		result, err = scanChemical(tx.QueryRow(ctx, `
			UPDATE chemicals SET quantity = $2, last_updated = $3
			WHERE id = $1
			RETURNING `+chemicalColumns, id, next.Quantity, next.LastUpdated))
		if err != nil {
			return fmt.Errorf("failed to update stock for chemical with id %s: %w", id, err)
		}

		if mv.ID == "" {
			mv.ID = newID()
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO chemical_movements (id, chemical_id, kind, quantity, supplier, cost, reason, occurred_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			mv.ID, id, string(mv.Kind), mv.Quantity, mv.Supplier, mv.Cost, mv.Reason, mv.OccurredAt,
		)
		if err != nil {
			return fmt.Errorf("failed to record %s movement: %w", mv.Kind, err)
		}
		return nil
	})
	if err != nil {
		return chemical.Chemical{}, err
	}
	return result, nil
}

// ListMovements implements chemical.ChemicalRepository.
func (r *chemicalRepositoryImpl) ListMovements(ctx context.Context, chemicalID string) ([]chemical.Movement, error) {
	if _, err := r.GetByID(ctx, chemicalID); err != nil {
		return nil, err
	}

	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `
		SELECT id, chemical_id, kind, quantity, supplier, cost, reason, occurred_at, created_at
		FROM chemical_movements
		WHERE chemical_id = $1
		ORDER BY occurred_at DESC, created_at DESC`, chemicalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements for chemical with id %s: %w", chemicalID, err)
	}
	defer rows.Close()

	movements := make([]chemical.Movement, 0)
	for rows.Next() {
		var m chemical.Movement
		var kind string
		if err := rows.Scan(&m.ID, &m.ChemicalID, &kind, &m.Quantity, &m.Supplier, &m.Cost, &m.Reason, &m.OccurredAt, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}
		m.Kind = chemical.MovementKind(kind)
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
