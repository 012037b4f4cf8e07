package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/outstanding"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const outstandingColumns = `id, type, name, description, amount, date, status, created_at, updated_at`

type outstandingRepositoryImpl struct {
	db *database.DB
}

func NewOutstandingRepository(db *database.DB) outstanding.OutstandingRepository {
	return &outstandingRepositoryImpl{db: db}
}

func scanOutstanding(row pgx.Row) (outstanding.Outstanding, error) {
	var o outstanding.Outstanding
	var typ, status string
	err := row.Scan(&o.ID, &typ, &o.Name, &o.Description, &o.Amount, &o.Date, &status, &o.CreatedAt, &o.UpdatedAt)
	o.Type = outstanding.Type(typ)
	o.Status = outstanding.Status(status)
	return o, err
}

// List implements outstanding.OutstandingRepository.
func (r *outstandingRepositoryImpl) List(ctx context.Context, filter outstanding.OutstandingFilter) ([]outstanding.Outstanding, error) {
	q := GetQuerier(ctx, r.db)

	var where conditions
	if filter.Type != "" {
		where.add("type = ?", filter.Type)
	}
	if filter.Search != "" {
		where.add("LOWER(name) LIKE ?", likePattern(filter.Search))
	}
	where.dateRange("date", filter.StartDate, filter.EndDate)

	rows, err := q.Query(ctx, "SELECT "+outstandingColumns+" FROM outstanding"+where.where()+" ORDER BY date DESC, created_at DESC", where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list outstanding records: %w", err)
	}
	defer rows.Close()

	records := make([]outstanding.Outstanding, 0)
	for rows.Next() {
		o, err := scanOutstanding(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan outstanding record: %w", err)
		}
		records = append(records, o)
	}
	return records, rows.Err()
}

// GetByID implements outstanding.OutstandingRepository.
func (r *outstandingRepositoryImpl) GetByID(ctx context.Context, id string) (outstanding.Outstanding, error) {
	if !validID(id) {
		return outstanding.Outstanding{}, outstanding.ErrOutstandingNotFound
	}
	q := GetQuerier(ctx, r.db)

	found, err := scanOutstanding(q.QueryRow(ctx, "SELECT "+outstandingColumns+" FROM outstanding WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return outstanding.Outstanding{}, outstanding.ErrOutstandingNotFound
		}
		return outstanding.Outstanding{}, fmt.Errorf("failed to get outstanding record with id %s: %w", id, err)
	}
	return found, nil
}

// Create implements outstanding.OutstandingRepository.
func (r *outstandingRepositoryImpl) Create(ctx context.Context, o outstanding.Outstanding) (outstanding.Outstanding, error) {
	q := GetQuerier(ctx, r.db)

	if o.ID == "" {
		o.ID = newID()
	}

	query := `
		INSERT INTO outstanding (id, type, name, description, amount, date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + outstandingColumns

	created, err := scanOutstanding(q.QueryRow(ctx, query,
		o.ID, string(o.Type), o.Name, o.Description, o.Amount, o.Date, string(o.Status),
	))
	if err != nil {
		return outstanding.Outstanding{}, fmt.Errorf("failed to create outstanding record: %w", err)
	}
	return created, nil
}

// Update implements outstanding.OutstandingRepository.
func (r *outstandingRepositoryImpl) Update(ctx context.Context, o outstanding.Outstanding) (outstanding.Outstanding, error) {
	if !validID(o.ID) {
		return outstanding.Outstanding{}, outstanding.ErrOutstandingNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE outstanding
		SET type = $2, name = $3, description = $4, amount = $5, date = $6, status = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + outstandingColumns

	updated, err := scanOutstanding(q.QueryRow(ctx, query,
		o.ID, string(o.Type), o.Name, o.Description, o.Amount, o.Date, string(o.Status),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return outstanding.Outstanding{}, outstanding.ErrOutstandingNotFound
		}
		return outstanding.Outstanding{}, fmt.Errorf("failed to update outstanding record with id %s: %w", o.ID, err)
	}
	return updated, nil
}

// Delete implements outstanding.OutstandingRepository.
func (r *outstandingRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return outstanding.ErrOutstandingNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM outstanding WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete outstanding record with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return outstanding.ErrOutstandingNotFound
	}
	return nil
}
