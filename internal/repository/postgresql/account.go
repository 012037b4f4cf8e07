package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/account"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const accountRecordColumns = `id, type, date, description, amount, created_at, updated_at`

type accountRecordRepositoryImpl struct {
	db *database.DB
}

func NewAccountRecordRepository(db *database.DB) account.RecordRepository {
	return &accountRecordRepositoryImpl{db: db}
}

// scanRecord maps a NULL date to the zero time, which the summary skips.
func scanRecord(row pgx.Row) (account.Record, error) {
	var rec account.Record
	var typ string
	var date *time.Time
	err := row.Scan(&rec.ID, &typ, &date, &rec.Description, &rec.Amount, &rec.CreatedAt, &rec.UpdatedAt)
	rec.Type = account.RecordType(typ)
	if date != nil {
		rec.Date = *date
	}
	return rec, err
}

func nullableDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// List implements account.RecordRepository.
func (r *accountRecordRepositoryImpl) List(ctx context.Context, filter account.RecordFilter) ([]account.Record, error) {
	q := GetQuerier(ctx, r.db)

	var where conditions
	if filter.Type != "" {
		where.add("type = ?", filter.Type)
	}
	where.dateRange("date", filter.StartDate, filter.EndDate)

	rows, err := q.Query(ctx, "SELECT "+accountRecordColumns+" FROM account_records"+where.where()+" ORDER BY date DESC NULLS LAST, created_at DESC", where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list account records: %w", err)
	}
	defer rows.Close()

	records := make([]account.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetByID implements account.RecordRepository.
func (r *accountRecordRepositoryImpl) GetByID(ctx context.Context, id string) (account.Record, error) {
	if !validID(id) {
		return account.Record{}, account.ErrRecordNotFound
	}
	q := GetQuerier(ctx, r.db)

	found, err := scanRecord(q.QueryRow(ctx, "SELECT "+accountRecordColumns+" FROM account_records WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Record{}, account.ErrRecordNotFound
		}
		return account.Record{}, fmt.Errorf("failed to get account record with id %s: %w", id, err)
	}
	return found, nil
}

// Create implements account.RecordRepository.
func (r *accountRecordRepositoryImpl) Create(ctx context.Context, rec account.Record) (account.Record, error) {
	q := GetQuerier(ctx, r.db)

	if rec.ID == "" {
		rec.ID = newID()
	}

	query := `
		INSERT INTO account_records (id, type, date, description, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + accountRecordColumns

	created, err := scanRecord(q.QueryRow(ctx, query, rec.ID, string(rec.Type), nullableDate(rec.Date), rec.Description, rec.Amount))
	if err != nil {
		return account.Record{}, fmt.Errorf("failed to create account record: %w", err)
	}
	return created, nil
}

// Update implements account.RecordRepository.
func (r *accountRecordRepositoryImpl) Update(ctx context.Context, rec account.Record) (account.Record, error) {
	if !validID(rec.ID) {
		return account.Record{}, account.ErrRecordNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE account_records
		SET type = $2, date = $3, description = $4, amount = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + accountRecordColumns

	updated, err := scanRecord(q.QueryRow(ctx, query, rec.ID, string(rec.Type), nullableDate(rec.Date), rec.Description, rec.Amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Record{}, account.ErrRecordNotFound
		}
		return account.Record{}, fmt.Errorf("failed to update account record with id %s: %w", rec.ID, err)
	}
	return updated, nil
}

// Delete implements account.RecordRepository.
func (r *accountRecordRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return account.ErrRecordNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM account_records WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete account record with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return account.ErrRecordNotFound
	}
	return nil
}
