package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/gatepass"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const gatepassColumns = `id, receive_date, send_date, category, invoice_number, remarks, quantity,
	special_note, note_date, created_at, updated_at`

type gatepassRepositoryImpl struct {
	db *database.DB
}

func NewGatepassRepository(db *database.DB) gatepass.GatepassRepository {
	return &gatepassRepositoryImpl{db: db}
}

func scanGatepass(row pgx.Row) (gatepass.Gatepass, error) {
	var g gatepass.Gatepass
	err := row.Scan(
		&g.ID, &g.ReceiveDate, &g.SendDate, &g.Category, &g.InvoiceNumber, &g.Remarks, &g.Quantity,
		&g.SpecialNote, &g.NoteDate, &g.CreatedAt, &g.UpdatedAt,
	)
	return g, err
}

func (r *gatepassRepositoryImpl) query(ctx context.Context, sql string, args ...interface{}) ([]gatepass.Gatepass, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list gatepasses: %w", err)
	}
	defer rows.Close()

	gatepasses := make([]gatepass.Gatepass, 0)
	for rows.Next() {
		g, err := scanGatepass(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gatepass: %w", err)
		}
		gatepasses = append(gatepasses, g)
	}
	return gatepasses, rows.Err()
}

// List implements gatepass.GatepassRepository. A range matches on either
// the receive or the send date.
func (r *gatepassRepositoryImpl) List(ctx context.Context, filter gatepass.GatepassFilter) ([]gatepass.Gatepass, error) {
	var where conditions
	if filter.StartDate != "" || filter.EndDate != "" {
		receive := where.rangeClause("receive_date", filter.StartDate, filter.EndDate)
		send := where.rangeClause("send_date", filter.StartDate, filter.EndDate)
		where.clauses = append(where.clauses, "("+receive+" OR "+send+")")
	}

	return r.query(ctx, "SELECT "+gatepassColumns+" FROM gatepasses"+where.where()+" ORDER BY receive_date DESC, created_at DESC", where.args...)
}

// GetByID implements gatepass.GatepassRepository.
func (r *gatepassRepositoryImpl) GetByID(ctx context.Context, id string) (gatepass.Gatepass, error) {
	if !validID(id) {
		return gatepass.Gatepass{}, gatepass.ErrGatepassNotFound
	}
	q := GetQuerier(ctx, r.db)

	found, err := scanGatepass(q.QueryRow(ctx, "SELECT "+gatepassColumns+" FROM gatepasses WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return gatepass.Gatepass{}, gatepass.ErrGatepassNotFound
		}
		return gatepass.Gatepass{}, fmt.Errorf("failed to get gatepass with id %s: %w", id, err)
	}
	return found, nil
}

// Create implements gatepass.GatepassRepository.
func (r *gatepassRepositoryImpl) Create(ctx context.Context, g gatepass.Gatepass) (gatepass.Gatepass, error) {
	q := GetQuerier(ctx, r.db)

	if g.ID == "" {
		g.ID = newID()
	}

	query := `
		INSERT INTO gatepasses (id, receive_date, send_date, category, invoice_number, remarks, quantity,
			special_note, note_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + gatepassColumns

	created, err := scanGatepass(q.QueryRow(ctx, query,
		g.ID, g.ReceiveDate, g.SendDate, g.Category, g.InvoiceNumber, g.Remarks, g.Quantity,
		g.SpecialNote, g.NoteDate,
	))
	if err != nil {
		return gatepass.Gatepass{}, fmt.Errorf("failed to create gatepass: %w", err)
	}
	return created, nil
}

// Update implements gatepass.GatepassRepository.
func (r *gatepassRepositoryImpl) Update(ctx context.Context, g gatepass.Gatepass) (gatepass.Gatepass, error) {
	if !validID(g.ID) {
		return gatepass.Gatepass{}, gatepass.ErrGatepassNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE gatepasses
		SET receive_date = $2, send_date = $3, category = $4, invoice_number = $5, remarks = $6,
			quantity = $7, special_note = $8, note_date = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + gatepassColumns

	updated, err := scanGatepass(q.QueryRow(ctx, query,
		g.ID, g.ReceiveDate, g.SendDate, g.Category, g.InvoiceNumber, g.Remarks,
		g.Quantity, g.SpecialNote, g.NoteDate,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return gatepass.Gatepass{}, gatepass.ErrGatepassNotFound
		}
		return gatepass.Gatepass{}, fmt.Errorf("failed to update gatepass with id %s: %w", g.ID, err)
	}
	return updated, nil
}

// Delete implements gatepass.GatepassRepository.
func (r *gatepassRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return gatepass.ErrGatepassNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM gatepasses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete gatepass with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return gatepass.ErrGatepassNotFound
	}
	return nil
}

// ListNotesOn implements gatepass.GatepassRepository.
func (r *gatepassRepositoryImpl) ListNotesOn(ctx context.Context, day time.Time) ([]gatepass.Gatepass, error) {
	return r.query(ctx, "SELECT "+gatepassColumns+` FROM gatepasses
		WHERE note_date = $1::date AND TRIM(special_note) <> ''
		ORDER BY receive_date DESC, created_at DESC`, day.Format("2006-01-02"))
}
