package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/note"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const noteColumns = `id, content, target_date_time, status, created_at, updated_at`

type noteRepositoryImpl struct {
	db *database.DB
}

func NewNoteRepository(db *database.DB) note.NoteRepository {
	return &noteRepositoryImpl{db: db}
}

func scanNote(row pgx.Row) (note.Note, error) {
	var n note.Note
	var status string
	err := row.Scan(&n.ID, &n.Content, &n.TargetDateTime, &status, &n.CreatedAt, &n.UpdatedAt)
	n.Status = note.Status(status)
	return n, err
}

func (r *noteRepositoryImpl) query(ctx context.Context, sql string, args ...interface{}) ([]note.Note, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]note.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// List implements note.NoteRepository.
func (r *noteRepositoryImpl) List(ctx context.Context, filter note.NoteFilter) ([]note.Note, error) {
	var where conditions
	if filter.Status != "" {
		where.add("status = ?", filter.Status)
	}
	return r.query(ctx, "SELECT "+noteColumns+" FROM notes"+where.where()+" ORDER BY target_date_time", where.args...)
}

// GetByID implements note.NoteRepository.
func (r *noteRepositoryImpl) GetByID(ctx context.Context, id string) (note.Note, error) {
	if !validID(id) {
		return note.Note{}, note.ErrNoteNotFound
	}
	q := GetQuerier(ctx, r.db)

	found, err := scanNote(q.QueryRow(ctx, "SELECT "+noteColumns+" FROM notes WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return note.Note{}, note.ErrNoteNotFound
		}
		return note.Note{}, fmt.Errorf("failed to get note with id %s: %w", id, err)
	}
	return found, nil
}

// Create implements note.NoteRepository.
func (r *noteRepositoryImpl) Create(ctx context.Context, n note.Note) (note.Note, error) {
	q := GetQuerier(ctx, r.db)

	if n.ID == "" {
		n.ID = newID()
	}

	query := `
		INSERT INTO notes (id, content, target_date_time, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + noteColumns

	created, err := scanNote(q.QueryRow(ctx, query, n.ID, n.Content, n.TargetDateTime, string(n.Status)))
	if err != nil {
		return note.Note{}, fmt.Errorf("failed to create note: %w", err)
	}
	return created, nil
}

// Update implements note.NoteRepository.
func (r *noteRepositoryImpl) Update(ctx context.Context, n note.Note) (note.Note, error) {
	if !validID(n.ID) {
		return note.Note{}, note.ErrNoteNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notes
		SET content = $2, target_date_time = $3, status = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + noteColumns

	updated, err := scanNote(q.QueryRow(ctx, query, n.ID, n.Content, n.TargetDateTime, string(n.Status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return note.Note{}, note.ErrNoteNotFound
		}
		return note.Note{}, fmt.Errorf("failed to update note with id %s: %w", n.ID, err)
	}
	return updated, nil
}

// Delete implements note.NoteRepository.
func (r *noteRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return note.ErrNoteNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM notes WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete note with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return note.ErrNoteNotFound
	}
	return nil
}

// ListPendingBefore implements note.NoteRepository.
func (r *noteRepositoryImpl) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]note.Note, error) {
	return r.query(ctx, "SELECT "+noteColumns+` FROM notes
		WHERE status = $1 AND target_date_time < $2
		ORDER BY target_date_time`, string(note.StatusPending), cutoff)
}
