package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/note"
)

type noteRepositoryImpl struct {
	rows *table[note.Note]
}

func NewNoteRepository() note.NoteRepository {
	return &noteRepositoryImpl{rows: newTable[note.Note]()}
}

func byTargetAsc(a, b note.Note) bool {
	return a.TargetDateTime.Before(b.TargetDateTime)
}

func (r *noteRepositoryImpl) List(ctx context.Context, filter note.NoteFilter) ([]note.Note, error) {
	return r.rows.selectWhere(filter.Matches, byTargetAsc), nil
}

func (r *noteRepositoryImpl) GetByID(ctx context.Context, id string) (note.Note, error) {
	n, ok := r.rows.get(id)
	if !ok {
		return note.Note{}, note.ErrNoteNotFound
	}
	return n, nil
}

func (r *noteRepositoryImpl) Create(ctx context.Context, n note.Note) (note.Note, error) {
	if n.ID == "" {
		n.ID = newID()
	}
	n.CreatedAt = now()
	n.UpdatedAt = n.CreatedAt
	r.rows.put(n.ID, n)
	return n, nil
}

func (r *noteRepositoryImpl) Update(ctx context.Context, n note.Note) (note.Note, error) {
	n.UpdatedAt = now()
	if !r.rows.replace(n.ID, n) {
		return note.Note{}, note.ErrNoteNotFound
	}
	return n, nil
}

func (r *noteRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !r.rows.remove(id) {
		return note.ErrNoteNotFound
	}
	return nil
}

func (r *noteRepositoryImpl) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]note.Note, error) {
	return r.rows.selectWhere(
		func(n note.Note) bool { return n.Status == note.StatusPending && n.TargetDateTime.Before(cutoff) },
		byTargetAsc,
	), nil
}
