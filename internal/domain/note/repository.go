package note

import (
	"context"
	"time"
)

type NoteRepository interface {
	// List returns notes ordered by target time
	List(ctx context.Context, filter NoteFilter) ([]Note, error)
	GetByID(ctx context.Context, id string) (Note, error)
	Create(ctx context.Context, n Note) (Note, error)
	Update(ctx context.Context, n Note) (Note, error)
	Delete(ctx context.Context, id string) error

	// ListPendingBefore returns pending notes targeted before cutoff
	ListPendingBefore(ctx context.Context, cutoff time.Time) ([]Note, error)
}
