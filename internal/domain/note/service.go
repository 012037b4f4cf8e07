package note

import "context"

type NoteService interface {
	ListNotes(ctx context.Context, filter NoteFilter) ([]NoteResponse, error)
	GetNote(ctx context.Context, id string) (NoteResponse, error)
	CreateNote(ctx context.Context, req CreateNoteRequest) (NoteResponse, error)
	UpdateNote(ctx context.Context, req UpdateNoteRequest) (NoteResponse, error)
	DeleteNote(ctx context.Context, id string) error
	MarkDone(ctx context.Context, id string) (NoteResponse, error)

	// ListDue returns pending notes that are overdue or due today
	ListDue(ctx context.Context) ([]NoteResponse, error)
}
