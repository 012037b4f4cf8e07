package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/note"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
)

type NoteServiceImpl struct {
	noteRepo note.NoteRepository
	clock    clock.Clock
	metrics  *metrics.Metrics
}

func NewNoteService(noteRepo note.NoteRepository, clk clock.Clock, m *metrics.Metrics) note.NoteService {
	return &NoteServiceImpl{
		noteRepo: noteRepo,
		clock:    clk,
		metrics:  m,
	}
}

func (s *NoteServiceImpl) responses(notes []note.Note) []note.NoteResponse {
	now := s.clock.Now()
	out := make([]note.NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, note.NewNoteResponse(n, now))
	}
	return out
}

// ListNotes implements note.NoteService.
func (s *NoteServiceImpl) ListNotes(ctx context.Context, filter note.NoteFilter) ([]note.NoteResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return s.responses(notes), nil
}

// GetNote implements note.NoteService.
func (s *NoteServiceImpl) GetNote(ctx context.Context, id string) (note.NoteResponse, error) {
	n, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return note.NoteResponse{}, err
	}
	return note.NewNoteResponse(n, s.clock.Now()), nil
}

// CreateNote implements note.NoteService.
func (s *NoteServiceImpl) CreateNote(ctx context.Context, req note.CreateNoteRequest) (resp note.NoteResponse, err error) {
	defer func() { s.metrics.ObserveMutation("note", "create", err) }()

	if err := req.Validate(); err != nil {
		return note.NoteResponse{}, err
	}

	created, err := s.noteRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return note.NoteResponse{}, fmt.Errorf("failed to create note: %w", err)
	}

	slog.Info("Note created", "note_id", created.ID, "target", created.TargetDateTime)
	return note.NewNoteResponse(created, s.clock.Now()), nil
}

// UpdateNote implements note.NoteService.
func (s *NoteServiceImpl) UpdateNote(ctx context.Context, req note.UpdateNoteRequest) (resp note.NoteResponse, err error) {
	defer func() { s.metrics.ObserveMutation("note", "update", err) }()

	if err := req.Validate(); err != nil {
		return note.NoteResponse{}, err
	}

	current, err := s.noteRepo.GetByID(ctx, req.ID)
	if err != nil {
		return note.NoteResponse{}, err
	}

	updated, err := s.noteRepo.Update(ctx, req.Apply(current))
	if err != nil {
		return note.NoteResponse{}, err
	}
	return note.NewNoteResponse(updated, s.clock.Now()), nil
}

// DeleteNote implements note.NoteService.
func (s *NoteServiceImpl) DeleteNote(ctx context.Context, id string) (err error) {
	defer func() { s.metrics.ObserveMutation("note", "delete", err) }()

	return s.noteRepo.Delete(ctx, id)
}

// MarkDone implements note.NoteService.
func (s *NoteServiceImpl) MarkDone(ctx context.Context, id string) (resp note.NoteResponse, err error) {
	defer func() { s.metrics.ObserveMutation("note", "done", err) }()

	current, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return note.NoteResponse{}, err
	}
	if current.Status == note.StatusDone {
		return note.NewNoteResponse(current, s.clock.Now()), nil
	}

	current.Status = note.StatusDone
	updated, err := s.noteRepo.Update(ctx, current)
	if err != nil {
		return note.NoteResponse{}, err
	}
	return note.NewNoteResponse(updated, s.clock.Now()), nil
}

// ListDue implements note.NoteService.
func (s *NoteServiceImpl) ListDue(ctx context.Context) ([]note.NoteResponse, error) {
	now := s.clock.Now()
	cutoff := validator.DateOnly(now).AddDate(0, 0, 1)

	pending, err := s.noteRepo.ListPendingBefore(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list due notes: %w", err)
	}

	due := make([]note.NoteResponse, 0, len(pending))
	for _, n := range pending {
		if n.NeedsAttention(now) {
			due = append(due, note.NewNoteResponse(n, now))
		}
	}
	return due, nil
}
