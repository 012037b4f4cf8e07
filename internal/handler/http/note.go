package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/note"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type NoteHandler interface {
	ListNotes(w http.ResponseWriter, r *http.Request)
	ListDue(w http.ResponseWriter, r *http.Request)
	GetNote(w http.ResponseWriter, r *http.Request)
	CreateNote(w http.ResponseWriter, r *http.Request)
	UpdateNote(w http.ResponseWriter, r *http.Request)
	DeleteNote(w http.ResponseWriter, r *http.Request)
	MarkDone(w http.ResponseWriter, r *http.Request)
}

type noteHandlerImpl struct {
	noteService note.NoteService
}

func NewNoteHandler(noteService note.NoteService) NoteHandler {
	return &noteHandlerImpl{
		noteService: noteService,
	}
}

// ListNotes implements NoteHandler
func (h *noteHandlerImpl) ListNotes(w http.ResponseWriter, r *http.Request) {
	filter := note.NoteFilter{Status: r.URL.Query().Get("status")}

	notes, err := h.noteService.ListNotes(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, notes)
}

// ListDue implements NoteHandler
func (h *noteHandlerImpl) ListDue(w http.ResponseWriter, r *http.Request) {
	notes, err := h.noteService.ListDue(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, notes)
}

// GetNote implements NoteHandler
func (h *noteHandlerImpl) GetNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Note ID is required", nil)
		return
	}

	n, err := h.noteService.GetNote(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, n)
}

// CreateNote implements NoteHandler
func (h *noteHandlerImpl) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req note.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	n, err := h.noteService.CreateNote(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Note created successfully", n)
}

// UpdateNote implements NoteHandler
func (h *noteHandlerImpl) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Note ID is required", nil)
		return
	}

	var req note.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	n, err := h.noteService.UpdateNote(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Note updated successfully", n)
}

// DeleteNote implements NoteHandler
func (h *noteHandlerImpl) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Note ID is required", nil)
		return
	}

	if err := h.noteService.DeleteNote(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Note deleted successfully", nil)
}

// MarkDone implements NoteHandler
func (h *noteHandlerImpl) MarkDone(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Note ID is required", nil)
		return
	}

	n, err := h.noteService.MarkDone(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Note marked as done", n)
}
