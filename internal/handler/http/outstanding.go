package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/outstanding"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OutstandingHandler interface {
	ListOutstanding(w http.ResponseWriter, r *http.Request)
	GetOutstanding(w http.ResponseWriter, r *http.Request)
	CreateOutstanding(w http.ResponseWriter, r *http.Request)
	UpdateOutstanding(w http.ResponseWriter, r *http.Request)
	DeleteOutstanding(w http.ResponseWriter, r *http.Request)
	Totals(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type outstandingHandlerImpl struct {
	outstandingService outstanding.OutstandingService
}

func NewOutstandingHandler(outstandingService outstanding.OutstandingService) OutstandingHandler {
	return &outstandingHandlerImpl{
		outstandingService: outstandingService,
	}
}

func outstandingFilter(r *http.Request) outstanding.OutstandingFilter {
	q := r.URL.Query()
	return outstanding.OutstandingFilter{
		Type:      q.Get("type"),
		Search:    q.Get("search"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
}

// ListOutstanding implements OutstandingHandler
func (h *outstandingHandlerImpl) ListOutstanding(w http.ResponseWriter, r *http.Request) {
	records, err := h.outstandingService.ListOutstanding(r.Context(), outstandingFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, records)
}

// GetOutstanding implements OutstandingHandler
func (h *outstandingHandlerImpl) GetOutstanding(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	o, err := h.outstandingService.GetOutstanding(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, o)
}

// CreateOutstanding implements OutstandingHandler
func (h *outstandingHandlerImpl) CreateOutstanding(w http.ResponseWriter, r *http.Request) {
	var req outstanding.CreateOutstandingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	o, err := h.outstandingService.CreateOutstanding(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Outstanding record created successfully", o)
}

// UpdateOutstanding implements OutstandingHandler. Fields left out of the
// body keep their stored values.
func (h *outstandingHandlerImpl) UpdateOutstanding(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	var req outstanding.UpdateOutstandingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	o, err := h.outstandingService.UpdateOutstanding(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Outstanding record updated successfully", o)
}

// DeleteOutstanding implements OutstandingHandler
func (h *outstandingHandlerImpl) DeleteOutstanding(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	if err := h.outstandingService.DeleteOutstanding(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Outstanding record deleted successfully", nil)
}

// Totals implements OutstandingHandler
func (h *outstandingHandlerImpl) Totals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.outstandingService.GetTotals(r.Context(), outstandingFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, totals)
}

// Export implements OutstandingHandler
func (h *outstandingHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.outstandingService.Export(r.Context(), outstandingFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Document(w, doc)
}
