package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/gatepass"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type GatepassHandler interface {
	ListGatepasses(w http.ResponseWriter, r *http.Request)
	GetGatepass(w http.ResponseWriter, r *http.Request)
	CreateGatepass(w http.ResponseWriter, r *http.Request)
	UpdateGatepass(w http.ResponseWriter, r *http.Request)
	DeleteGatepass(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type gatepassHandlerImpl struct {
	gatepassService gatepass.GatepassService
}

func NewGatepassHandler(gatepassService gatepass.GatepassService) GatepassHandler {
	return &gatepassHandlerImpl{
		gatepassService: gatepassService,
	}
}

func gatepassFilter(r *http.Request) gatepass.GatepassFilter {
	q := r.URL.Query()
	return gatepass.GatepassFilter{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
}

// ListGatepasses implements GatepassHandler
func (h *gatepassHandlerImpl) ListGatepasses(w http.ResponseWriter, r *http.Request) {
	entries, err := h.gatepassService.ListGatepasses(r.Context(), gatepassFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, entries)
}

// GetGatepass implements GatepassHandler
func (h *gatepassHandlerImpl) GetGatepass(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Gatepass ID is required", nil)
		return
	}

	g, err := h.gatepassService.GetGatepass(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, g)
}

// CreateGatepass implements GatepassHandler
func (h *gatepassHandlerImpl) CreateGatepass(w http.ResponseWriter, r *http.Request) {
	var req gatepass.CreateGatepassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	g, err := h.gatepassService.CreateGatepass(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Gatepass created successfully", g)
}

// UpdateGatepass implements GatepassHandler
func (h *gatepassHandlerImpl) UpdateGatepass(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Gatepass ID is required", nil)
		return
	}

	var req gatepass.UpdateGatepassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	g, err := h.gatepassService.UpdateGatepass(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Gatepass updated successfully", g)
}

// DeleteGatepass implements GatepassHandler
func (h *gatepassHandlerImpl) DeleteGatepass(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Gatepass ID is required", nil)
		return
	}

	if err := h.gatepassService.DeleteGatepass(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Gatepass deleted successfully", nil)
}

// Export implements GatepassHandler
func (h *gatepassHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.gatepassService.Export(r.Context(), gatepassFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Document(w, doc)
}
