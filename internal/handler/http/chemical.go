package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/chemical"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ChemicalHandler interface {
	ListChemicals(w http.ResponseWriter, r *http.Request)
	GetChemical(w http.ResponseWriter, r *http.Request)
	CreateChemicalType(w http.ResponseWriter, r *http.Request)
	UpdateChemicalDetails(w http.ResponseWriter, r *http.Request)

	// Stock movements
	RecordPurchase(w http.ResponseWriter, r *http.Request)
	RecordUsage(w http.ResponseWriter, r *http.Request)
	ListMovements(w http.ResponseWriter, r *http.Request)
}

type chemicalHandlerImpl struct {
	chemicalService chemical.ChemicalService
}

func NewChemicalHandler(chemicalService chemical.ChemicalService) ChemicalHandler {
	return &chemicalHandlerImpl{
		chemicalService: chemicalService,
	}
}

// ListChemicals implements ChemicalHandler
func (h *chemicalHandlerImpl) ListChemicals(w http.ResponseWriter, r *http.Request) {
	chemicals, err := h.chemicalService.ListChemicals(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, chemicals)
}

// GetChemical implements ChemicalHandler
func (h *chemicalHandlerImpl) GetChemical(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Chemical ID is required", nil)
		return
	}

	c, err := h.chemicalService.GetChemical(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, c)
}

// CreateChemicalType implements ChemicalHandler
func (h *chemicalHandlerImpl) CreateChemicalType(w http.ResponseWriter, r *http.Request) {
	var req chemical.CreateChemicalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	c, err := h.chemicalService.CreateChemicalType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Chemical type created successfully", c)
}

// UpdateChemicalDetails implements ChemicalHandler
func (h *chemicalHandlerImpl) UpdateChemicalDetails(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Chemical ID is required", nil)
		return
	}

	var req chemical.UpdateChemicalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	c, err := h.chemicalService.UpdateChemicalDetails(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Chemical details updated successfully", c)
}

// RecordPurchase implements ChemicalHandler
func (h *chemicalHandlerImpl) RecordPurchase(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Chemical ID is required", nil)
		return
	}

	var req chemical.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ChemicalID = id

	c, err := h.chemicalService.RecordPurchase(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Purchase recorded successfully", c)
}

// RecordUsage implements ChemicalHandler
func (h *chemicalHandlerImpl) RecordUsage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Chemical ID is required", nil)
		return
	}

	var req chemical.UsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ChemicalID = id

	c, err := h.chemicalService.RecordUsage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Usage recorded successfully", c)
}

// ListMovements implements ChemicalHandler
func (h *chemicalHandlerImpl) ListMovements(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Chemical ID is required", nil)
		return
	}

	movements, err := h.chemicalService.ListMovements(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, movements)
}
