package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/payment"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PaymentHandler interface {
	ListPayments(w http.ResponseWriter, r *http.Request)
	ListGrouped(w http.ResponseWriter, r *http.Request)
	GetPayment(w http.ResponseWriter, r *http.Request)
	CreatePayment(w http.ResponseWriter, r *http.Request)
	UpdatePayment(w http.ResponseWriter, r *http.Request)
	DeletePayment(w http.ResponseWriter, r *http.Request)
	Voucher(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type paymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &paymentHandlerImpl{
		paymentService: paymentService,
	}
}

func paymentFilter(r *http.Request) payment.PaymentFilter {
	q := r.URL.Query()
	return payment.PaymentFilter{
		Search:    q.Get("search"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
}

// ListPayments implements PaymentHandler
func (h *paymentHandlerImpl) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.ListPayments(r.Context(), paymentFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, payments)
}

// ListGrouped implements PaymentHandler
func (h *paymentHandlerImpl) ListGrouped(w http.ResponseWriter, r *http.Request) {
	groups, err := h.paymentService.ListGrouped(r.Context(), paymentFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, groups)
}

// GetPayment implements PaymentHandler
func (h *paymentHandlerImpl) GetPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payment ID is required", nil)
		return
	}

	p, err := h.paymentService.GetPayment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

// CreatePayment implements PaymentHandler
func (h *paymentHandlerImpl) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req payment.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	p, err := h.paymentService.CreatePayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment recorded successfully", p)
}

// UpdatePayment implements PaymentHandler
func (h *paymentHandlerImpl) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payment ID is required", nil)
		return
	}

	var req payment.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	p, err := h.paymentService.UpdatePayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment updated successfully", p)
}

// DeletePayment implements PaymentHandler
func (h *paymentHandlerImpl) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payment ID is required", nil)
		return
	}

	if err := h.paymentService.DeletePayment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment deleted successfully", nil)
}

// Voucher implements PaymentHandler
func (h *paymentHandlerImpl) Voucher(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payment ID is required", nil)
		return
	}

	doc, err := h.paymentService.Voucher(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Document(w, doc)
}

// Export implements PaymentHandler
func (h *paymentHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.paymentService.Export(r.Context(), paymentFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Document(w, doc)
}
