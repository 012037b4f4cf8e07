package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/payment"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
)

var exportColumns = []document.Column{
	{Header: "Date", Width: 12},
	{Header: "Reason", Width: 35},
	{Header: "Paid To / For Whom", Width: 25},
	{Header: "Amount (Rs.)", Width: 15},
	{Header: "Voucher ID", Width: 18},
}

type PaymentServiceImpl struct {
	paymentRepo payment.PaymentRepository
	renderer    document.Renderer
	clock       clock.Clock
	metrics     *metrics.Metrics
}

func NewPaymentService(
	paymentRepo payment.PaymentRepository,
	renderer document.Renderer,
	clk clock.Clock,
	m *metrics.Metrics,
) payment.PaymentService {
	return &PaymentServiceImpl{
		paymentRepo: paymentRepo,
		renderer:    renderer,
		clock:       clk,
		metrics:     m,
	}
}

func (s *PaymentServiceImpl) list(ctx context.Context, filter payment.PaymentFilter) ([]payment.Payment, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// ListPayments implements payment.PaymentService.
func (s *PaymentServiceImpl) ListPayments(ctx context.Context, filter payment.PaymentFilter) ([]payment.PaymentResponse, error) {
	payments, err := s.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, payment.NewPaymentResponse(p))
	}
	return responses, nil
}

// ListGrouped implements payment.PaymentService.
func (s *PaymentServiceImpl) ListGrouped(ctx context.Context, filter payment.PaymentFilter) ([]payment.DateGroupResponse, error) {
	payments, err := s.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	groups := payment.GroupByDate(payments)
	responses := make([]payment.DateGroupResponse, 0, len(groups))
	for _, g := range groups {
		responses = append(responses, payment.NewDateGroupResponse(g))
	}
	return responses, nil
}

// GetPayment implements payment.PaymentService.
func (s *PaymentServiceImpl) GetPayment(ctx context.Context, id string) (payment.PaymentResponse, error) {
	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	return payment.NewPaymentResponse(p), nil
}

// CreatePayment implements payment.PaymentService.
func (s *PaymentServiceImpl) CreatePayment(ctx context.Context, req payment.CreatePaymentRequest) (resp payment.PaymentResponse, err error) {
	defer func() { s.metrics.ObserveMutation("payment", "create", err) }()

	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	created, err := s.paymentRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return payment.PaymentResponse{}, fmt.Errorf("failed to create payment: %w", err)
	}

	slog.Info("Payment recorded", "payment_id", created.ID, "paid_to", created.PaidTo, "amount", created.Amount.String())
	return payment.NewPaymentResponse(created), nil
}

// UpdatePayment implements payment.PaymentService.
func (s *PaymentServiceImpl) UpdatePayment(ctx context.Context, req payment.UpdatePaymentRequest) (resp payment.PaymentResponse, err error) {
	defer func() { s.metrics.ObserveMutation("payment", "update", err) }()

	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	current, err := s.paymentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	updated, err := s.paymentRepo.Update(ctx, req.Apply(current))
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	return payment.NewPaymentResponse(updated), nil
}

// DeletePayment implements payment.PaymentService.
func (s *PaymentServiceImpl) DeletePayment(ctx context.Context, id string) (err error) {
	defer func() { s.metrics.ObserveMutation("payment", "delete", err) }()

	return s.paymentRepo.Delete(ctx, id)
}

// Voucher implements payment.PaymentService.
func (s *PaymentServiceImpl) Voucher(ctx context.Context, id string) (document.Document, error) {
	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return document.Document{}, err
	}

	return s.renderer.PaymentVoucher(ctx, document.Voucher{
		PaymentID:   p.ID,
		Date:        p.Date,
		Reason:      p.Reason,
		PaidTo:      p.PaidTo,
		Amount:      p.Amount,
		GeneratedAt: s.clock.Now(),
	})
}

// Export implements payment.PaymentService.
func (s *PaymentServiceImpl) Export(ctx context.Context, filter payment.PaymentFilter) (document.Document, error) {
	payments, err := s.list(ctx, filter)
	if err != nil {
		return document.Document{}, err
	}

	rows := make([][]any, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []any{
			p.Date.Format(validator.DateLayout),
			p.Reason,
			p.PaidTo,
			p.Amount,
			p.ID,
		})
	}

	return s.renderer.Spreadsheet(ctx, document.Sheet{
		FileName:  "payments_export.xlsx",
		SheetName: "Payments",
		Columns:   exportColumns,
		Rows:      rows,
	})
}
