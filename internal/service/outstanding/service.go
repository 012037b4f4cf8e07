package outstanding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/outstanding"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
)

var exportColumns = []document.Column{
	{Header: "Type (Payable/Receivable)", Width: 12},
	{Header: "Name", Width: 25},
	{Header: "Description", Width: 35},
	{Header: "Amount (Rs.)", Width: 15},
	{Header: "Date", Width: 12},
	{Header: "Status", Width: 15},
	{Header: "Record ID", Width: 18},
}

type OutstandingServiceImpl struct {
	outstandingRepo outstanding.OutstandingRepository
	renderer        document.Renderer
	clock           clock.Clock
	metrics         *metrics.Metrics
}

func NewOutstandingService(
	outstandingRepo outstanding.OutstandingRepository,
	renderer document.Renderer,
	clk clock.Clock,
	m *metrics.Metrics,
) outstanding.OutstandingService {
	return &OutstandingServiceImpl{
		outstandingRepo: outstandingRepo,
		renderer:        renderer,
		clock:           clk,
		metrics:         m,
	}
}

func (s *OutstandingServiceImpl) list(ctx context.Context, filter outstanding.OutstandingFilter) ([]outstanding.Outstanding, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.outstandingRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list outstanding records: %w", err)
	}
	return records, nil
}

// ListOutstanding implements outstanding.OutstandingService.
func (s *OutstandingServiceImpl) ListOutstanding(ctx context.Context, filter outstanding.OutstandingFilter) ([]outstanding.OutstandingResponse, error) {
	records, err := s.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]outstanding.OutstandingResponse, 0, len(records))
	for _, o := range records {
		responses = append(responses, outstanding.NewOutstandingResponse(o))
	}
	return responses, nil
}

// GetOutstanding implements outstanding.OutstandingService.
func (s *OutstandingServiceImpl) GetOutstanding(ctx context.Context, id string) (outstanding.OutstandingResponse, error) {
	o, err := s.outstandingRepo.GetByID(ctx, id)
	if err != nil {
		return outstanding.OutstandingResponse{}, err
	}
	return outstanding.NewOutstandingResponse(o), nil
}

// CreateOutstanding implements outstanding.OutstandingService.
func (s *OutstandingServiceImpl) CreateOutstanding(ctx context.Context, req outstanding.CreateOutstandingRequest) (resp outstanding.OutstandingResponse, err error) {
	defer func() { s.metrics.ObserveMutation("outstanding", "create", err) }()

	o, err := outstanding.NewOutstanding(req, validator.DateOnly(s.clock.Now()))
	if err != nil {
		return outstanding.OutstandingResponse{}, err
	}

	created, err := s.outstandingRepo.Create(ctx, o)
	if err != nil {
		return outstanding.OutstandingResponse{}, fmt.Errorf("failed to create outstanding record: %w", err)
	}

	slog.Info("Outstanding record created", "id", created.ID, "type", created.Type, "amount", created.Amount.String())
	return outstanding.NewOutstandingResponse(created), nil
}

// UpdateOutstanding implements outstanding.OutstandingService.
func (s *OutstandingServiceImpl) UpdateOutstanding(ctx context.Context, req outstanding.UpdateOutstandingRequest) (resp outstanding.OutstandingResponse, err error) {
	defer func() { s.metrics.ObserveMutation("outstanding", "update", err) }()

	current, err := s.outstandingRepo.GetByID(ctx, req.ID)
	if err != nil {
		return outstanding.OutstandingResponse{}, err
	}

	next, err := outstanding.ApplyUpdate(current, req)
	if err != nil {
		return outstanding.OutstandingResponse{}, err
	}

	updated, err := s.outstandingRepo.Update(ctx, next)
	if err != nil {
		return outstanding.OutstandingResponse{}, err
	}
	return outstanding.NewOutstandingResponse(updated), nil
}

// DeleteOutstanding implements outstanding.OutstandingService.
func (s *OutstandingServiceImpl) DeleteOutstanding(ctx context.Context, id string) (err error) {
	defer func() { s.metrics.ObserveMutation("outstanding", "delete", err) }()

	return s.outstandingRepo.Delete(ctx, id)
}

// GetTotals implements outstanding.OutstandingService.
func (s *OutstandingServiceImpl) GetTotals(ctx context.Context, filter outstanding.OutstandingFilter) (outstanding.TotalsResponse, error) {
	records, err := s.list(ctx, filter)
	if err != nil {
		return outstanding.TotalsResponse{}, err
	}
	return outstanding.Totals(records), nil
}

// Export implements outstanding.OutstandingService.
func (s *OutstandingServiceImpl) Export(ctx context.Context, filter outstanding.OutstandingFilter) (document.Document, error) {
	records, err := s.list(ctx, filter)
	if err != nil {
		return document.Document{}, err
	}

	rows := make([][]any, 0, len(records))
	for _, o := range records {
		rows = append(rows, []any{
			typeLabel(o.Type),
			o.Name,
			o.Description,
			o.Amount,
			o.Date.Format(validator.DateLayout),
			string(o.Status),
			o.ID,
		})
	}

	sheetName, fileName := "Outstanding", "outstanding_export.xlsx"
	switch outstanding.Type(filter.Type) {
	case outstanding.TypePayable:
		sheetName, fileName = "Payables", "payables_export.xlsx"
	case outstanding.TypeReceivable:
		sheetName, fileName = "Receivables", "receivables_export.xlsx"
	}

	return s.renderer.Spreadsheet(ctx, document.Sheet{
		FileName:  fileName,
		SheetName: sheetName,
		Columns:   exportColumns,
		Rows:      rows,
	})
}

func typeLabel(t outstanding.Type) string {
	switch t {
	case outstanding.TypePayable:
		return "Payable"
	case outstanding.TypeReceivable:
		return "Receivable"
	}
	return string(t)
}
