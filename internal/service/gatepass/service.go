package gatepass

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/gatepass"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
)

var exportColumns = []document.Column{
	{Header: "Receive Date", Width: 12},
	{Header: "Send Date", Width: 12},
	{Header: "Category", Width: 25},
	{Header: "Invoice No", Width: 20},
	{Header: "Quantity", Width: 15},
	{Header: "Remarks", Width: 40},
	{Header: "Special Note", Width: 40},
	{Header: "Note Date", Width: 12},
	{Header: "Record ID", Width: 18},
}

type GatepassServiceImpl struct {
	gatepassRepo gatepass.GatepassRepository
	renderer     document.Renderer
	metrics      *metrics.Metrics
}

func NewGatepassService(gatepassRepo gatepass.GatepassRepository, renderer document.Renderer, m *metrics.Metrics) gatepass.GatepassService {
	return &GatepassServiceImpl{
		gatepassRepo: gatepassRepo,
		renderer:     renderer,
		metrics:      m,
	}
}

func (s *GatepassServiceImpl) list(ctx context.Context, filter gatepass.GatepassFilter) ([]gatepass.Gatepass, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.gatepassRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list gatepasses: %w", err)
	}
	return entries, nil
}

// ListGatepasses implements gatepass.GatepassService.
func (s *GatepassServiceImpl) ListGatepasses(ctx context.Context, filter gatepass.GatepassFilter) ([]gatepass.GatepassResponse, error) {
	entries, err := s.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]gatepass.GatepassResponse, 0, len(entries))
	for _, g := range entries {
		responses = append(responses, gatepass.NewGatepassResponse(g))
	}
	return responses, nil
}

// GetGatepass implements gatepass.GatepassService.
func (s *GatepassServiceImpl) GetGatepass(ctx context.Context, id string) (gatepass.GatepassResponse, error) {
	g, err := s.gatepassRepo.GetByID(ctx, id)
	if err != nil {
		return gatepass.GatepassResponse{}, err
	}
	return gatepass.NewGatepassResponse(g), nil
}

// CreateGatepass implements gatepass.GatepassService.
func (s *GatepassServiceImpl) CreateGatepass(ctx context.Context, req gatepass.CreateGatepassRequest) (resp gatepass.GatepassResponse, err error) {
	defer func() { s.metrics.ObserveMutation("gatepass", "create", err) }()

	if err := req.Validate(); err != nil {
		return gatepass.GatepassResponse{}, err
	}

	created, err := s.gatepassRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return gatepass.GatepassResponse{}, fmt.Errorf("failed to create gatepass: %w", err)
	}

	slog.Info("Gatepass created", "gatepass_id", created.ID, "category", created.Category)
	return gatepass.NewGatepassResponse(created), nil
}

// UpdateGatepass implements gatepass.GatepassService.
func (s *GatepassServiceImpl) UpdateGatepass(ctx context.Context, req gatepass.UpdateGatepassRequest) (resp gatepass.GatepassResponse, err error) {
	defer func() { s.metrics.ObserveMutation("gatepass", "update", err) }()

	if err := req.Validate(); err != nil {
		return gatepass.GatepassResponse{}, err
	}

	current, err := s.gatepassRepo.GetByID(ctx, req.ID)
	if err != nil {
		return gatepass.GatepassResponse{}, err
	}

	updated, err := s.gatepassRepo.Update(ctx, req.Apply(current))
	if err != nil {
		return gatepass.GatepassResponse{}, err
	}
	return gatepass.NewGatepassResponse(updated), nil
}

// DeleteGatepass implements gatepass.GatepassService.
func (s *GatepassServiceImpl) DeleteGatepass(ctx context.Context, id string) (err error) {
	defer func() { s.metrics.ObserveMutation("gatepass", "delete", err) }()

	return s.gatepassRepo.Delete(ctx, id)
}

// Export implements gatepass.GatepassService.
func (s *GatepassServiceImpl) Export(ctx context.Context, filter gatepass.GatepassFilter) (document.Document, error) {
	entries, err := s.list(ctx, filter)
	if err != nil {
		return document.Document{}, err
	}

	rows := make([][]any, 0, len(entries))
	for _, g := range entries {
		rows = append(rows, []any{
			g.ReceiveDate.Format(validator.DateLayout),
			dateOrNA(g.SendDate),
			g.Category,
			g.InvoiceNumber,
			g.Quantity,
			g.Remarks,
			g.SpecialNote,
			dateOrNA(g.NoteDate),
			g.ID,
		})
	}

	return s.renderer.Spreadsheet(ctx, document.Sheet{
		FileName:  "gatepasses_export.xlsx",
		SheetName: "Gatepasses",
		Columns:   exportColumns,
		Rows:      rows,
	})
}

func dateOrNA(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format(validator.DateLayout)
}
