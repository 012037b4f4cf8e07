package chemical

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/chemical"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
)

type ChemicalServiceImpl struct {
	chemicalRepo chemical.ChemicalRepository
	clock        clock.Clock
	metrics      *metrics.Metrics
}

func NewChemicalService(chemicalRepo chemical.ChemicalRepository, clk clock.Clock, m *metrics.Metrics) chemical.ChemicalService {
	return &ChemicalServiceImpl{
		chemicalRepo: chemicalRepo,
		clock:        clk,
		metrics:      m,
	}
}

// ListChemicals implements chemical.ChemicalService.
func (s *ChemicalServiceImpl) ListChemicals(ctx context.Context) ([]chemical.ChemicalResponse, error) {
	chemicals, err := s.chemicalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chemicals: %w", err)
	}

	responses := make([]chemical.ChemicalResponse, 0, len(chemicals))
	for _, c := range chemicals {
		responses = append(responses, chemical.NewChemicalResponse(c))
	}
	return responses, nil
}

// GetChemical implements chemical.ChemicalService.
func (s *ChemicalServiceImpl) GetChemical(ctx context.Context, id string) (chemical.ChemicalResponse, error) {
	c, err := s.chemicalRepo.GetByID(ctx, id)
	if err != nil {
		return chemical.ChemicalResponse{}, err
	}
	return chemical.NewChemicalResponse(c), nil
}

// CreateChemicalType implements chemical.ChemicalService. Name uniqueness is
// enforced by the repository so the check and insert are one step.
func (s *ChemicalServiceImpl) CreateChemicalType(ctx context.Context, req chemical.CreateChemicalRequest) (resp chemical.ChemicalResponse, err error) {
	defer func() { s.metrics.ObserveMutation("chemical", "create", err) }()

	c, err := chemical.NewChemical(req.Name, req.Unit, req.InitialQuantity.Value, s.clock.Now())
	if err != nil {
		return chemical.ChemicalResponse{}, err
	}

	created, err := s.chemicalRepo.Create(ctx, c)
	if err != nil {
		return chemical.ChemicalResponse{}, err
	}

	slog.Info("Chemical type created", "chemical_id", created.ID, "name", created.Name, "quantity", created.Quantity.String())
	return chemical.NewChemicalResponse(created), nil
}

// UpdateChemicalDetails implements chemical.ChemicalService.
func (s *ChemicalServiceImpl) UpdateChemicalDetails(ctx context.Context, req chemical.UpdateChemicalRequest) (resp chemical.ChemicalResponse, err error) {
	defer func() { s.metrics.ObserveMutation("chemical", "update_details", err) }()

	current, err := s.chemicalRepo.GetByID(ctx, req.ID)
	if err != nil {
		return chemical.ChemicalResponse{}, err
	}

	next, err := chemical.UpdateDetails(current, req.Name, req.Unit, s.clock.Now())
	if err != nil {
		return chemical.ChemicalResponse{}, err
	}

	updated, err := s.chemicalRepo.UpdateDetails(ctx, next)
	if err != nil {
		return chemical.ChemicalResponse{}, err
	}
	return chemical.NewChemicalResponse(updated), nil
}

// RecordPurchase implements chemical.ChemicalService.
func (s *ChemicalServiceImpl) RecordPurchase(ctx context.Context, req chemical.PurchaseRequest) (resp chemical.ChemicalResponse, err error) {
	defer func() { s.metrics.ObserveMutation("chemical", "purchase", err) }()

	if err := req.Validate(); err != nil {
		return chemical.ChemicalResponse{}, err
	}

	now := s.clock.Now()
	occurredAt := now
	if req.PurchaseDate != "" {
		occurredAt, _ = validator.IsValidDate(req.PurchaseDate)
	}

	mv := chemical.Movement{
		Kind:       chemical.MovementPurchase,
		Quantity:   req.Quantity.Value,
		Supplier:   req.Supplier,
		Cost:       req.Cost,
		OccurredAt: occurredAt,
	}

	updated, err := s.chemicalRepo.UpdateStock(ctx, req.ChemicalID, mv, func(current chemical.Chemical) (chemical.Chemical, error) {
		return chemical.ApplyPurchase(current, req.Quantity.Value, now)
	})
	if err != nil {
		return chemical.ChemicalResponse{}, err
	}

	slog.Info("Chemical purchase recorded", "chemical_id", updated.ID, "quantity", req.Quantity.Value.String(), "stock", updated.Quantity.String())
	return chemical.NewChemicalResponse(updated), nil
}

// RecordUsage implements chemical.ChemicalService. The shortfall check runs
// inside the repository's atomic update, against the locked current stock.
func (s *ChemicalServiceImpl) RecordUsage(ctx context.Context, req chemical.UsageRequest) (resp chemical.ChemicalResponse, err error) {
	defer func() { s.metrics.ObserveMutation("chemical", "usage", err) }()

	now := s.clock.Now()
	mv := chemical.Movement{
		Kind:       chemical.MovementUsage,
		Quantity:   req.QuantityUsed.Value,
		Reason:     req.Reason,
		OccurredAt: now,
	}

	updated, err := s.chemicalRepo.UpdateStock(ctx, req.ChemicalID, mv, func(current chemical.Chemical) (chemical.Chemical, error) {
		return chemical.ApplyUsage(current, req.QuantityUsed.Value, now)
	})
	if err != nil {
		return chemical.ChemicalResponse{}, err
	}

	slog.Info("Chemical usage recorded", "chemical_id", updated.ID, "quantity", req.QuantityUsed.Value.String(), "stock", updated.Quantity.String())
	return chemical.NewChemicalResponse(updated), nil
}

// ListMovements implements chemical.ChemicalService.
func (s *ChemicalServiceImpl) ListMovements(ctx context.Context, chemicalID string) ([]chemical.MovementResponse, error) {
	movements, err := s.chemicalRepo.ListMovements(ctx, chemicalID)
	if err != nil {
		return nil, err
	}

	responses := make([]chemical.MovementResponse, 0, len(movements))
	for _, m := range movements {
		responses = append(responses, chemical.NewMovementResponse(m))
	}
	return responses, nil
}
