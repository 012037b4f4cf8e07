package chemical

import "context"

type ChemicalService interface {
	ListChemicals(ctx context.Context) ([]ChemicalResponse, error)
	GetChemical(ctx context.Context, id string) (ChemicalResponse, error)
	CreateChemicalType(ctx context.Context, req CreateChemicalRequest) (ChemicalResponse, error)
	UpdateChemicalDetails(ctx context.Context, req UpdateChemicalRequest) (ChemicalResponse, error)
	RecordPurchase(ctx context.Context, req PurchaseRequest) (ChemicalResponse, error)
	RecordUsage(ctx context.Context, req UsageRequest) (ChemicalResponse, error)
	ListMovements(ctx context.Context, chemicalID string) ([]MovementResponse, error)
}
