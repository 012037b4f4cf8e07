package gatepass

import (
	"context"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/document"
)

type GatepassService interface {
	ListGatepasses(ctx context.Context, filter GatepassFilter) ([]GatepassResponse, error)
	GetGatepass(ctx context.Context, id string) (GatepassResponse, error)
	CreateGatepass(ctx context.Context, req CreateGatepassRequest) (GatepassResponse, error)

	// UpdateGatepass applies set fields; an empty send_date or note_date clears it
	UpdateGatepass(ctx context.Context, req UpdateGatepassRequest) (GatepassResponse, error)
	DeleteGatepass(ctx context.Context, id string) error
	Export(ctx context.Context, filter GatepassFilter) (document.Document, error)
}
