package outstanding

import (
	"context"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/document"
)

type OutstandingService interface {
	ListOutstanding(ctx context.Context, filter OutstandingFilter) ([]OutstandingResponse, error)
	GetOutstanding(ctx context.Context, id string) (OutstandingResponse, error)
	CreateOutstanding(ctx context.Context, req CreateOutstandingRequest) (OutstandingResponse, error)

	// UpdateOutstanding is a partial update; amount and status move independently
	UpdateOutstanding(ctx context.Context, req UpdateOutstandingRequest) (OutstandingResponse, error)
	DeleteOutstanding(ctx context.Context, id string) error

	// GetTotals sums open (Pending, Partially Paid) balances per type
	GetTotals(ctx context.Context, filter OutstandingFilter) (TotalsResponse, error)
	Export(ctx context.Context, filter OutstandingFilter) (document.Document, error)
}
