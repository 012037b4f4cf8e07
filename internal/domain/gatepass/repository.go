package gatepass

import (
	"context"
	"time"
)

type GatepassRepository interface {
	// List returns matching entries, latest receive date first
	List(ctx context.Context, filter GatepassFilter) ([]Gatepass, error)
	GetByID(ctx context.Context, id string) (Gatepass, error)
	Create(ctx context.Context, g Gatepass) (Gatepass, error)
	Update(ctx context.Context, g Gatepass) (Gatepass, error)
	Delete(ctx context.Context, id string) error

	// ListNotesOn returns entries with a special note dated on day
	ListNotesOn(ctx context.Context, day time.Time) ([]Gatepass, error)
}
