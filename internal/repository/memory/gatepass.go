package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/gatepass"
)

type gatepassRepositoryImpl struct {
	rows *table[gatepass.Gatepass]
}

func NewGatepassRepository() gatepass.GatepassRepository {
	return &gatepassRepositoryImpl{rows: newTable[gatepass.Gatepass]()}
}

func byReceiveDateDesc(a, b gatepass.Gatepass) bool {
	if a.ReceiveDate.Equal(b.ReceiveDate) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ReceiveDate.After(b.ReceiveDate)
}

func (r *gatepassRepositoryImpl) List(ctx context.Context, filter gatepass.GatepassFilter) ([]gatepass.Gatepass, error) {
	return r.rows.selectWhere(filter.Matches, byReceiveDateDesc), nil
}

func (r *gatepassRepositoryImpl) GetByID(ctx context.Context, id string) (gatepass.Gatepass, error) {
	g, ok := r.rows.get(id)
	if !ok {
		return gatepass.Gatepass{}, gatepass.ErrGatepassNotFound
	}
	return g, nil
}

func (r *gatepassRepositoryImpl) Create(ctx context.Context, g gatepass.Gatepass) (gatepass.Gatepass, error) {
	if g.ID == "" {
		g.ID = newID()
	}
	g.CreatedAt = now()
	g.UpdatedAt = g.CreatedAt
	r.rows.put(g.ID, g)
	return g, nil
}

func (r *gatepassRepositoryImpl) Update(ctx context.Context, g gatepass.Gatepass) (gatepass.Gatepass, error) {
	g.UpdatedAt = now()
	if !r.rows.replace(g.ID, g) {
		return gatepass.Gatepass{}, gatepass.ErrGatepassNotFound
	}
	return g, nil
}

func (r *gatepassRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !r.rows.remove(id) {
		return gatepass.ErrGatepassNotFound
	}
	return nil
}

func (r *gatepassRepositoryImpl) ListNotesOn(ctx context.Context, day time.Time) ([]gatepass.Gatepass, error) {
	return r.rows.selectWhere(
		func(g gatepass.Gatepass) bool { return g.HasReminderOn(day) },
		byReceiveDateDesc,
	), nil
}
