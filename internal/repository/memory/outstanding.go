package memory

import (
	"context"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/outstanding"
)

type outstandingRepositoryImpl struct {
	rows *table[outstanding.Outstanding]
}

func NewOutstandingRepository() outstanding.OutstandingRepository {
	return &outstandingRepositoryImpl{rows: newTable[outstanding.Outstanding]()}
}

func (r *outstandingRepositoryImpl) List(ctx context.Context, filter outstanding.OutstandingFilter) ([]outstanding.Outstanding, error) {
	return r.rows.selectWhere(filter.Matches, func(a, b outstanding.Outstanding) bool {
		if a.Date.Equal(b.Date) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.Date.After(b.Date)
	}), nil
}

func (r *outstandingRepositoryImpl) GetByID(ctx context.Context, id string) (outstanding.Outstanding, error) {
	o, ok := r.rows.get(id)
	if !ok {
		return outstanding.Outstanding{}, outstanding.ErrOutstandingNotFound
	}
	return o, nil
}

func (r *outstandingRepositoryImpl) Create(ctx context.Context, o outstanding.Outstanding) (outstanding.Outstanding, error) {
	if o.ID == "" {
		o.ID = newID()
	}
	o.CreatedAt = now()
	o.UpdatedAt = o.CreatedAt
	r.rows.put(o.ID, o)
	return o, nil
}

func (r *outstandingRepositoryImpl) Update(ctx context.Context, o outstanding.Outstanding) (outstanding.Outstanding, error) {
	o.UpdatedAt = now()
	if !r.rows.replace(o.ID, o) {
		return outstanding.Outstanding{}, outstanding.ErrOutstandingNotFound
	}
	return o, nil
}

func (r *outstandingRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !r.rows.remove(id) {
		return outstanding.ErrOutstandingNotFound
	}
	return nil
}
