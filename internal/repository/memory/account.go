package memory

import (
	"context"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/account"
)

type accountRecordRepositoryImpl struct {
	rows *table[account.Record]
}

func NewAccountRecordRepository() account.RecordRepository {
	return &accountRecordRepositoryImpl{rows: newTable[account.Record]()}
}

func (r *accountRecordRepositoryImpl) List(ctx context.Context, filter account.RecordFilter) ([]account.Record, error) {
	return r.rows.selectWhere(filter.Matches, func(a, b account.Record) bool {
		if a.Date.Equal(b.Date) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.Date.After(b.Date)
	}), nil
}

func (r *accountRecordRepositoryImpl) GetByID(ctx context.Context, id string) (account.Record, error) {
	rec, ok := r.rows.get(id)
	if !ok {
		return account.Record{}, account.ErrRecordNotFound
	}
	return rec, nil
}

func (r *accountRecordRepositoryImpl) Create(ctx context.Context, rec account.Record) (account.Record, error) {
	if rec.ID == "" {
		rec.ID = newID()
	}
	rec.CreatedAt = now()
	rec.UpdatedAt = rec.CreatedAt
	r.rows.put(rec.ID, rec)
	return rec, nil
}

func (r *accountRecordRepositoryImpl) Update(ctx context.Context, rec account.Record) (account.Record, error) {
	rec.UpdatedAt = now()
	if !r.rows.replace(rec.ID, rec) {
		return account.Record{}, account.ErrRecordNotFound
	}
	return rec, nil
}

func (r *accountRecordRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !r.rows.remove(id) {
		return account.ErrRecordNotFound
	}
	return nil
}
