package memory

import (
	"context"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/payment"
)

type paymentRepositoryImpl struct {
	rows *table[payment.Payment]
}

func NewPaymentRepository() payment.PaymentRepository {
	return &paymentRepositoryImpl{rows: newTable[payment.Payment]()}
}

func (r *paymentRepositoryImpl) List(ctx context.Context, filter payment.PaymentFilter) ([]payment.Payment, error) {
	return r.rows.selectWhere(filter.Matches, func(a, b payment.Payment) bool {
		if a.Date.Equal(b.Date) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.Date.After(b.Date)
	}), nil
}

func (r *paymentRepositoryImpl) GetByID(ctx context.Context, id string) (payment.Payment, error) {
	p, ok := r.rows.get(id)
	if !ok {
		return payment.Payment{}, payment.ErrPaymentNotFound
	}
	return p, nil
}

func (r *paymentRepositoryImpl) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	if p.ID == "" {
		p.ID = newID()
	}
	p.CreatedAt = now()
	p.UpdatedAt = p.CreatedAt
	r.rows.put(p.ID, p)
	return p, nil
}

func (r *paymentRepositoryImpl) Update(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	p.UpdatedAt = now()
	if !r.rows.replace(p.ID, p) {
		return payment.Payment{}, payment.ErrPaymentNotFound
	}
	return p, nil
}

func (r *paymentRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !r.rows.remove(id) {
		return payment.ErrPaymentNotFound
	}
	return nil
}
