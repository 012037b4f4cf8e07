package payment

import "context"

type PaymentRepository interface {
	// List returns matching payments, newest first
	List(ctx context.Context, filter PaymentFilter) ([]Payment, error)
	GetByID(ctx context.Context, id string) (Payment, error)
	Create(ctx context.Context, p Payment) (Payment, error)
	Update(ctx context.Context, p Payment) (Payment, error)
	Delete(ctx context.Context, id string) error
}
