package outstanding

import "context"

type OutstandingRepository interface {
	List(ctx context.Context, filter OutstandingFilter) ([]Outstanding, error)
	GetByID(ctx context.Context, id string) (Outstanding, error)
	Create(ctx context.Context, o Outstanding) (Outstanding, error)
	Update(ctx context.Context, o Outstanding) (Outstanding, error)
	Delete(ctx context.Context, id string) error
}
