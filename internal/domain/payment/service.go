package payment

import (
	"context"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/document"
)

type PaymentService interface {
	ListPayments(ctx context.Context, filter PaymentFilter) ([]PaymentResponse, error)
	ListGrouped(ctx context.Context, filter PaymentFilter) ([]DateGroupResponse, error)
	GetPayment(ctx context.Context, id string) (PaymentResponse, error)
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (PaymentResponse, error)
	UpdatePayment(ctx context.Context, req UpdatePaymentRequest) (PaymentResponse, error)
	DeletePayment(ctx context.Context, id string) error

	// Voucher renders the printable payment voucher PDF
	Voucher(ctx context.Context, id string) (document.Document, error)
	Export(ctx context.Context, filter PaymentFilter) (document.Document, error)
}
