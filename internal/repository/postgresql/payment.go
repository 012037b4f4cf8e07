package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/payment"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, payment_date, reason, paid_to, amount, created_at, updated_at`

type paymentRepositoryImpl struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepositoryImpl{db: db}
}

func scanPayment(row pgx.Row) (payment.Payment, error) {
	var p payment.Payment
	err := row.Scan(&p.ID, &p.Date, &p.Reason, &p.PaidTo, &p.Amount, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// List implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) List(ctx context.Context, filter payment.PaymentFilter) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	var where conditions
	if filter.Search != "" {
		where.add("LOWER(paid_to) LIKE ?", likePattern(filter.Search))
	}
	where.dateRange("payment_date", filter.StartDate, filter.EndDate)

	rows, err := q.Query(ctx, "SELECT "+paymentColumns+" FROM payments"+where.where()+" ORDER BY payment_date DESC, created_at DESC", where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	payments := make([]payment.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// GetByID implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) GetByID(ctx context.Context, id string) (payment.Payment, error) {
	if !validID(id) {
		return payment.Payment{}, payment.ErrPaymentNotFound
	}
	q := GetQuerier(ctx, r.db)

	found, err := scanPayment(q.QueryRow(ctx, "SELECT "+paymentColumns+" FROM payments WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.Payment{}, payment.ErrPaymentNotFound
		}
		return payment.Payment{}, fmt.Errorf("failed to get payment with id %s: %w", id, err)
	}
	return found, nil
}

// Create implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = newID()
	}

	query := `
		INSERT INTO payments (id, payment_date, reason, paid_to, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + paymentColumns

	created, err := scanPayment(q.QueryRow(ctx, query, p.ID, p.Date, p.Reason, p.PaidTo, p.Amount))
	if err != nil {
		return payment.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}
	return created, nil
}

// Update implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) Update(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	if !validID(p.ID) {
		return payment.Payment{}, payment.ErrPaymentNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payments
		SET payment_date = $2, reason = $3, paid_to = $4, amount = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + paymentColumns

	updated, err := scanPayment(q.QueryRow(ctx, query, p.ID, p.Date, p.Reason, p.PaidTo, p.Amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.Payment{}, payment.ErrPaymentNotFound
		}
		return payment.Payment{}, fmt.Errorf("failed to update payment with id %s: %w", p.ID, err)
	}
	return updated, nil
}

// Delete implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return payment.ErrPaymentNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM payments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete payment with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrPaymentNotFound
	}
	return nil
}
