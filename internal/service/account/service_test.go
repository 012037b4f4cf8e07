package account

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/account"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 3, 15, 14, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (account.AccountService, account.RecordRepository) {
	t.Helper()
	repo := memory.NewAccountRecordRepository()
	return NewAccountService(repo, clock.NewFakeClock(today), nil), repo
}

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func record(t *testing.T, svc account.AccountService, kind, date, value string) {
	t.Helper()
	_, err := svc.CreateRecord(context.Background(), account.CreateRecordRequest{
		Type:        kind,
		Date:        date,
		Description: kind + " " + date,
		Amount:      amount(value),
	})
	require.NoError(t, err)
}

func TestAccountService_CreateRecord_DefaultsToToday(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.CreateRecord(context.Background(), account.CreateRecordRequest{Type: "credit", Amount: amount("10")})

	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", got.Date)
}

func TestAccountService_GetWeeklySummary(t *testing.T) {
	// Arrange
	ctx := context.Background()
	svc, repo := newTestService(t)
	record(t, svc, "credit", "2025-03-15", "100")
	record(t, svc, "credit", "2025-03-09", "50.50")
	record(t, svc, "credit", "2025-03-08", "1000")
	record(t, svc, "debit", "2025-03-12", "30")
	record(t, svc, "debit", "2025-03-16", "999")
	_, err := repo.Create(ctx, account.Record{Type: account.RecordTypeDebit, Amount: decimal.NewFromInt(77)})
	require.NoError(t, err)

	// Act
	summary, err := svc.GetWeeklySummary(ctx, "")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "150.5", summary.Credit.String())
	assert.Equal(t, "30", summary.Debit.String())
}

func TestAccountService_GetWeeklySummary_ExplicitDate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	record(t, svc, "credit", "2025-03-08", "1000")

	summary, err := svc.GetWeeklySummary(ctx, "2025-03-14")

	require.NoError(t, err)
	assert.Equal(t, "1000", summary.Credit.String())
}

func TestAccountService_GetWeeklySummary_InvalidDate(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetWeeklySummary(context.Background(), "15/03/2025")

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "date")
}

func TestAccountService_GetDailySeries(t *testing.T) {
	// Arrange
	ctx := context.Background()
	svc, _ := newTestService(t)
	record(t, svc, "credit", "2025-03-09", "20")
	record(t, svc, "debit", "2025-03-15", "5")

	// Act
	points, err := svc.GetDailySeries(ctx, "")

	// Assert
	require.NoError(t, err)
	require.Len(t, points, 7)
	assert.Equal(t, "2025-03-09", points[0].Date)
	assert.Equal(t, "20", points[0].Credit.String())
	assert.Equal(t, "2025-03-15", points[6].Date)
	assert.Equal(t, "5", points[6].Debit.String())
}

func TestAccountService_DeleteRecord_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.DeleteRecord(context.Background(), "missing")

	assert.ErrorIs(t, err, account.ErrRecordNotFound)
}
