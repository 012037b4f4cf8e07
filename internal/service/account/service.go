package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/account"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
)

type AccountServiceImpl struct {
	recordRepo account.RecordRepository
	clock      clock.Clock
	metrics    *metrics.Metrics
}

func NewAccountService(recordRepo account.RecordRepository, clk clock.Clock, m *metrics.Metrics) account.AccountService {
	return &AccountServiceImpl{
		recordRepo: recordRepo,
		clock:      clk,
		metrics:    m,
	}
}

// ListRecords implements account.AccountService.
func (s *AccountServiceImpl) ListRecords(ctx context.Context, filter account.RecordFilter) ([]account.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.recordRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list account records: %w", err)
	}

	responses := make([]account.RecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, account.NewRecordResponse(r))
	}
	return responses, nil
}

// GetRecord implements account.AccountService.
func (s *AccountServiceImpl) GetRecord(ctx context.Context, id string) (account.RecordResponse, error) {
	r, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return account.RecordResponse{}, err
	}
	return account.NewRecordResponse(r), nil
}

// CreateRecord implements account.AccountService.
func (s *AccountServiceImpl) CreateRecord(ctx context.Context, req account.CreateRecordRequest) (resp account.RecordResponse, err error) {
	defer func() { s.metrics.ObserveMutation("account", "create", err) }()

	if err := req.Validate(); err != nil {
		return account.RecordResponse{}, err
	}

	created, err := s.recordRepo.Create(ctx, req.ToEntity(validator.DateOnly(s.clock.Now())))
	if err != nil {
		return account.RecordResponse{}, fmt.Errorf("failed to create account record: %w", err)
	}

	slog.Info("Account record created", "id", created.ID, "type", created.Type, "amount", created.Amount.String())
	return account.NewRecordResponse(created), nil
}

// UpdateRecord implements account.AccountService.
func (s *AccountServiceImpl) UpdateRecord(ctx context.Context, req account.UpdateRecordRequest) (resp account.RecordResponse, err error) {
	defer func() { s.metrics.ObserveMutation("account", "update", err) }()

	if err := req.Validate(); err != nil {
		return account.RecordResponse{}, err
	}

	current, err := s.recordRepo.GetByID(ctx, req.ID)
	if err != nil {
		return account.RecordResponse{}, err
	}

	updated, err := s.recordRepo.Update(ctx, req.Apply(current))
	if err != nil {
		return account.RecordResponse{}, err
	}
	return account.NewRecordResponse(updated), nil
}

// DeleteRecord implements account.AccountService.
func (s *AccountServiceImpl) DeleteRecord(ctx context.Context, id string) (err error) {
	defer func() { s.metrics.ObserveMutation("account", "delete", err) }()

	return s.recordRepo.Delete(ctx, id)
}

// GetWeeklySummary implements account.AccountService.
func (s *AccountServiceImpl) GetWeeklySummary(ctx context.Context, date string) (account.SummaryResponse, error) {
	ref, records, err := s.window(ctx, date)
	if err != nil {
		return account.SummaryResponse{}, err
	}
	return account.NewSummaryResponse(account.Summarize(records, ref)), nil
}

// GetDailySeries implements account.AccountService.
func (s *AccountServiceImpl) GetDailySeries(ctx context.Context, date string) ([]account.DailyPointResponse, error) {
	ref, records, err := s.window(ctx, date)
	if err != nil {
		return nil, err
	}

	points := account.DailySeries(records, ref)
	responses := make([]account.DailyPointResponse, 0, len(points))
	for _, p := range points {
		responses = append(responses, account.NewDailyPointResponse(p))
	}
	return responses, nil
}

// window resolves the reference day and loads the records that can fall
// inside its seven-day window.
func (s *AccountServiceImpl) window(ctx context.Context, date string) (time.Time, []account.Record, error) {
	ref := s.clock.Now()
	if date != "" {
		parsed, ok := validator.IsValidDate(date)
		if !ok {
			return time.Time{}, nil, validator.Single("date", "must be in YYYY-MM-DD format")
		}
		ref = parsed
	}

	from, to := account.Window(ref)
	records, err := s.recordRepo.List(ctx, account.RecordFilter{
		StartDate: from.Format(validator.DateLayout),
		EndDate:   to.Format(validator.DateLayout),
	})
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("failed to load account records: %w", err)
	}
	return ref, records, nil
}
