package account

import "context"

type AccountService interface {
	ListRecords(ctx context.Context, filter RecordFilter) ([]RecordResponse, error)
	GetRecord(ctx context.Context, id string) (RecordResponse, error)
	CreateRecord(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)
	UpdateRecord(ctx context.Context, req UpdateRecordRequest) (RecordResponse, error)
	DeleteRecord(ctx context.Context, id string) error

	// GetWeeklySummary totals the seven calendar days ending on date
	// (today when empty)
	GetWeeklySummary(ctx context.Context, date string) (SummaryResponse, error)
	GetDailySeries(ctx context.Context, date string) ([]DailyPointResponse, error)
}
