package document

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Document is a finished, printable artifact.
type Document struct {
	Name        string
	ContentType string
	Body        []byte

	// Path is set once the document has been archived in file storage.
	Path string
	URL  string
}

// Voucher is everything printed on a payment voucher.
type Voucher struct {
	PaymentID   string
	Date        time.Time
	Reason      string
	PaidTo      string
	Amount      decimal.Decimal
	GeneratedAt time.Time
}

// Payslip is an employee identity plus a complete pay breakdown.
type Payslip struct {
	EmployeeID   string
	EmployeeName string
	Role         string
	Department   string
	Period       string
	GeneratedAt  time.Time

	Base            decimal.Decimal
	OTHours         decimal.Decimal
	OTRate          decimal.Decimal
	OTPay           decimal.Decimal
	Incentive       decimal.Decimal
	IncentiveReason string
	Gross           decimal.Decimal
	NoPayDays       decimal.Decimal
	DailyRate       decimal.Decimal
	NoPayDeduction  decimal.Decimal
	SalaryAdvance   decimal.Decimal
	OtherDeductions decimal.Decimal
	DeductionReason string
	TotalDeductions decimal.Decimal
	Net             decimal.Decimal
}

// Column describes one spreadsheet column; Width is in characters.
type Column struct {
	Header string
	Width  float64
}

// Sheet is a single-sheet tabular export. Cells hold strings, numbers or
// decimals.
type Sheet struct {
	FileName  string
	SheetName string
	Columns   []Column
	Rows      [][]any
}

// Renderer produces printable artifacts from finished data.
type Renderer interface {
	PaymentVoucher(ctx context.Context, v Voucher) (Document, error)
	Payslip(ctx context.Context, p Payslip) (Document, error)
	Spreadsheet(ctx context.Context, s Sheet) (Document, error)
}
