package document

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/document"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestAmountInWords(t *testing.T) {
	assert.Equal(t, "one thousand two hundred fifty and 50/100", amountInWords(decimal.RequireFromString("1250.50")))
	assert.Equal(t, "zero and 05/100", amountInWords(decimal.RequireFromString("0.05")))
	assert.Equal(t, "ten and 00/100", amountInWords(decimal.RequireFromString("9.999")))
}

func TestAmountInWords_BeyondSpelledRangeUsesDigits(t *testing.T) {
	got := amountInWords(decimal.RequireFromString("12345678901234567890123.45"))

	assert.Equal(t, "12345678901234567890123 and 45/100", got)
}

func TestRenderer_Money(t *testing.T) {
	r := NewRenderer("Acme", "")

	assert.Equal(t, "Rs. 1250.50", r.money(decimal.RequireFromString("1250.5")))
}

func TestRenderer_PaymentVoucher(t *testing.T) {
	r := NewRenderer("Acme Traders", "Rs.")

	doc, err := r.PaymentVoucher(context.Background(), document.Voucher{
		PaymentID:   "p-1",
		Date:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Reason:      "Fuel",
		PaidTo:      "Lanka Filling Station",
		Amount:      decimal.RequireFromString("4500.00"),
		GeneratedAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, "voucher_p-1.pdf", doc.Name)
	assert.Equal(t, document.ContentTypePDF, doc.ContentType)
	assert.True(t, bytes.HasPrefix(doc.Body, []byte("%PDF")))
}

func TestRenderer_Payslip(t *testing.T) {
	r := NewRenderer("Acme Traders", "Rs.")

	doc, err := r.Payslip(context.Background(), document.Payslip{
		EmployeeID:      "e-1",
		EmployeeName:    "Nimal Perera",
		Role:            "Driver",
		Period:          "March 2025",
		GeneratedAt:     time.Date(2025, 3, 31, 17, 0, 0, 0, time.UTC),
		Base:            decimal.NewFromInt(30000),
		OTHours:         decimal.NewFromInt(10),
		OTRate:          decimal.NewFromInt(200),
		OTPay:           decimal.NewFromInt(2000),
		Gross:           decimal.NewFromInt(32000),
		NoPayDays:       decimal.NewFromInt(1),
		DailyRate:       decimal.NewFromInt(1000),
		NoPayDeduction:  decimal.NewFromInt(1000),
		TotalDeductions: decimal.NewFromInt(1000),
		Net:             decimal.NewFromInt(31000),
	})

	require.NoError(t, err)
	assert.Equal(t, "payslip_e-1_March_2025.pdf", doc.Name)
	assert.True(t, bytes.HasPrefix(doc.Body, []byte("%PDF")))
}

func TestRenderer_Spreadsheet(t *testing.T) {
	r := NewRenderer("Acme Traders", "Rs.")

	doc, err := r.Spreadsheet(context.Background(), document.Sheet{
		FileName:  "payments_export.xlsx",
		SheetName: "Payments",
		Columns: []document.Column{
			{Header: "Date", Width: 12},
			{Header: "Amount (Rs.)", Width: 15},
		},
		Rows: [][]any{
			{"2025-03-14", decimal.RequireFromString("4500.25")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, document.ContentTypeXLSX, doc.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(doc.Body))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Payments"}, f.GetSheetList())
	header, err := f.GetCellValue("Payments", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Amount (Rs.)", header)
	amount, err := f.GetCellValue("Payments", "B2")
	require.NoError(t, err)
	assert.Equal(t, "4500.25", amount)
}
