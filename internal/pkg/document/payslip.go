package document

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/document"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// Payslip renders an employee payslip: identity block, earnings, deductions
// and net pay.
func (r *Renderer) Payslip(ctx context.Context, p document.Payslip) (document.Document, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip "+p.Period, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Payslip")
	pdf.Ln(8)
	if r.businessName != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, r.businessName)
		pdf.Ln(8)
	}

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s", p.EmployeeName))
	pdf.Ln(6)
	if role := strings.TrimSpace(strings.Join(nonEmpty(p.Role, p.Department), " / ")); role != "" {
		pdf.Cell(0, 7, fmt.Sprintf("Role: %s", role))
		pdf.Ln(6)
	}
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s", p.Period))
	pdf.Ln(10)

	r.payslipSection(pdf, "Earnings", []payslipLine{
		{label: "Basic Salary", amount: p.Base},
		{label: fmt.Sprintf("Overtime (%s h x %s)", p.OTHours.String(), p.OTRate.StringFixed(2)), amount: p.OTPay},
		{label: withReason("Incentive", p.IncentiveReason), amount: p.Incentive},
	}, payslipLine{label: "Gross Salary", amount: p.Gross})

	r.payslipSection(pdf, "Deductions", []payslipLine{
		{label: fmt.Sprintf("No-pay (%s days x %s)", p.NoPayDays.String(), p.DailyRate.StringFixed(2)), amount: p.NoPayDeduction},
		{label: "Salary Advance", amount: p.SalaryAdvance},
		{label: withReason("Other Deductions", p.DeductionReason), amount: p.OtherDeductions},
	}, payslipLine{label: "Total Deductions", amount: p.TotalDeductions})

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(130, 10, "Net Salary", "TB", 0, "L", false, 0, "")
	pdf.CellFormat(50, 10, r.money(p.Net), "TB", 1, "R", false, 0, "")

	pdf.Ln(12)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 5, "Generated: "+p.GeneratedAt.Format(timestampLayout))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return document.Document{}, fmt.Errorf("generate payslip for employee %s: %w", p.EmployeeID, err)
	}

	return document.Document{
		Name:        fileName("payslip", payslipSlug(p), "pdf"),
		ContentType: document.ContentTypePDF,
		Body:        buf.Bytes(),
	}, nil
}

type payslipLine struct {
	label  string
	amount decimal.Decimal
}

func (r *Renderer) payslipSection(pdf *gofpdf.Fpdf, title string, lines []payslipLine, total payslipLine) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, l := range lines {
		pdf.CellFormat(130, 7, l.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, r.money(l.amount), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(130, 8, total.label, "T", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, r.money(total.amount), "T", 1, "R", false, 0, "")
	pdf.Ln(6)
}

func withReason(label, reason string) string {
	if strings.TrimSpace(reason) == "" {
		return label
	}
	return fmt.Sprintf("%s (%s)", label, strings.TrimSpace(reason))
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, strings.TrimSpace(v))
		}
	}
	return out
}

// payslipSlug is "<employee>_<period>" with spaces replaced, e.g.
// "0192..._January_2025".
func payslipSlug(p document.Payslip) string {
	parts := nonEmpty(p.EmployeeID, p.Period)
	return strings.ReplaceAll(strings.Join(parts, "_"), " ", "_")
}
