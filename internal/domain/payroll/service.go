package payroll

import (
	"context"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/document"
)

type PayrollService interface {
	// GetWorksheet returns the calculator seeded from an employee's record
	GetWorksheet(ctx context.Context, employeeID string) (WorksheetResponse, error)

	// Calculate computes a breakdown. Without an employee_id the request's
	// own base and rates are used.
	Calculate(ctx context.Context, req CalculateRequest) (BreakdownResponse, error)

	// GeneratePayslip renders and archives a payslip PDF
	GeneratePayslip(ctx context.Context, req PayslipRequest) (document.Document, error)
}
