package payroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/service/file"
)

const periodLayout = "January 2006"

type PayrollServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	renderer     document.Renderer
	fileService  file.FileService
	clock        clock.Clock

	// strictInputs rejects negative calculator inputs for every request
	strictInputs bool
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	renderer document.Renderer,
	fileService file.FileService,
	clk clock.Clock,
	strictInputs bool,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo: employeeRepo,
		renderer:     renderer,
		fileService:  fileService,
		clock:        clk,
		strictInputs: strictInputs,
	}
}

// GetWorksheet implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetWorksheet(ctx context.Context, employeeID string) (payroll.WorksheetResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.WorksheetResponse{}, err
	}
	return payroll.NewWorksheetResponse(payroll.NewWorksheet(emp)), nil
}

// Calculate implements payroll.PayrollService.
func (s *PayrollServiceImpl) Calculate(ctx context.Context, req payroll.CalculateRequest) (payroll.BreakdownResponse, error) {
	w, err := s.worksheet(ctx, req)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}
	return payroll.NewBreakdownResponse(w.Breakdown()), nil
}

// worksheet selects the requested employee, or an ad-hoc one built from the
// request's own base and rates, then applies the request on top. Selection
// always starts from zeroed adjustments.
func (s *PayrollServiceImpl) worksheet(ctx context.Context, req payroll.CalculateRequest) (payroll.Worksheet, error) {
	emp := employee.Employee{
		BaseSalary: req.BaseSalary.Value,
		OTRate:     req.OTRate.Value,
	}
	if req.EmployeeID != "" {
		found, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return payroll.Worksheet{}, err
		}
		emp = found
	}

	w := req.ApplyTo(payroll.NewWorksheet(emp))

	if s.strictInputs || req.Strict {
		if err := payroll.ValidateNonNegative(w.BaseSalary, w.OTRate, w.DailyRate, w.Adjustments); err != nil {
			return payroll.Worksheet{}, err
		}
	}
	return w, nil
}

// GeneratePayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GeneratePayslip(ctx context.Context, req payroll.PayslipRequest) (document.Document, error) {
	if err := req.Validate(); err != nil {
		return document.Document{}, err
	}

	w, err := s.worksheet(ctx, req.CalculateRequest)
	if err != nil {
		return document.Document{}, err
	}

	now := s.clock.Now()
	period := req.Period
	if period == "" {
		period = now.Format(periodLayout)
	}

	b := w.Breakdown()
	doc, err := s.renderer.Payslip(ctx, document.Payslip{
		EmployeeID:      w.Employee.ID,
		EmployeeName:    w.Employee.Name,
		Role:            w.Employee.Role,
		Department:      w.Employee.Department,
		Period:          period,
		GeneratedAt:     now,
		Base:            b.Base,
		OTHours:         b.OTHours,
		OTRate:          b.OTRate,
		OTPay:           b.OTPay,
		Incentive:       b.Incentive,
		IncentiveReason: b.IncentiveReason,
		Gross:           b.Gross,
		NoPayDays:       b.NoPayDays,
		DailyRate:       b.DailyRate,
		NoPayDeduction:  b.NoPayDeduction,
		SalaryAdvance:   b.SalaryAdvance,
		OtherDeductions: b.OtherDeductions,
		DeductionReason: b.DeductionReason,
		TotalDeductions: b.TotalDeductions,
		Net:             b.Net,
	})
	if err != nil {
		return document.Document{}, fmt.Errorf("failed to render payslip: %w", err)
	}

	archived, err := s.fileService.Archive(ctx, "payslips", doc)
	if err != nil {
		return document.Document{}, err
	}

	slog.Info("Payslip generated", "employee_id", w.Employee.ID, "period", period, "path", archived.Path)
	return archived, nil
}
