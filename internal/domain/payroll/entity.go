package payroll

import (
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// AdjustmentInput holds the per-run values entered on top of an employee's
// stored pay data. It is never persisted.
type AdjustmentInput struct {
	OTHours         decimal.Decimal
	Incentive       decimal.Decimal
	IncentiveReason string
	NoPayDays       decimal.Decimal
	SalaryAdvance   decimal.Decimal
	OtherDeductions decimal.Decimal
	DeductionReason string
}

// PayBreakdown is the derived payslip. Net always equals
// Gross - TotalDeductions exactly; no rounding is applied.
type PayBreakdown struct {
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

// Worksheet is the calculator state for the currently selected employee.
type Worksheet struct {
	Employee    employee.Employee
	BaseSalary  decimal.Decimal
	OTRate      decimal.Decimal
	DailyRate   decimal.Decimal
	Adjustments AdjustmentInput
}

// NewWorksheet returns a worksheet seeded from emp.
func NewWorksheet(emp employee.Employee) Worksheet {
	var w Worksheet
	w.Select(emp)
	return w
}

// Select switches the worksheet to emp. Rates are reseeded from the stored
// record and every adjustment goes back to zero, so nothing entered for
// the previous employee survives.
func (w *Worksheet) Select(emp employee.Employee) {
	w.Employee = emp
	w.BaseSalary = emp.BaseSalary
	w.OTRate = emp.OTRate
	w.DailyRate = emp.DefaultDailyRate()
	w.Adjustments = AdjustmentInput{}
}

// Breakdown runs the calculator over the worksheet's current values.
func (w Worksheet) Breakdown() PayBreakdown {
	return ComputeBreakdown(w.BaseSalary, w.OTRate, w.DailyRate, w.Adjustments)
}
