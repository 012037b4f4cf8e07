package payroll

import (
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/numeric"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CalculateRequest carries calculator input as typed by the user. Numeric
// fields are lenient: anything that is not a finite number counts as 0.
// BaseSalary, OTRate and DailyRate override the selected employee's values
// only when present.
type CalculateRequest struct {
	EmployeeID      string          `json:"employee_id,omitempty"`
	BaseSalary      numeric.Lenient `json:"base_salary"`
	OTRate          numeric.Lenient `json:"ot_rate"`
	DailyRate       numeric.Lenient `json:"daily_rate"`
	OTHours         numeric.Lenient `json:"ot_hours"`
	Incentive       numeric.Lenient `json:"incentive"`
	IncentiveReason string          `json:"incentive_reason"`
	NoPayDays       numeric.Lenient `json:"no_pay_days"`
	SalaryAdvance   numeric.Lenient `json:"salary_advance"`
	OtherDeductions numeric.Lenient `json:"other_deductions"`
	DeductionReason string          `json:"deduction_reason"`
	Strict          bool            `json:"strict,omitempty"`
}

func (r *CalculateRequest) Adjustments() AdjustmentInput {
	return AdjustmentInput{
		OTHours:         r.OTHours.Value,
		Incentive:       r.Incentive.Value,
		IncentiveReason: r.IncentiveReason,
		NoPayDays:       r.NoPayDays.Value,
		SalaryAdvance:   r.SalaryAdvance.Value,
		OtherDeductions: r.OtherDeductions.Value,
		DeductionReason: r.DeductionReason,
	}
}

// ApplyTo fills a freshly selected worksheet with the request's values.
func (r *CalculateRequest) ApplyTo(w Worksheet) Worksheet {
	w.BaseSalary = r.BaseSalary.Or(w.BaseSalary)
	w.OTRate = r.OTRate.Or(w.OTRate)
	w.DailyRate = r.DailyRate.Or(w.DailyRate)
	w.Adjustments = r.Adjustments()
	return w
}

type PayslipRequest struct {
	CalculateRequest
	Period string `json:"period,omitempty"`
}

func (r *PayslipRequest) Validate() error {
	if validator.IsEmpty(r.EmployeeID) {
		return validator.Single("employee_id", "is required")
	}
	return nil
}

type WorksheetResponse struct {
	EmployeeID   string            `json:"employee_id"`
	EmployeeName string            `json:"employee_name"`
	Role         string            `json:"role"`
	BaseSalary   decimal.Decimal   `json:"base_salary"`
	OTRate       decimal.Decimal   `json:"ot_rate"`
	DailyRate    decimal.Decimal   `json:"daily_rate"`
	Breakdown    BreakdownResponse `json:"breakdown"`
}

func NewWorksheetResponse(w Worksheet) WorksheetResponse {
	return WorksheetResponse{
		EmployeeID:   w.Employee.ID,
		EmployeeName: w.Employee.Name,
		Role:         w.Employee.Role,
		BaseSalary:   w.BaseSalary,
		OTRate:       w.OTRate,
		DailyRate:    w.DailyRate,
		Breakdown:    NewBreakdownResponse(w.Breakdown()),
	}
}

type BreakdownResponse struct {
	Base            decimal.Decimal `json:"base"`
	OTHours         decimal.Decimal `json:"ot_hours"`
	OTRate          decimal.Decimal `json:"ot_rate"`
	OTPay           decimal.Decimal `json:"ot_pay"`
	Incentive       decimal.Decimal `json:"incentive"`
	IncentiveReason string          `json:"incentive_reason,omitempty"`
	Gross           decimal.Decimal `json:"gross"`
	NoPayDays       decimal.Decimal `json:"no_pay_days"`
	DailyRate       decimal.Decimal `json:"daily_rate"`
	NoPayDeduction  decimal.Decimal `json:"no_pay_deduction"`
	SalaryAdvance   decimal.Decimal `json:"salary_advance"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	DeductionReason string          `json:"deduction_reason,omitempty"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	Net             decimal.Decimal `json:"net"`
}

func NewBreakdownResponse(b PayBreakdown) BreakdownResponse {
	return BreakdownResponse{
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
	}
}
