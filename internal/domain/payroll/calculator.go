package payroll

import (
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ComputeBreakdown turns base pay, rates and adjustments into a payslip.
// It is total: negative values are carried through the arithmetic as-is.
func ComputeBreakdown(base, otRate, dailyRate decimal.Decimal, in AdjustmentInput) PayBreakdown {
	otPay := in.OTHours.Mul(otRate)
	gross := base.Add(otPay).Add(in.Incentive)

	noPayDeduction := in.NoPayDays.Mul(dailyRate)
	totalDeductions := in.OtherDeductions.Add(noPayDeduction).Add(in.SalaryAdvance)

	return PayBreakdown{
		Base:            base,
		OTHours:         in.OTHours,
		OTRate:          otRate,
		OTPay:           otPay,
		Incentive:       in.Incentive,
		IncentiveReason: in.IncentiveReason,
		Gross:           gross,
		NoPayDays:       in.NoPayDays,
		DailyRate:       dailyRate,
		NoPayDeduction:  noPayDeduction,
		SalaryAdvance:   in.SalaryAdvance,
		OtherDeductions: in.OtherDeductions,
		DeductionReason: in.DeductionReason,
		TotalDeductions: totalDeductions,
		Net:             gross.Sub(totalDeductions),
	}
}

// ValidateNonNegative is the strict-mode check: every numeric input must be
// zero or greater.
func ValidateNonNegative(base, otRate, dailyRate decimal.Decimal, in AdjustmentInput) error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"base_salary", base},
		{"ot_rate", otRate},
		{"daily_rate", dailyRate},
		{"ot_hours", in.OTHours},
		{"incentive", in.Incentive},
		{"no_pay_days", in.NoPayDays},
		{"salary_advance", in.SalaryAdvance},
		{"other_deductions", in.OtherDeductions},
	}

	var errs validator.ValidationErrors
	for _, f := range fields {
		if f.value.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: f.name, Message: "must be non-negative"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
