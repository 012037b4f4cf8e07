package payroll

import (
	"math/rand/v2"
	"testing"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeBreakdown_Formulas(t *testing.T) {
	// Arrange
	in := AdjustmentInput{
		OTHours:         d("10"),
		Incentive:       d("2000"),
		NoPayDays:       d("2"),
		SalaryAdvance:   d("5000"),
		OtherDeductions: d("1500"),
	}

	// Act
	b := ComputeBreakdown(d("60000"), d("250"), d("2000"), in)

	// Assert
	assert.Equal(t, "2500", b.OTPay.String())
	assert.Equal(t, "64500", b.Gross.String())
	assert.Equal(t, "4000", b.NoPayDeduction.String())
	assert.Equal(t, "10500", b.TotalDeductions.String())
	assert.Equal(t, "54000", b.Net.String())
}

func TestComputeBreakdown_NetIsGrossMinusDeductions(t *testing.T) {
	cases := []struct {
		base, otRate, daily string
		in                  AdjustmentInput
	}{
		{"0", "0", "0", AdjustmentInput{}},
		{"45000.75", "187.5", "1500.03", AdjustmentInput{OTHours: d("3.25"), Incentive: d("0.1"), NoPayDays: d("1.5")}},
		{"1", "0.333", "0.01", AdjustmentInput{SalaryAdvance: d("0.2"), OtherDeductions: d("0.1")}},
		{"30000", "100", "1000", AdjustmentInput{OTHours: d("-4"), Incentive: d("-100"), NoPayDays: d("-1")}},
	}

	for _, tc := range cases {
		b := ComputeBreakdown(d(tc.base), d(tc.otRate), d(tc.daily), tc.in)

		assert.True(t, b.Net.Equal(b.Gross.Sub(b.TotalDeductions)))
		assert.True(t, b.Gross.Equal(b.Base.Add(b.OTPay).Add(b.Incentive)))
		assert.True(t, b.TotalDeductions.Equal(b.OtherDeductions.Add(b.NoPayDeduction).Add(b.SalaryAdvance)))
	}
}

// randomAmount returns a signed value with up to three decimal places.
func randomAmount(r *rand.Rand) decimal.Decimal {
	return decimal.New(r.Int64N(2_000_000_000)-1_000_000_000, -r.Int32N(4))
}

func TestComputeBreakdown_RandomInputsKeepIdentities(t *testing.T) {
	r := rand.New(rand.NewPCG(20250430, 1))

	for i := 0; i < 2000; i++ {
		base, otRate, daily := randomAmount(r), randomAmount(r), randomAmount(r)
		in := AdjustmentInput{
			OTHours:         randomAmount(r),
			Incentive:       randomAmount(r),
			NoPayDays:       randomAmount(r),
			SalaryAdvance:   randomAmount(r),
			OtherDeductions: randomAmount(r),
		}

		b := ComputeBreakdown(base, otRate, daily, in)

		gross := base.Add(in.OTHours.Mul(otRate)).Add(in.Incentive)
		deductions := in.OtherDeductions.Add(in.NoPayDays.Mul(daily)).Add(in.SalaryAdvance)
		require.True(t, b.Gross.Equal(gross), "case %d: gross %s, want %s", i, b.Gross, gross)
		require.True(t, b.TotalDeductions.Equal(deductions), "case %d: deductions %s, want %s", i, b.TotalDeductions, deductions)
		require.True(t, b.Net.Equal(gross.Sub(deductions)), "case %d: net %s", i, b.Net)
		require.Equal(t, b, ComputeBreakdown(base, otRate, daily, in), "case %d", i)
	}
}

func TestComputeBreakdown_NoFloatDrift(t *testing.T) {
	b := ComputeBreakdown(d("0.1"), d("0"), d("0"), AdjustmentInput{Incentive: d("0.2")})

	assert.Equal(t, "0.3", b.Gross.String())
}

func TestComputeBreakdown_NegativesFlowThrough(t *testing.T) {
	b := ComputeBreakdown(d("1000"), d("10"), d("0"), AdjustmentInput{OTHours: d("-5")})

	assert.Equal(t, "-50", b.OTPay.String())
	assert.Equal(t, "950", b.Net.String())
}

func TestComputeBreakdown_Idempotent(t *testing.T) {
	in := AdjustmentInput{OTHours: d("7"), NoPayDays: d("1")}

	first := ComputeBreakdown(d("30000"), d("150"), d("1000"), in)
	second := ComputeBreakdown(d("30000"), d("150"), d("1000"), in)

	assert.Equal(t, first, second)
}

func TestValidateNonNegative(t *testing.T) {
	err := ValidateNonNegative(d("1000"), d("-1"), d("0"), AdjustmentInput{NoPayDays: d("-2")})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, map[string]string{
		"ot_rate":     "must be non-negative",
		"no_pay_days": "must be non-negative",
	}, verrs.ToMap())

	assert.NoError(t, ValidateNonNegative(d("0"), d("0"), d("0"), AdjustmentInput{}))
}

func TestWorksheet_SelectResetsAdjustments(t *testing.T) {
	// Arrange
	a := employee.Employee{ID: "a", BaseSalary: d("60000"), OTRate: d("300")}
	b := employee.Employee{ID: "b", BaseSalary: d("45000"), OTRate: d("200")}
	w := NewWorksheet(a)
	w.Adjustments = AdjustmentInput{OTHours: d("12"), Incentive: d("5000"), SalaryAdvance: d("2000")}
	w.DailyRate = d("999")

	// Act
	w.Select(b)

	// Assert
	assert.Equal(t, "b", w.Employee.ID)
	assert.Equal(t, "45000", w.BaseSalary.String())
	assert.Equal(t, "200", w.OTRate.String())
	assert.Equal(t, "1500", w.DailyRate.String())
	assert.Equal(t, AdjustmentInput{}, w.Adjustments)
	assert.Equal(t, "45000", w.Breakdown().Net.String())
}

func TestNewWorksheet_DailyRateRoundedToCents(t *testing.T) {
	w := NewWorksheet(employee.Employee{BaseSalary: d("1000")})

	assert.Equal(t, "33.33", w.DailyRate.String())
}
