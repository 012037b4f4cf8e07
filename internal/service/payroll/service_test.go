package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/document"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/numeric"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/service/file"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(s string) numeric.Lenient {
	return numeric.NewLenient(decimal.RequireFromString(s))
}

type fixture struct {
	svc       payroll.PayrollService
	employees employee.EmployeeRepository
}

func newFixture(t *testing.T, strict bool) fixture {
	t.Helper()
	local, err := storage.NewLocalStorage(t.TempDir(), "/files")
	require.NoError(t, err)

	clk := clock.NewFakeClock(time.Date(2025, 4, 30, 17, 0, 0, 0, time.UTC))
	employees := memory.NewEmployeeRepository()
	svc := NewPayrollService(
		employees,
		document.NewRenderer("Test Traders", "Rs."),
		file.NewFileService(local, clk),
		clk,
		strict,
	)
	return fixture{svc: svc, employees: employees}
}

func (f fixture) hire(t *testing.T, name, base, ot string) employee.Employee {
	t.Helper()
	e, err := f.employees.Create(context.Background(), employee.Employee{
		Name:       name,
		Role:       "Operator",
		BaseSalary: decimal.RequireFromString(base),
		OTRate:     decimal.RequireFromString(ot),
	})
	require.NoError(t, err)
	return e
}

func TestPayrollService_GetWorksheet_SeedsDailyRate(t *testing.T) {
	// Arrange
	f := newFixture(t, false)
	e := f.hire(t, "Nimal", "60000", "300")

	// Act
	w, err := f.svc.GetWorksheet(context.Background(), e.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "2000", w.DailyRate.String())
	assert.Equal(t, "60000", w.Breakdown.Net.String())
}

func TestPayrollService_GetWorksheet_NotFound(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.svc.GetWorksheet(context.Background(), "missing")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestPayrollService_Calculate_EmployeeSwitchCarriesNothing(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newFixture(t, false)
	a := f.hire(t, "Nimal", "60000", "300")
	b := f.hire(t, "Kamal", "45000", "200")

	_, err := f.svc.Calculate(ctx, payroll.CalculateRequest{
		EmployeeID:    a.ID,
		OTHours:       num("10"),
		Incentive:     num("5000"),
		SalaryAdvance: num("1000"),
	})
	require.NoError(t, err)

	// Act
	got, err := f.svc.Calculate(ctx, payroll.CalculateRequest{EmployeeID: b.ID})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "45000", got.Gross.String())
	assert.Equal(t, "1500", got.DailyRate.String())
	assert.True(t, got.TotalDeductions.IsZero())
	assert.Equal(t, "45000", got.Net.String())
}

func TestPayrollService_Calculate_AdHoc(t *testing.T) {
	got, err := newFixture(t, false).svc.Calculate(context.Background(), payroll.CalculateRequest{
		BaseSalary: num("30000"),
		OTRate:     num("150"),
		OTHours:    num("4"),
		NoPayDays:  num("1"),
	})

	require.NoError(t, err)
	assert.Equal(t, "600", got.OTPay.String())
	assert.Equal(t, "1000", got.NoPayDeduction.String())
	assert.Equal(t, "29600", got.Net.String())
}

func TestPayrollService_Calculate_LenientGarbageIsZero(t *testing.T) {
	var req payroll.CalculateRequest
	require.NoError(t, req.Incentive.UnmarshalJSON([]byte(`"abc"`)))
	req.BaseSalary = num("1000")

	got, err := newFixture(t, false).svc.Calculate(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, got.Incentive.IsZero())
	assert.Equal(t, "1000", got.Net.String())
}

func TestPayrollService_Calculate_StrictRejectsNegatives(t *testing.T) {
	req := payroll.CalculateRequest{BaseSalary: num("1000"), OTHours: num("-2")}

	lenient, err := newFixture(t, false).svc.Calculate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "1000", lenient.Net.String())

	_, err = newFixture(t, true).svc.Calculate(context.Background(), req)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "ot_hours")

	req.Strict = true
	_, err = newFixture(t, false).svc.Calculate(context.Background(), req)
	assert.Error(t, err)
}

func TestPayrollService_GeneratePayslip(t *testing.T) {
	// Arrange
	f := newFixture(t, false)
	e := f.hire(t, "Nimal", "60000", "300")

	// Act
	doc, err := f.svc.GeneratePayslip(context.Background(), payroll.PayslipRequest{
		CalculateRequest: payroll.CalculateRequest{EmployeeID: e.ID, OTHours: num("2")},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "payslip_"+e.ID+"_April_2025.pdf", doc.Name)
	assert.Equal(t, "payslips/2025/04/"+doc.Name, doc.Path)
	assert.Equal(t, "%PDF", string(doc.Body[:4]))
}

func TestPayrollService_GeneratePayslip_RequiresEmployee(t *testing.T) {
	_, err := newFixture(t, false).svc.GeneratePayslip(context.Background(), payroll.PayslipRequest{})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
