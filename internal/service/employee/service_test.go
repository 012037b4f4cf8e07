package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newService() employee.EmployeeService {
	return NewEmployeeService(memory.NewEmployeeRepository(), nil)
}

func TestEmployeeService_CreateEmployee_Success(t *testing.T) {
	svc := newService()

	// Act
	resp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Name:       "Nimal Perera",
		Role:       "Operator",
		BaseSalary: ptr(decimal.NewFromInt(45000)),
		Birthday:   "1990-06-15",
	})

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "1500", resp.DefaultDailyRate.String())
	assert.True(t, resp.OTRate.IsZero())
	require.NotNil(t, resp.Birthday)
	assert.Equal(t, "1990-06-15", *resp.Birthday)
}

func TestEmployeeService_CreateEmployee_Validation(t *testing.T) {
	svc := newService()

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		BaseSalary: ptr(decimal.NewFromInt(-1)),
		OTRate:     ptr(decimal.NewFromInt(-5)),
		Email:      "not-an-email",
		Birthday:   "15/06/1990",
	})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := verrs.ToMap()
	for _, field := range []string{"name", "role", "base_salary", "ot_rate", "email", "birthday"} {
		assert.Contains(t, fields, field)
	}
}

func TestEmployeeService_UpdateEmployee_PartialAndClearsBirthday(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	created, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Name:       "Kamal",
		Role:       "Driver",
		Department: "Transport",
		BaseSalary: ptr(decimal.NewFromInt(30000)),
		Birthday:   "1985-01-01",
	})
	require.NoError(t, err)

	// Act
	updated, err := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID:       created.ID,
		Role:     ptr("Senior Driver"),
		Birthday: ptr(""),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Kamal", updated.Name)
	assert.Equal(t, "Senior Driver", updated.Role)
	assert.Equal(t, "Transport", updated.Department)
	assert.Nil(t, updated.Birthday)
}

func TestEmployeeService_ListEmployees_Search(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	for _, name := range []string{"Nimal Perera", "Sunil Silva", "Amal Perera"} {
		_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
			Name: name, Role: "Staff", BaseSalary: ptr(decimal.NewFromInt(1000)),
		})
		require.NoError(t, err)
	}

	got, err := svc.ListEmployees(ctx, employee.EmployeeFilter{Search: "perera"})

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestEmployeeService_NotFound(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.GetEmployee(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: "missing", Name: ptr("X")})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	err = svc.DeleteEmployee(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
