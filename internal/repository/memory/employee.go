package memory

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	rows *table[employee.Employee]
}

func NewEmployeeRepository() employee.EmployeeRepository {
	return &employeeRepositoryImpl{rows: newTable[employee.Employee]()}
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	return r.rows.selectWhere(
		func(e employee.Employee) bool {
			return search == "" || strings.Contains(strings.ToLower(e.Name), search)
		},
		func(a, b employee.Employee) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
	), nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := r.rows.get(id)
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	if newEmployee.ID == "" {
		newEmployee.ID = newID()
	}
	newEmployee.CreatedAt = now()
	newEmployee.UpdatedAt = newEmployee.CreatedAt
	r.rows.put(newEmployee.ID, newEmployee)
	return newEmployee, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.UpdatedAt = now()
	if !r.rows.replace(emp.ID, emp) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !r.rows.remove(id) {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
