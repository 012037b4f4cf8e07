package employee

import (
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeFilter struct {
	Search string
}

type CreateEmployeeRequest struct {
	Name          string           `json:"name"`
	Role          string           `json:"role"`
	Department    string           `json:"department"`
	BaseSalary    *decimal.Decimal `json:"base_salary"`
	OTRate        *decimal.Decimal `json:"ot_rate,omitempty"`
	Address       string           `json:"address"`
	Birthday      string           `json:"birthday,omitempty"`
	Email         string           `json:"email"`
	ContactNumber string           `json:"contact_number"`
	NIC           string           `json:"nic"`
	BankAccount   string           `json:"bank_account"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "is required"})
	}
	if r.BaseSalary == nil {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "is required"})
	} else {
		errs = append(errs, validator.Amount("base_salary", *r.BaseSalary)...)
	}
	if r.OTRate != nil {
		errs = append(errs, validator.Amount("ot_rate", *r.OTRate)...)
	}
	errs = append(errs, validateContact(r.Email, r.Birthday)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity assumes Validate has passed.
func (r *CreateEmployeeRequest) ToEntity() Employee {
	emp := Employee{
		Name:          r.Name,
		Role:          r.Role,
		Department:    r.Department,
		BaseSalary:    *r.BaseSalary,
		OTRate:        decimal.Zero,
		Address:       r.Address,
		Email:         r.Email,
		ContactNumber: r.ContactNumber,
		NIC:           r.NIC,
		BankAccount:   r.BankAccount,
	}
	if r.OTRate != nil {
		emp.OTRate = *r.OTRate
	}
	if r.Birthday != "" {
		if d, ok := validator.IsValidDate(r.Birthday); ok {
			emp.Birthday = &d
		}
	}
	return emp
}

type UpdateEmployeeRequest struct {
	ID            string
	Name          *string          `json:"name,omitempty"`
	Role          *string          `json:"role,omitempty"`
	Department    *string          `json:"department,omitempty"`
	BaseSalary    *decimal.Decimal `json:"base_salary,omitempty"`
	OTRate        *decimal.Decimal `json:"ot_rate,omitempty"`
	Address       *string          `json:"address,omitempty"`
	Birthday      *string          `json:"birthday,omitempty"`
	Email         *string          `json:"email,omitempty"`
	ContactNumber *string          `json:"contact_number,omitempty"`
	NIC           *string          `json:"nic,omitempty"`
	BankAccount   *string          `json:"bank_account,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}
	if r.Role != nil && validator.IsEmpty(*r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "cannot be empty"})
	}
	if r.BaseSalary != nil {
		errs = append(errs, validator.Amount("base_salary", *r.BaseSalary)...)
	}
	if r.OTRate != nil {
		errs = append(errs, validator.Amount("ot_rate", *r.OTRate)...)
	}
	var email, birthday string
	if r.Email != nil {
		email = *r.Email
	}
	if r.Birthday != nil {
		birthday = *r.Birthday
	}
	errs = append(errs, validateContact(email, birthday)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply copies the set fields onto emp. An empty birthday clears it.
func (r *UpdateEmployeeRequest) Apply(emp Employee) Employee {
	if r.Name != nil {
		emp.Name = *r.Name
	}
	if r.Role != nil {
		emp.Role = *r.Role
	}
	if r.Department != nil {
		emp.Department = *r.Department
	}
	if r.BaseSalary != nil {
		emp.BaseSalary = *r.BaseSalary
	}
	if r.OTRate != nil {
		emp.OTRate = *r.OTRate
	}
	if r.Address != nil {
		emp.Address = *r.Address
	}
	if r.Birthday != nil {
		emp.Birthday = nil
		if d, ok := validator.IsValidDate(*r.Birthday); ok {
			emp.Birthday = &d
		}
	}
	if r.Email != nil {
		emp.Email = *r.Email
	}
	if r.ContactNumber != nil {
		emp.ContactNumber = *r.ContactNumber
	}
	if r.NIC != nil {
		emp.NIC = *r.NIC
	}
	if r.BankAccount != nil {
		emp.BankAccount = *r.BankAccount
	}
	return emp
}

func validateContact(email, birthday string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if email != "" && !validator.IsValidEmail(email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if birthday != "" {
		if _, ok := validator.IsValidDate(birthday); !ok {
			errs = append(errs, validator.ValidationError{Field: "birthday", Message: "must be in YYYY-MM-DD format"})
		}
	}
	return errs
}

type EmployeeResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Role             string          `json:"role"`
	Department       string          `json:"department"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	OTRate           decimal.Decimal `json:"ot_rate"`
	DefaultDailyRate decimal.Decimal `json:"default_daily_rate"`
	Address          string          `json:"address"`
	Birthday         *string         `json:"birthday,omitempty"`
	Email            string          `json:"email"`
	ContactNumber    string          `json:"contact_number"`
	NIC              string          `json:"nic"`
	BankAccount      string          `json:"bank_account"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               e.ID,
		Name:             e.Name,
		Role:             e.Role,
		Department:       e.Department,
		BaseSalary:       e.BaseSalary,
		OTRate:           e.OTRate,
		DefaultDailyRate: e.DefaultDailyRate(),
		Address:          e.Address,
		Email:            e.Email,
		ContactNumber:    e.ContactNumber,
		NIC:              e.NIC,
		BankAccount:      e.BankAccount,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if e.Birthday != nil {
		b := e.Birthday.Format(validator.DateLayout)
		resp.Birthday = &b
	}
	return resp
}
