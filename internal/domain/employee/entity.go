package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	FirstName        string
	LastName         string
	Email            string
	Phone            *string
	Role             Role
	PasswordHash     string
	Salary           decimal.Decimal
	BasicSalary      decimal.Decimal
	HRA              decimal.Decimal
	SpecialAllowance decimal.Decimal
	TaxSlabID        string
	JoinDate         time.Time
	Status           Status
}

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Compensation is the normalized pay structure resolved from an Employee
// row. Legacy rows carry only the flat Salary column; structured rows carry
// basic, HRA and special allowance components.
type Compensation struct {
	Basic            decimal.Decimal
	HRA              decimal.Decimal
	SpecialAllowance decimal.Decimal
	MonthlyFixedPay  decimal.Decimal
	Legacy           bool
}

// Compensation resolves the pay structure once at load time. The flat Salary
// column is used only when all three components sum to exactly zero.
func (e Employee) Compensation() Compensation {
	fixed := e.BasicSalary.Add(e.HRA).Add(e.SpecialAllowance)
	if fixed.IsZero() {
		return Compensation{
			MonthlyFixedPay: e.Salary,
			Legacy:          true,
		}
	}
	return Compensation{
		Basic:            e.BasicSalary,
		HRA:              e.HRA,
		SpecialAllowance: e.SpecialAllowance,
		MonthlyFixedPay:  fixed,
	}
}

// SalaryRevision is an append-only audit record written whenever an
// employee's salary actually changes. Rows are never edited or deleted.
type SalaryRevision struct {
	ID         string
	EmployeeID string
	OldSalary  decimal.Decimal
	NewSalary  decimal.Decimal
	ChangedBy  *string
	ChangeDate time.Time
}
