package employee

import (
	"github.com/paywell-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName        string          `json:"first_name"`
	LastName         string          `json:"last_name"`
	Email            string          `json:"email"`
	Phone            *string         `json:"phone"`
	Salary           decimal.Decimal `json:"salary"`
	TaxSlabID        string          `json:"tax_slab_id"`
	BasicSalary      decimal.Decimal `json:"basic_salary"`
	HRA              decimal.Decimal `json:"hra"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if r.Salary.IsNegative() || r.BasicSalary.IsNegative() || r.HRA.IsNegative() || r.SpecialAllowance.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary components must not be negative",
		})
	}

	if validator.IsEmpty(r.TaxSlabID) {
		errs = append(errs, validator.ValidationError{
			Field:   "tax_slab_id",
			Message: "tax_slab_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateCompensationRequest carries an HR edit of an employee's pay
// structure. ChangedBy is the acting principal, recorded on the salary
// revision when the flat salary changes.
type UpdateCompensationRequest struct {
	ID               string          `json:"-"`
	Salary           decimal.Decimal `json:"salary"`
	BasicSalary      decimal.Decimal `json:"basic_salary"`
	HRA              decimal.Decimal `json:"hra"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	ChangedBy        *string         `json:"-"`
}

func (r *UpdateCompensationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "employee id is required",
		})
	}

	if r.Salary.IsNegative() || r.BasicSalary.IsNegative() || r.HRA.IsNegative() || r.SpecialAllowance.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary components must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID               string          `json:"id"`
	FirstName        string          `json:"first_name"`
	LastName         string          `json:"last_name"`
	Email            string          `json:"email"`
	Phone            *string         `json:"phone,omitempty"`
	Role             string          `json:"role"`
	Salary           decimal.Decimal `json:"salary"`
	BasicSalary      decimal.Decimal `json:"basic_salary"`
	HRA              decimal.Decimal `json:"hra"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	TaxSlabID        string          `json:"tax_slab_id"`
	JoinDate         string          `json:"join_date"`
	Status           string          `json:"status"`
}

type SalaryRevisionResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	OldSalary  decimal.Decimal `json:"old_salary"`
	NewSalary  decimal.Decimal `json:"new_salary"`
	ChangedBy  *string         `json:"changed_by,omitempty"`
	ChangeDate string          `json:"change_date"`
}
