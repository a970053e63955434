package payroll

import (
	"time"

	"github.com/paywell-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RunPayrollRequest struct {
	EmployeeID      string          `json:"-"`
	PayPeriodStart  string          `json:"payPeriodStart"`
	PayPeriodEnd    string          `json:"payPeriodEnd"`
	Bonus           decimal.Decimal `json:"bonus"`
	ManualDeduction decimal.Decimal `json:"manualDeduction"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee id is required",
		})
	}

	start, startErr := time.Parse("2006-01-02", r.PayPeriodStart)
	if startErr != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "payPeriodStart",
			Message: "payPeriodStart must be YYYY-MM-DD",
		})
	}

	end, endErr := time.Parse("2006-01-02", r.PayPeriodEnd)
	if endErr != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "payPeriodEnd",
			Message: "payPeriodEnd must be YYYY-MM-DD",
		})
	}

	if startErr == nil && endErr == nil && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "payPeriodEnd",
			Message: "payPeriodEnd must not be before payPeriodStart",
		})
	}

	if r.Bonus.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "bonus",
			Message: "bonus must not be negative",
		})
	}

	if r.ManualDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "manualDeduction",
			Message: "manualDeduction must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollRunResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	PayPeriodStart   string          `json:"pay_period_start"`
	PayPeriodEnd     string          `json:"pay_period_end"`
	GrossPay         decimal.Decimal `json:"gross_pay"`
	Deductions       decimal.Decimal `json:"deductions"`
	TaxDeducted      decimal.Decimal `json:"tax_deducted"`
	EWADeductions    decimal.Decimal `json:"ewa_deductions"`
	NetPay           decimal.Decimal `json:"net_pay"`
	Bonus            decimal.Decimal `json:"bonus"`
	ManualDeductions decimal.Decimal `json:"manual_deductions"`

	BasicPay                 decimal.Decimal `json:"basic_pay"`
	HRAPay                   decimal.Decimal `json:"hra_pay"`
	SpecialAllowancePay      decimal.Decimal `json:"special_allowance_pay"`
	PFDeduction              decimal.Decimal `json:"pf_deduction"`
	ProfessionalTaxDeduction decimal.Decimal `json:"professional_tax_deduction"`
	ESIDeduction             decimal.Decimal `json:"esi_deduction"`
	IncomeTaxDeduction       decimal.Decimal `json:"income_tax_deduction"`

	Status      string  `json:"status"`
	PaymentDate *string `json:"payment_date,omitempty"`
	CreatedAt   string  `json:"created_at"`
}
