package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayrollStatus string

const (
	PayrollStatusProcessed PayrollStatus = "PROCESSED"
	PayrollStatusPaid      PayrollStatus = "PAID"
)

// Breakdown is the payroll engine's output for one employee and period.
// Every monetary field is rounded to two decimals at this boundary;
// intermediate arithmetic keeps full precision.
type Breakdown struct {
	EmployeeID       string
	PayPeriodStart   time.Time
	PayPeriodEnd     time.Time
	GrossPay         decimal.Decimal
	TotalDeductions  decimal.Decimal
	TaxDeducted      decimal.Decimal
	EWADeductions    decimal.Decimal
	NetPay           decimal.Decimal
	Bonus            decimal.Decimal
	ManualDeductions decimal.Decimal

	BasicPay                 decimal.Decimal
	HRAPay                   decimal.Decimal
	SpecialAllowancePay      decimal.Decimal
	PFDeduction              decimal.Decimal
	ProfessionalTaxDeduction decimal.Decimal
	ESIDeduction             decimal.Decimal
	IncomeTaxDeduction       decimal.Decimal

	Details BreakdownDetails
}

// BreakdownDetails carries the non-persisted working figures behind a
// breakdown, surfaced on the payslip.
type BreakdownDetails struct {
	LOPDays             decimal.Decimal
	LateDeductionDays   int64
	LeaveDeduction      decimal.Decimal
	LateDeductionAmount decimal.Decimal
	OvertimeHours       decimal.Decimal
	OvertimePay         decimal.Decimal
}

// PayrollRun is an immutable history record of one engine invocation. The
// only permitted mutation is the one-way PROCESSED to PAID transition,
// which stamps PaymentDate.
type PayrollRun struct {
	ID               string
	EmployeeID       string
	PayPeriodStart   time.Time
	PayPeriodEnd     time.Time
	GrossPay         decimal.Decimal
	TotalDeductions  decimal.Decimal
	TaxDeducted      decimal.Decimal
	EWADeductions    decimal.Decimal
	NetPay           decimal.Decimal
	Bonus            decimal.Decimal
	ManualDeductions decimal.Decimal

	BasicPay                 decimal.Decimal
	HRAPay                   decimal.Decimal
	SpecialAllowancePay      decimal.Decimal
	PFDeduction              decimal.Decimal
	ProfessionalTaxDeduction decimal.Decimal
	ESIDeduction             decimal.Decimal
	IncomeTaxDeduction       decimal.Decimal

	Status      PayrollStatus
	PaymentDate *time.Time
	CreatedAt   time.Time
}
