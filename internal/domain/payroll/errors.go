package payroll

import "errors"

var (
	ErrPayrollRunNotFound    = errors.New("payroll run not found")
	ErrPayrollRunAlreadyPaid = errors.New("payroll run already paid")
	ErrNoPayslipsFound       = errors.New("no payslips found")
)
