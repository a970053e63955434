package payroll

import (
	"context"
)

// PayrollService defines business logic around payroll runs.
type PayrollService interface {
	// RunPayroll computes the breakdown for an employee and period and
	// persists it as a PROCESSED run. Compute-then-persist is
	// all-or-nothing: a failed persist leaves no partial state.
	RunPayroll(ctx context.Context, req RunPayrollRequest) (PayrollRunResponse, error)

	// MarkPaid transitions a PROCESSED run to PAID.
	MarkPaid(ctx context.Context, id string) (PayrollRunResponse, error)

	History(ctx context.Context) ([]PayrollRunResponse, error)
	EmployeeHistory(ctx context.Context, employeeID string) ([]PayrollRunResponse, error)
	LatestPayslip(ctx context.Context, employeeID string) (PayrollRunResponse, error)
}
