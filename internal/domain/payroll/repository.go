package payroll

import (
	"context"
)

// PayrollRunRepository is an append-only store. Nothing updates a persisted
// run except MarkPaid's status transition.
type PayrollRunRepository interface {
	Create(ctx context.Context, run PayrollRun) (PayrollRun, error)
	GetByID(ctx context.Context, id string) (PayrollRun, error)

	// MarkPaid performs the one-way PROCESSED to PAID transition, stamping
	// payment_date. It reports ErrPayrollRunAlreadyPaid for runs that have
	// already transitioned.
	MarkPaid(ctx context.Context, id string) (PayrollRun, error)

	ListAll(ctx context.Context) ([]PayrollRun, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PayrollRun, error)
	GetLatestByEmployee(ctx context.Context, employeeID string) (PayrollRun, error)
}
