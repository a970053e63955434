package leave

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// UpdateStatus transitions a request out of PENDING. It reports
	// ErrLeaveAlreadyProcessed when the row exists but is no longer
	// PENDING, so the terminal-state guard holds under concurrent calls.
	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus) (LeaveRequest, error)

	// SetLOPDays stamps computed loss-of-pay days on an approved request.
	SetLOPDays(ctx context.Context, id string, lopDays decimal.Decimal) error

	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ListPending(ctx context.Context) ([]LeaveRequest, error)
	ListAll(ctx context.Context) ([]LeaveRequest, error)

	// SumApprovedLOPDays totals lop_days over APPROVED requests whose
	// start and end dates both fall within the period.
	SumApprovedLOPDays(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (decimal.Decimal, error)
}

type LeaveBalanceRepository interface {
	// GetOrInit returns the balance row for (employee, year), creating it
	// with the default seed when absent. Idempotent.
	GetOrInit(ctx context.Context, employeeID string, year int) (LeaveBalance, error)

	Get(ctx context.Context, employeeID string, year int) (LeaveBalance, error)

	// DecrementWithFloor atomically subtracts days from the balance column
	// for the given leave type, clamping at zero, and returns the previous
	// and remaining values. This is the only balance-decrement path so the
	// non-negative invariant holds under concurrent approvals.
	DecrementWithFloor(ctx context.Context, employeeID string, year int, leaveType LeaveType, days decimal.Decimal) (previous, remaining decimal.Decimal, err error)

	// InitWithRates seeds a first-accrual balance row with the accrual
	// rates as opening values.
	InitWithRates(ctx context.Context, employeeID string, year int) error

	// Accrue increments an existing balance row by the accrual rates.
	Accrue(ctx context.Context, employeeID string, year int) error
}

// AccrualPeriodRepository is the idempotency guard for the accrual job.
type AccrualPeriodRepository interface {
	// Claim records that accrual ran for the period (formatted
	// "YYYY-MM"). It returns false when the period was already claimed.
	Claim(ctx context.Context, period string) (bool, error)
}
