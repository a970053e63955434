package leave

import (
	"context"
)

// LeaveService defines business logic for the leave ledger and balances.
type LeaveService interface {
	// CreateRequest records a new ledger entry, always PENDING. Balance
	// sufficiency is not checked until approval.
	CreateRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// SetStatus approves or rejects a PENDING request. Approval decrements
	// the year's balance, clamping at zero with the shortfall recorded as
	// loss-of-pay days on the request.
	SetStatus(ctx context.Context, req SetLeaveStatusRequest) (LeaveRequestResponse, error)

	GetOrInitBalance(ctx context.Context, employeeID string, year int) (LeaveBalanceResponse, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
	ListPending(ctx context.Context) ([]LeaveRequestResponse, error)
	ListAll(ctx context.Context) ([]LeaveRequestResponse, error)
}

// AccrualService is triggered once per period by the scheduler (or an
// admin endpoint); the per-period claim makes re-triggering a no-op.
type AccrualService interface {
	Accrue(ctx context.Context) (AccrualResult, error)
}
