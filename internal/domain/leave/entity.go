package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

type LeaveType string

const (
	LeaveTypeSick   LeaveType = "SICK"
	LeaveTypeCasual LeaveType = "CASUAL"
	LeaveTypeEarned LeaveType = "EARNED"
)

// HasBalance reports whether the leave type is backed by a balance
// column. Types outside the three known ones skip balance logic entirely.
func (t LeaveType) HasBalance() bool {
	switch t {
	case LeaveTypeSick, LeaveTypeCasual, LeaveTypeEarned:
		return true
	}
	return false
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "PENDING"
	LeaveRequestStatusApproved LeaveRequestStatus = "APPROVED"
	LeaveRequestStatusRejected LeaveRequestStatus = "REJECTED"
)

// LeaveBalance is keyed by (employee, calendar year). Each balance field is
// non-negative at all times; a decrement past zero clamps and the shortfall
// becomes loss-of-pay days on the request.
type LeaveBalance struct {
	ID         string
	EmployeeID string
	Year       int
	Sick       decimal.Decimal
	Casual     decimal.Decimal
	Earned     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Default seed for lazily created balance rows.
var (
	DefaultSickBalance   = decimal.NewFromInt(12)
	DefaultCasualBalance = decimal.NewFromInt(12)
	DefaultEarnedBalance = decimal.NewFromInt(15)
)

// LeaveRequest is a ledger entry. Status transitions exactly once, from
// PENDING to APPROVED or REJECTED; both are terminal.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	DaysCount  decimal.Decimal
	Reason     string
	Status     LeaveRequestStatus
	LOPDays    decimal.Decimal
	CreatedAt  time.Time

	// Joined fields for admin listings
	EmployeeName *string
}

// AccrualResult summarizes one run of the monthly accrual job.
type AccrualResult struct {
	Period      string
	Processed   int
	Initialized int
	AlreadyRun  bool
}

// Monthly accrual rates. On an employee's first accrual of a year the rates
// themselves become the opening balance, not the default seed.
var (
	AccrualRateSick   = decimal.NewFromFloat(1.0)
	AccrualRateCasual = decimal.NewFromFloat(1.0)
	AccrualRateEarned = decimal.NewFromFloat(1.25)
)
