package leave

import (
	"time"

	"github.com/paywell-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateLeaveRequestRequest struct {
	EmployeeID string          `json:"employee_id"`
	LeaveType  string          `json:"leave_type"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	DaysCount  decimal.Decimal `json:"days_count"`
	Reason     string          `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	switch LeaveType(r.LeaveType) {
	case LeaveTypeSick, LeaveTypeCasual, LeaveTypeEarned:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be SICK, CASUAL or EARNED",
		})
	}

	if _, err := time.Parse("2006-01-02", r.StartDate); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}

	if _, err := time.Parse("2006-01-02", r.EndDate); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}

	if !r.DaysCount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "days_count",
			Message: "days_count must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetLeaveStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *SetLeaveStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "leave request id is required",
		})
	}

	switch LeaveRequestStatus(r.Status) {
	case LeaveRequestStatusApproved, LeaveRequestStatusRejected:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be APPROVED or REJECTED",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	LeaveType    string          `json:"leave_type"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	DaysCount    decimal.Decimal `json:"days_count"`
	Reason       string          `json:"reason"`
	Status       string          `json:"status"`
	LOPDays      decimal.Decimal `json:"lop_days"`
	CreatedAt    string          `json:"created_at"`
}

type LeaveBalanceResponse struct {
	EmployeeID string          `json:"employee_id"`
	Year       int             `json:"year"`
	Sick       decimal.Decimal `json:"sick_leave_balance"`
	Casual     decimal.Decimal `json:"casual_leave_balance"`
	Earned     decimal.Decimal `json:"earned_leave_balance"`
}

type AccrualResultResponse struct {
	Period      string `json:"period"`
	Processed   int    `json:"processed"`
	Initialized int    `json:"initialized"`
	AlreadyRun  bool   `json:"already_run"`
}
