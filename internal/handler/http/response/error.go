package response

import (
	"errors"
	"net/http"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/auth"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/master/taxslab"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/paywell-hr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, auth.ErrUserExists):
		Conflict(w, "User already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Tax configuration errors
	case errors.Is(err, taxslab.ErrTaxSlabNotFound):
		BadRequest(w, "Tax slab not found for employee", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidLeaveStatus):
		BadRequest(w, "Invalid leave status", nil)
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Invalid leave type", nil)
	case errors.Is(err, leave.ErrLeaveBalanceNotFound):
		NotFound(w, "Leave balance not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNoCheckIn):
		BadRequest(w, "No check-in found for today", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrPayrollRunAlreadyPaid):
		Conflict(w, "Payroll run already paid")
	case errors.Is(err, payroll.ErrNoPayslipsFound):
		NotFound(w, "No payslips found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
