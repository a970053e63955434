package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// InsertIfAbsent creates the day's record atomically. It reports
	// ErrAlreadyCheckedIn when a row for (employee, date) already exists,
	// so concurrent check-ins cannot produce duplicates.
	InsertIfAbsent(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns the record for a local calendar day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// CloseOut finalizes the open record. It reports ErrAlreadyCheckedOut
	// when clock_out is already set.
	CloseOut(ctx context.Context, id string, clockOut time.Time, overtimeHours float64) (Attendance, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// CountPresentSince counts PRESENT records on or after the date.
	CountPresentSince(ctx context.Context, employeeID string, since time.Time) (int, error)

	// CountPresentByEmployeeSince groups PRESENT record counts by employee.
	CountPresentByEmployeeSince(ctx context.Context, since time.Time) (map[string]int, error)
}
