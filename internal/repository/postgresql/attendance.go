package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paywell-hr/payroll-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, employee_id, date, clock_in, clock_out, status,
		late_minutes, overtime_hours, created_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.ClockIn, &att.ClockOut,
		&att.Status, &att.LateMinutes, &att.OvertimeHours, &att.CreatedAt,
	)
	return att, err
}

// InsertIfAbsent implements attendance.AttendanceRepository. The unique
// constraint on (employee_id, date) absorbs concurrent check-ins; the
// loser of the race sees no returned row.
func (r *attendanceRepositoryImpl) InsertIfAbsent(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, employee_id, date, clock_in, status, late_minutes, overtime_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		att.ID, att.EmployeeID, att.Date, att.ClockIn, att.Status,
		att.LateMinutes, att.OvertimeHours,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE employee_id = $1 AND date = $2`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return att, nil
}

// CloseOut implements attendance.AttendanceRepository. The clock_out IS
// NULL guard keeps the record single-checkout under concurrent calls.
func (r *attendanceRepositoryImpl) CloseOut(ctx context.Context, id string, clockOut time.Time, overtimeHours float64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET clock_out = $2, overtime_hours = $3
		WHERE id = $1 AND clock_out IS NULL
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, id, clockOut, overtimeHours))
	if err == nil {
		return att, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.Attendance{}, fmt.Errorf("failed to close attendance record %s: %w", id, err)
	}

	// No open row matched. Distinguish missing from already closed.
	var exists bool
	if checkErr := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM attendance WHERE id = $1)`, id).Scan(&exists); checkErr != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to close attendance record %s: %w", id, checkErr)
	}
	if !exists {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE employee_id = $1
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.clock_in, a.clock_out, a.status,
			a.late_minutes, a.overtime_hours, a.created_at,
			e.first_name, e.last_name
		FROM attendance a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.date = $1
		ORDER BY a.clock_in
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.ClockIn, &att.ClockOut,
			&att.Status, &att.LateMinutes, &att.OvertimeHours, &att.CreatedAt,
			&att.FirstName, &att.LastName,
		); err != nil {
			return nil, err
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// CountPresentSince implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountPresentSince(ctx context.Context, employeeID string, since time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendance
		WHERE employee_id = $1 AND date >= $2 AND status = $3
	`

	var count int
	if err := q.QueryRow(ctx, query, employeeID, since, attendance.StatusPresent).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count present days: %w", err)
	}

	return count, nil
}

// CountPresentByEmployeeSince implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountPresentByEmployeeSince(ctx context.Context, since time.Time) (map[string]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, COUNT(*)
		FROM attendance
		WHERE date >= $1 AND status = $2
		GROUP BY employee_id
	`

	rows, err := q.Query(ctx, query, since, attendance.StatusPresent)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var employeeID string
		var count int
		if err := rows.Scan(&employeeID, &count); err != nil {
			return nil, err
		}
		counts[employeeID] = count
	}

	return counts, rows.Err()
}

func collectAttendance(rows pgx.Rows) ([]attendance.Attendance, error) {
	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, att)
	}

	return records, rows.Err()
}
