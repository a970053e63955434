package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paywell-hr/payroll-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `id, employee_id, leave_type, start_date, end_date,
		days_count, reason, status, lop_days, created_at`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
		&req.DaysCount, &req.Reason, &req.Status, &req.LOPDays, &req.CreatedAt,
	)
	return req, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_ledger (id, employee_id, leave_type, start_date, end_date,
			days_count, reason, status, lop_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + leaveRequestColumns

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.LeaveType, req.StartDate, req.EndDate,
		req.DaysCount, req.Reason, req.Status, req.LOPDays,
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_ledger WHERE id = $1`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request %s: %w", id, err)
	}

	return req, nil
}

// UpdateStatus implements leave.LeaveRequestRepository. The WHERE clause
// only matches PENDING rows, so a second decision on the same request
// falls through to the existence check and reports the terminal state.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_ledger
		SET status = $2
		WHERE id = $1 AND status = $3
		RETURNING ` + leaveRequestColumns

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id, status, leave.LeaveRequestStatusPending))
	if err == nil {
		return req, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request %s: %w", id, err)
	}

	// No PENDING row matched. Distinguish missing from already decided.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return leave.LeaveRequest{}, getErr
	}
	return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
}

// SetLOPDays implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) SetLOPDays(ctx context.Context, id string, lopDays decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE leave_ledger SET lop_days = $2 WHERE id = $1`, id, lopDays)
	if err != nil {
		return fmt.Errorf("failed to set lop days on leave request %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_ledger
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows, false)
}

// ListPending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ll.id, ll.employee_id, ll.leave_type, ll.start_date, ll.end_date,
			ll.days_count, ll.reason, ll.status, ll.lop_days, ll.created_at,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM leave_ledger ll
		JOIN employees e ON ll.employee_id = e.id
		WHERE ll.status = $1
		ORDER BY ll.created_at
	`

	rows, err := q.Query(ctx, query, leave.LeaveRequestStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows, true)
}

// ListAll implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ll.id, ll.employee_id, ll.leave_type, ll.start_date, ll.end_date,
			ll.days_count, ll.reason, ll.status, ll.lop_days, ll.created_at,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM leave_ledger ll
		JOIN employees e ON ll.employee_id = e.id
		ORDER BY ll.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows, true)
}

// SumApprovedLOPDays implements leave.LeaveRequestRepository. Both the
// start and end date must fall inside the period for a request to count.
func (r *leaveRequestRepositoryImpl) SumApprovedLOPDays(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(lop_days), 0)
		FROM leave_ledger
		WHERE employee_id = $1
		  AND status = $2
		  AND start_date >= $3
		  AND end_date <= $4
	`

	var sum decimal.Decimal
	err := q.QueryRow(ctx, query, employeeID, leave.LeaveRequestStatusApproved, periodStart, periodEnd).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum approved lop days: %w", err)
	}

	return sum, nil
}

func collectLeaveRequests(rows pgx.Rows, withEmployeeName bool) ([]leave.LeaveRequest, error) {
	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		var req leave.LeaveRequest
		var err error
		if withEmployeeName {
			err = rows.Scan(
				&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
				&req.DaysCount, &req.Reason, &req.Status, &req.LOPDays, &req.CreatedAt,
				&req.EmployeeName,
			)
		} else {
			err = rows.Scan(
				&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
				&req.DaysCount, &req.Reason, &req.Status, &req.LOPDays, &req.CreatedAt,
			)
		}
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}
