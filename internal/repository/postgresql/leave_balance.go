package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paywell-hr/payroll-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

// balanceColumn maps a leave type onto its balance column. The query text
// is assembled from this fixed set only, never from caller input.
func balanceColumn(leaveType leave.LeaveType) (string, error) {
	switch leaveType {
	case leave.LeaveTypeSick:
		return "sick_balance", nil
	case leave.LeaveTypeCasual:
		return "casual_balance", nil
	case leave.LeaveTypeEarned:
		return "earned_balance", nil
	}
	return "", leave.ErrInvalidLeaveType
}

// GetOrInit implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetOrInit(ctx context.Context, employeeID string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	insert := `
		INSERT INTO leave_balances (id, employee_id, year, sick_balance, casual_balance, earned_balance)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, year) DO NOTHING
	`
	if _, err := q.Exec(ctx, insert,
		uuid.NewString(), employeeID, year,
		leave.DefaultSickBalance, leave.DefaultCasualBalance, leave.DefaultEarnedBalance,
	); err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to init leave balance: %w", err)
	}

	return r.Get(ctx, employeeID, year)
}

// Get implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Get(ctx context.Context, employeeID string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, sick_balance, casual_balance, earned_balance, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND year = $2
	`

	var bal leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, year).Scan(
		&bal.ID, &bal.EmployeeID, &bal.Year,
		&bal.Sick, &bal.Casual, &bal.Earned,
		&bal.CreatedAt, &bal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return bal, nil
}

// DecrementWithFloor implements leave.LeaveBalanceRepository. The row is
// locked, decremented and clamped at zero in a single statement, so two
// concurrent approvals can never drive the balance negative.
func (r *leaveBalanceRepositoryImpl) DecrementWithFloor(ctx context.Context, employeeID string, year int, leaveType leave.LeaveType, days decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	col, err := balanceColumn(leaveType)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		WITH prev AS (
			SELECT %[1]s AS balance
			FROM leave_balances
			WHERE employee_id = $1 AND year = $2
			FOR UPDATE
		)
		UPDATE leave_balances lb
		SET %[1]s = GREATEST(prev.balance - $3, 0), updated_at = NOW()
		FROM prev
		WHERE lb.employee_id = $1 AND lb.year = $2
		RETURNING prev.balance, lb.%[1]s
	`, col)

	var previous, remaining decimal.Decimal
	err = q.QueryRow(ctx, query, employeeID, year, days).Scan(&previous, &remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, decimal.Zero, leave.ErrLeaveBalanceNotFound
		}
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to decrement leave balance: %w", err)
	}

	return previous, remaining, nil
}

// InitWithRates implements leave.LeaveBalanceRepository. An employee whose
// first accrual of the year creates the row starts from the monthly rates,
// not from the default annual seed.
func (r *leaveBalanceRepositoryImpl) InitWithRates(ctx context.Context, employeeID string, year int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (id, employee_id, year, sick_balance, casual_balance, earned_balance)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, year) DO NOTHING
	`
	_, err := q.Exec(ctx, query,
		uuid.NewString(), employeeID, year,
		leave.AccrualRateSick, leave.AccrualRateCasual, leave.AccrualRateEarned,
	)
	if err != nil {
		return fmt.Errorf("failed to init leave balance with accrual rates: %w", err)
	}
	return nil
}

// Accrue implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Accrue(ctx context.Context, employeeID string, year int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET sick_balance = sick_balance + $3,
			casual_balance = casual_balance + $4,
			earned_balance = earned_balance + $5,
			updated_at = NOW()
		WHERE employee_id = $1 AND year = $2
	`
	tag, err := q.Exec(ctx, query, employeeID, year,
		leave.AccrualRateSick, leave.AccrualRateCasual, leave.AccrualRateEarned,
	)
	if err != nil {
		return fmt.Errorf("failed to accrue leave balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveBalanceNotFound
	}
	return nil
}
