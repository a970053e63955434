package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/leave"
)

type AccrualServiceImpl struct {
	balanceRepo  leave.LeaveBalanceRepository
	periodRepo   leave.AccrualPeriodRepository
	employeeRepo employee.EmployeeRepository

	now func() time.Time
}

func NewAccrualService(
	balanceRepo leave.LeaveBalanceRepository,
	periodRepo leave.AccrualPeriodRepository,
	employeeRepo employee.EmployeeRepository,
) leave.AccrualService {
	return &AccrualServiceImpl{
		balanceRepo:  balanceRepo,
		periodRepo:   periodRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// Accrue implements leave.AccrualService. The period marker is claimed
// up front, so no matter how many triggers fire in a month only one run
// touches balances.
func (s *AccrualServiceImpl) Accrue(ctx context.Context) (leave.AccrualResult, error) {
	now := s.now()
	period := now.Format("2006-01")
	year := now.Year()

	claimed, err := s.periodRepo.Claim(ctx, period)
	if err != nil {
		return leave.AccrualResult{}, err
	}
	if !claimed {
		return leave.AccrualResult{Period: period, AlreadyRun: true}, nil
	}

	ids, err := s.employeeRepo.ListIDs(ctx)
	if err != nil {
		return leave.AccrualResult{}, err
	}

	result := leave.AccrualResult{Period: period}
	for _, id := range ids {
		_, err := s.balanceRepo.Get(ctx, id, year)
		switch {
		case errors.Is(err, leave.ErrLeaveBalanceNotFound):
			// First accrual of the year starts from the rates, not the
			// default annual seed. Initialized employees count toward
			// Processed as well.
			if err := s.balanceRepo.InitWithRates(ctx, id, year); err != nil {
				return result, fmt.Errorf("init balance for employee %s: %w", id, err)
			}
			result.Initialized++
			result.Processed++
		case err != nil:
			return result, err
		default:
			if err := s.balanceRepo.Accrue(ctx, id, year); err != nil {
				return result, fmt.Errorf("accrue balance for employee %s: %w", id, err)
			}
			result.Processed++
		}
	}

	slog.Info("Leave accrual run finished",
		"period", period,
		"processed", result.Processed,
		"initialized", result.Initialized)

	return result, nil
}
