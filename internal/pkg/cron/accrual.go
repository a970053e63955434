package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/leave"
)

type LeaveJobs struct {
	accrualSvc leave.AccrualService
}

func NewLeaveJobs(accrualSvc leave.AccrualService) *LeaveJobs {
	return &LeaveJobs{accrualSvc: accrualSvc}
}

func (j *LeaveJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("monthly_leave_accrual", 24*time.Hour, j.RunMonthlyAccrual)
}

// RunMonthlyAccrual credits monthly leave on the first day of the month.
// The accrual service keeps a per-period marker, so extra invocations
// within the same month are no-ops.
func (j *LeaveJobs) RunMonthlyAccrual(ctx context.Context) error {
	if time.Now().Day() != 1 {
		return nil
	}

	slog.Info("Cron: Starting monthly leave accrual job")

	result, err := j.accrualSvc.Accrue(ctx)
	if err != nil {
		return err
	}

	if result.AlreadyRun {
		slog.Info("Cron: Leave accrual already ran for period", "period", result.Period)
		return nil
	}

	slog.Info("Cron: Leave accrual completed",
		"period", result.Period,
		"processed", result.Processed,
		"initialized", result.Initialized)
	return nil
}
