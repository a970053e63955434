package attendance

import (
	"context"
)

// AttendanceService defines business logic for daily attendance tracking.
type AttendanceService interface {
	// CheckIn opens the day's record, computing lateness against the
	// 09:30 work start.
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// CheckOut closes the day's record, computing overtime past a
	// nine-hour day.
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)

	TodayStatus(ctx context.Context, employeeID string) (TodayStatusResponse, error)
	History(ctx context.Context, employeeID string) ([]AttendanceResponse, error)

	// MonthlyStats reports presence percentage over non-Sunday days
	// elapsed in the current month.
	MonthlyStats(ctx context.Context, employeeID string) (MonthlyStatsResponse, error)

	// Admin views
	TodayAll(ctx context.Context) ([]AttendanceResponse, error)
	MonthlyReport(ctx context.Context) (MonthlyReportResponse, error)
	OverallStats(ctx context.Context) (OverallStatsResponse, error)
}
