package attendance

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/employee"
)

// Work day boundaries used for lateness and overtime.
const (
	workStartHour   = 9
	workStartMinute = 30
	fullDayHours    = 9.0
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository

	now func() time.Time
}

// NewAttendanceService wires the attendance service. loc is the business
// timezone; the 09:30 lateness boundary and calendar-day keys follow it
// rather than the server's local zone.
func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now: func() time.Time {
			return time.Now().In(loc)
		},
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	now := s.now()
	today := dateOnly(now)

	workStart := time.Date(now.Year(), now.Month(), now.Day(), workStartHour, workStartMinute, 0, 0, now.Location())
	lateMinutes := 0
	if now.After(workStart) {
		lateMinutes = int(now.Sub(workStart).Minutes())
	}

	record := attendance.Attendance{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		Date:        today,
		ClockIn:     now,
		Status:      attendance.StatusPresent,
		LateMinutes: lateMinutes,
	}

	created, err := s.attendanceRepo.InsertIfAbsent(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	now := s.now()
	today := dateOnly(now)

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNoCheckIn
		}
		return attendance.AttendanceResponse{}, err
	}

	elapsedHours := now.Sub(record.ClockIn).Hours()
	overtimeHours := math.Max(0, elapsedHours-fullDayHours)

	closed, err := s.attendanceRepo.CloseOut(ctx, record.ID, now, overtimeHours)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(closed), nil
}

// TodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayStatus(ctx context.Context, employeeID string) (attendance.TodayStatusResponse, error) {
	today := dateOnly(s.now())

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.TodayStatusResponse{Status: attendance.TodayNotCheckedIn}, nil
		}
		return attendance.TodayStatusResponse{}, err
	}

	resp := toAttendanceResponse(record)
	status := attendance.TodayCheckedIn
	if record.ClockOut != nil {
		status = attendance.TodayCheckedOut
	}

	return attendance.TodayStatusResponse{Status: status, Data: &resp}, nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toAttendanceResponses(records), nil
}

// MonthlyStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthlyStats(ctx context.Context, employeeID string) (attendance.MonthlyStatsResponse, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	presentDays, err := s.attendanceRepo.CountPresentSince(ctx, employeeID, monthStart)
	if err != nil {
		return attendance.MonthlyStatsResponse{}, err
	}

	workingDays := workingDaysElapsed(now)

	return attendance.MonthlyStatsResponse{
		PresentDays: presentDays,
		WorkingDays: workingDays,
		Percentage:  presencePercentage(presentDays, workingDays),
	}, nil
}

// TodayAll implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayAll(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByDate(ctx, dateOnly(s.now()))
	if err != nil {
		return nil, err
	}
	return toAttendanceResponses(records), nil
}

// MonthlyReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthlyReport(ctx context.Context) (attendance.MonthlyReportResponse, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	counts, err := s.attendanceRepo.CountPresentByEmployeeSince(ctx, monthStart)
	if err != nil {
		return attendance.MonthlyReportResponse{}, err
	}

	workingDays := workingDaysElapsed(now)

	stats := make(map[string]attendance.EmployeeMonthlyStat, len(counts))
	for employeeID, present := range counts {
		stats[employeeID] = attendance.EmployeeMonthlyStat{
			PresentDays: present,
			Percentage:  presencePercentage(present, workingDays),
		}
	}

	return attendance.MonthlyReportResponse{
		WorkingDays: workingDays,
		Stats:       stats,
	}, nil
}

// OverallStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) OverallStats(ctx context.Context) (attendance.OverallStatsResponse, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	ids, err := s.employeeRepo.ListIDs(ctx)
	if err != nil {
		return attendance.OverallStatsResponse{}, err
	}

	counts, err := s.attendanceRepo.CountPresentByEmployeeSince(ctx, monthStart)
	if err != nil {
		return attendance.OverallStatsResponse{}, err
	}

	workingDays := workingDaysElapsed(now)

	totalPresent := 0
	for _, present := range counts {
		totalPresent += present
	}

	average := 0.0
	if len(ids) > 0 && workingDays > 0 {
		average = math.Min(100, float64(totalPresent)/float64(len(ids)*workingDays)*100)
		average = math.Round(average*10) / 10
	}

	return attendance.OverallStatsResponse{
		TotalEmployees:    len(ids),
		WorkingDays:       workingDays,
		TotalPresent:      totalPresent,
		AveragePercentage: average,
	}, nil
}

// workingDaysElapsed counts non-Sunday days from the 1st of the month
// through today inclusive.
func workingDaysElapsed(now time.Time) int {
	workingDays := 0
	for day := 1; day <= now.Day(); day++ {
		date := time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location())
		if date.Weekday() != time.Sunday {
			workingDays++
		}
	}
	return workingDays
}

func presencePercentage(present, working int) float64 {
	if working == 0 {
		return 0
	}
	percentage := math.Min(100, float64(present)/float64(working)*100)
	return math.Round(percentage*10) / 10
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func toAttendanceResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:            att.ID,
		EmployeeID:    att.EmployeeID,
		Date:          att.Date.Format("2006-01-02"),
		ClockIn:       att.ClockIn.Format(time.RFC3339),
		Status:        att.Status,
		LateMinutes:   att.LateMinutes,
		OvertimeHours: att.OvertimeHours,
		FirstName:     att.FirstName,
		LastName:      att.LastName,
	}
	if att.ClockOut != nil {
		clockOut := att.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &clockOut
	}
	return resp
}

func toAttendanceResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, len(records))
	for i, att := range records {
		responses[i] = toAttendanceResponse(att)
	}
	return responses
}
