package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/employee"
)

// fakeAttendanceRepo stores one record per (employee, date), mirroring the
// unique constraint on the table.
type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + ":" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) InsertIfAbsent(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	key := recordKey(att.EmployeeID, att.Date)
	if _, ok := f.records[key]; ok {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	stored := att
	f.records[key] = &stored
	return stored, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	if rec, ok := f.records[recordKey(employeeID, date)]; ok {
		return *rec, nil
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) CloseOut(ctx context.Context, id string, clockOut time.Time, overtimeHours float64) (attendance.Attendance, error) {
	for _, rec := range f.records {
		if rec.ID != id {
			continue
		}
		if rec.ClockOut != nil {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
		}
		out := clockOut
		rec.ClockOut = &out
		rec.OvertimeHours = overtimeHours
		return *rec, nil
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(from) && !rec.Date.After(to) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.Date.Equal(date) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) CountPresentSince(ctx context.Context, employeeID string, since time.Time) (int, error) {
	count := 0
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.Status == attendance.StatusPresent && !rec.Date.Before(since) {
			count++
		}
	}
	return count, nil
}

func (f *fakeAttendanceRepo) CountPresentByEmployeeSince(ctx context.Context, since time.Time) (map[string]int, error) {
	counts := make(map[string]int)
	for _, rec := range f.records {
		if rec.Status == attendance.StatusPresent && !rec.Date.Before(since) {
			counts[rec.EmployeeID]++
		}
	}
	return counts, nil
}

type fakeEmployeeIDsRepo struct {
	employee.EmployeeRepository
	ids []string
}

func (f *fakeEmployeeIDsRepo) ListIDs(ctx context.Context) ([]string, error) {
	return f.ids, nil
}

func newTestAttendanceService(repo attendance.AttendanceRepository, ids []string, now time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: repo,
		employeeRepo:   &fakeEmployeeIDsRepo{ids: ids},
		now:            func() time.Time { return now },
	}
}

func TestNewAttendanceService_ClockFollowsConfiguredZone(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)

	svc := NewAttendanceService(newFakeAttendanceRepo(), &fakeEmployeeIDsRepo{}, loc).(*AttendanceServiceImpl)

	assert.Equal(t, loc, svc.now().Location())
}

func TestCheckIn_OnTimeHasNoLateMinutes(t *testing.T) {
	repo := newFakeAttendanceRepo()
	now := time.Date(2025, 6, 10, 9, 15, 0, 0, time.UTC)
	svc := newTestAttendanceService(repo, nil, now)

	resp, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Zero(t, resp.LateMinutes)
	assert.Equal(t, "2025-06-10", resp.Date)
}

func TestCheckIn_LateMinutesCountFromHalfPastNine(t *testing.T) {
	repo := newFakeAttendanceRepo()
	now := time.Date(2025, 6, 10, 10, 12, 0, 0, time.UTC)
	svc := newTestAttendanceService(repo, nil, now)

	resp, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, 42, resp.LateMinutes)
}

func TestCheckIn_TwiceSameDayFails(t *testing.T) {
	repo := newFakeAttendanceRepo()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestAttendanceService(repo, nil, now)

	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckOut_WithoutCheckInFails(t *testing.T) {
	repo := newFakeAttendanceRepo()
	now := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)
	svc := newTestAttendanceService(repo, nil, now)

	_, err := svc.CheckOut(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrNoCheckIn)
}

func TestCheckOut_OvertimeBeyondNineHours(t *testing.T) {
	repo := newFakeAttendanceRepo()
	checkInAt := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	svc := newTestAttendanceService(repo, nil, checkInAt)
	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	svc.now = func() time.Time { return checkInAt.Add(11 * time.Hour) }
	resp, err := svc.CheckOut(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.InDelta(t, 2.0, resp.OvertimeHours, 1e-9)
	require.NotNil(t, resp.ClockOut)
}

func TestCheckOut_ShortDayHasZeroOvertime(t *testing.T) {
	repo := newFakeAttendanceRepo()
	checkInAt := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	svc := newTestAttendanceService(repo, nil, checkInAt)
	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	svc.now = func() time.Time { return checkInAt.Add(6 * time.Hour) }
	resp, err := svc.CheckOut(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Zero(t, resp.OvertimeHours)
}

func TestCheckOut_TwiceSameDayFails(t *testing.T) {
	repo := newFakeAttendanceRepo()
	checkInAt := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	svc := newTestAttendanceService(repo, nil, checkInAt)
	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	svc.now = func() time.Time { return checkInAt.Add(9 * time.Hour) }
	_, err = svc.CheckOut(context.Background(), "emp-1")
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestTodayStatus_Transitions(t *testing.T) {
	repo := newFakeAttendanceRepo()
	checkInAt := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestAttendanceService(repo, nil, checkInAt)

	status, err := svc.TodayStatus(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.TodayNotCheckedIn, status.Status)
	assert.Nil(t, status.Data)

	_, err = svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	status, err = svc.TodayStatus(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.TodayCheckedIn, status.Status)
	require.NotNil(t, status.Data)

	svc.now = func() time.Time { return checkInAt.Add(9 * time.Hour) }
	_, err = svc.CheckOut(context.Background(), "emp-1")
	require.NoError(t, err)

	status, err = svc.TodayStatus(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.TodayCheckedOut, status.Status)
}

func TestWorkingDaysElapsed_SkipsSundays(t *testing.T) {
	// June 2025: the 1st, 8th and 15th are Sundays.
	now := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 13, workingDaysElapsed(now))

	// The 1st alone, a Sunday, counts for nothing.
	firstSunday := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, workingDaysElapsed(firstSunday))
}

func TestPresencePercentage(t *testing.T) {
	assert.Equal(t, 0.0, presencePercentage(3, 0))
	assert.Equal(t, 50.0, presencePercentage(1, 2))
	assert.Equal(t, 33.3, presencePercentage(1, 3))
	assert.Equal(t, 100.0, presencePercentage(25, 20))
}

func TestMonthlyStats(t *testing.T) {
	repo := newFakeAttendanceRepo()
	// Present on the 2nd through 5th.
	for day := 2; day <= 5; day++ {
		at := time.Date(2025, 6, day, 9, 0, 0, 0, time.UTC)
		svc := newTestAttendanceService(repo, nil, at)
		_, err := svc.CheckIn(context.Background(), "emp-1")
		require.NoError(t, err)
	}

	now := time.Date(2025, 6, 6, 12, 0, 0, 0, time.UTC)
	svc := newTestAttendanceService(repo, nil, now)

	stats, err := svc.MonthlyStats(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, 4, stats.PresentDays)
	assert.Equal(t, 5, stats.WorkingDays)
	assert.Equal(t, 80.0, stats.Percentage)
}

func TestOverallStats(t *testing.T) {
	repo := newFakeAttendanceRepo()
	for _, id := range []string{"emp-1", "emp-2"} {
		at := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
		svc := newTestAttendanceService(repo, nil, at)
		_, err := svc.CheckIn(context.Background(), id)
		require.NoError(t, err)
	}

	now := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)
	svc := newTestAttendanceService(repo, []string{"emp-1", "emp-2"}, now)

	stats, err := svc.OverallStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalEmployees)
	assert.Equal(t, 2, stats.WorkingDays)
	assert.Equal(t, 2, stats.TotalPresent)
	assert.Equal(t, 50.0, stats.AveragePercentage)
}
