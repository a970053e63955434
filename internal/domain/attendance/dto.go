package attendance

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	ClockIn       string  `json:"clock_in"`
	ClockOut      *string `json:"clock_out,omitempty"`
	Status        string  `json:"status"`
	LateMinutes   int     `json:"late_minutes"`
	OvertimeHours float64 `json:"overtime_hours"`
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
}

// TodayStatus tells the dashboard which action button to show.
type TodayStatusResponse struct {
	Status string              `json:"status"` // NOT_CHECKED_IN, CHECKED_IN, CHECKED_OUT
	Data   *AttendanceResponse `json:"data,omitempty"`
}

const (
	TodayNotCheckedIn = "NOT_CHECKED_IN"
	TodayCheckedIn    = "CHECKED_IN"
	TodayCheckedOut   = "CHECKED_OUT"
)

type MonthlyStatsResponse struct {
	PresentDays int     `json:"presentDays"`
	WorkingDays int     `json:"workingDays"`
	Percentage  float64 `json:"percentage"`
}

// EmployeeMonthlyStat is one row of the admin monthly report.
type EmployeeMonthlyStat struct {
	PresentDays int     `json:"presentDays"`
	Percentage  float64 `json:"percentage"`
}

type MonthlyReportResponse struct {
	WorkingDays int                            `json:"workingDays"`
	Stats       map[string]EmployeeMonthlyStat `json:"stats"`
}

type OverallStatsResponse struct {
	TotalEmployees    int     `json:"totalEmployees"`
	WorkingDays       int     `json:"workingDays"`
	TotalPresent      int     `json:"totalPresent"`
	AveragePercentage float64 `json:"averagePercentage"`
}
