package attendance

import (
	"time"
)

// Attendance holds one row per employee per local calendar day, enforced by
// a unique constraint. The row is written exactly twice: created at
// check-in (clock_out null) and finalized at check-out.
type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	ClockIn       time.Time
	ClockOut      *time.Time
	Status        string
	LateMinutes   int
	OvertimeHours float64
	CreatedAt     time.Time

	// Joined fields for admin listings
	FirstName *string
	LastName  *string
}

const StatusPresent = "PRESENT"
