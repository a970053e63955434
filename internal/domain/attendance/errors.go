package attendance

import "errors"

var (
	ErrAlreadyCheckedIn   = errors.New("already checked in for today")
	ErrNoCheckIn          = errors.New("no check-in record found for today")
	ErrAlreadyCheckedOut  = errors.New("already checked out for today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
