package domain

import (
	"fmt"
	"strings"
)

// AttendanceStatus represents the outcome of one attendance day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLate    AttendanceStatus = "LATE"
	AttendanceHalfDay AttendanceStatus = "HALF_DAY"
	AttendanceOnLeave AttendanceStatus = "ON_LEAVE"
)

// IsValid checks if the attendance status is valid.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceHalfDay, AttendanceOnLeave:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s AttendanceStatus) String() string {
	return string(s)
}

// ParseAttendanceStatus parses a string into an AttendanceStatus.
func ParseAttendanceStatus(s string) (AttendanceStatus, error) {
	as := AttendanceStatus(strings.ToUpper(s))
	if !as.IsValid() {
		return "", fmt.Errorf("invalid attendance status: %s", s)
	}
	return as, nil
}

// AttendanceRecord is one employee's check-in/check-out for a day.
type AttendanceRecord struct {
	ID          string           `json:"id"`
	Employee    *Employee        `json:"employee,omitempty"`
	Date        Time             `json:"date"`
	CheckIn     *Time            `json:"checkIn,omitempty"`
	CheckOut    *Time            `json:"checkOut,omitempty"`
	Status      AttendanceStatus `json:"status"`
	HoursWorked float64          `json:"hoursWorked"`
	Method      string           `json:"method,omitempty"`
}
