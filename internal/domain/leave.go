package domain

import (
	"fmt"
	"strings"
	"time"
)

// LeaveStatus represents the approval state of a leave request.
type LeaveStatus string

const (
	LeavePending   LeaveStatus = "PENDING"
	LeaveApproved  LeaveStatus = "APPROVED"
	LeaveRejected  LeaveStatus = "REJECTED"
	LeaveCancelled LeaveStatus = "CANCELLED"
)

// IsValid checks if the leave status is valid.
func (s LeaveStatus) IsValid() bool {
	switch s {
	case LeavePending, LeaveApproved, LeaveRejected, LeaveCancelled:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s LeaveStatus) String() string {
	return string(s)
}

// ParseLeaveStatus parses a string into a LeaveStatus.
func ParseLeaveStatus(s string) (LeaveStatus, error) {
	ls := LeaveStatus(strings.ToUpper(s))
	if !ls.IsValid() {
		return "", fmt.Errorf("invalid leave status: %s", s)
	}
	return ls, nil
}

// LeaveType is the category of a leave request.
type LeaveType string

const (
	LeaveAnnual    LeaveType = "ANNUAL"
	LeaveSick      LeaveType = "SICK"
	LeavePersonal  LeaveType = "PERSONAL"
	LeaveMaternity LeaveType = "MATERNITY"
	LeavePaternity LeaveType = "PATERNITY"
	LeaveUnpaid    LeaveType = "UNPAID"
)

// IsValid checks if the leave type is valid.
func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveAnnual, LeaveSick, LeavePersonal, LeaveMaternity, LeavePaternity, LeaveUnpaid:
		return true
	default:
		return false
	}
}

// String returns the string representation of the leave type.
func (t LeaveType) String() string {
	return string(t)
}

// ParseLeaveType parses a string into a LeaveType.
func ParseLeaveType(s string) (LeaveType, error) {
	lt := LeaveType(strings.ToUpper(s))
	if !lt.IsValid() {
		return "", fmt.Errorf("invalid leave type: %s", s)
	}
	return lt, nil
}

// LeaveRequest is a request for time off.
type LeaveRequest struct {
	ID        string      `json:"id"`
	Employee  *Employee   `json:"employee,omitempty"`
	LeaveType LeaveType   `json:"leaveType"`
	Status    LeaveStatus `json:"status"`
	StartDate Time        `json:"startDate"`
	EndDate   Time        `json:"endDate"`
	Reason    string      `json:"reason,omitempty"`
	Approver  *User       `json:"approvedBy,omitempty"`
	CreatedAt Time        `json:"createdAt"`
}

// Days returns the inclusive number of calendar days covered by the request.
// A request whose end precedes its start covers zero days.
func (r *LeaveRequest) Days() int {
	start := truncateDay(r.StartDate.Time)
	end := truncateDay(r.EndDate.Time)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
