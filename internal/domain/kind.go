// Package domain provides the domain layer for HR list views.
// It contains the entities returned by the HR backend and their value objects.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a collection kind is not recognized.
var ErrUnknownKind = errors.New("unknown collection kind")

// Kind identifies one HR collection (one list page).
type Kind string

const (
	KindEmployees     Kind = "employees"
	KindDepartments   Kind = "departments"
	KindAttendance    Kind = "attendance"
	KindLeaveRequests Kind = "leave-requests"
	KindJobPostings   Kind = "job-postings"
	KindOnboarding    Kind = "onboarding"
	KindAuditLogs     Kind = "audit-logs"
	KindNotifications Kind = "notifications"
)

// AllKinds lists every collection in display order.
var AllKinds = []Kind{
	KindEmployees,
	KindDepartments,
	KindAttendance,
	KindLeaveRequests,
	KindJobPostings,
	KindOnboarding,
	KindAuditLogs,
	KindNotifications,
}

// IsValid checks if the kind is known.
func (k Kind) IsValid() bool {
	switch k {
	case KindEmployees, KindDepartments, KindAttendance, KindLeaveRequests,
		KindJobPostings, KindOnboarding, KindAuditLogs, KindNotifications:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// kindAliases maps accepted spellings to canonical kinds.
var kindAliases = map[string]Kind{
	"employee":        KindEmployees,
	"department":      KindDepartments,
	"leave":           KindLeaveRequests,
	"leaves":          KindLeaveRequests,
	"leave-request":   KindLeaveRequests,
	"leave_requests":  KindLeaveRequests,
	"job-posting":     KindJobPostings,
	"job_postings":    KindJobPostings,
	"jobs":            KindJobPostings,
	"audit":           KindAuditLogs,
	"audit-log":       KindAuditLogs,
	"audit_logs":      KindAuditLogs,
	"notification":    KindNotifications,
	"onboarding-list": KindOnboarding,
}

// ParseKind parses a string into a Kind. Common singular and snake_case
// spellings are accepted.
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	k := Kind(normalized)
	if k.IsValid() {
		return k, nil
	}
	if alias, ok := kindAliases[normalized]; ok {
		return alias, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKind, s)
}
