package domain

import (
	"fmt"
	"strings"
)

// AuditAction is the kind of change recorded in an audit entry.
type AuditAction string

const (
	AuditCreate  AuditAction = "CREATE"
	AuditUpdate  AuditAction = "UPDATE"
	AuditDelete  AuditAction = "DELETE"
	AuditLogin   AuditAction = "LOGIN"
	AuditLogout  AuditAction = "LOGOUT"
	AuditApprove AuditAction = "APPROVE"
	AuditReject  AuditAction = "REJECT"
)

// IsValid checks if the audit action is valid.
func (a AuditAction) IsValid() bool {
	switch a {
	case AuditCreate, AuditUpdate, AuditDelete, AuditLogin, AuditLogout, AuditApprove, AuditReject:
		return true
	default:
		return false
	}
}

// String returns the string representation of the action.
func (a AuditAction) String() string {
	return string(a)
}

// AuditLog is one entry of the audit trail.
type AuditLog struct {
	ID         string      `json:"id"`
	Action     AuditAction `json:"action"`
	EntityType string      `json:"entityType"`
	EntityID   string      `json:"entityId,omitempty"`
	User       *User       `json:"user,omitempty"`
	Details    string      `json:"details,omitempty"`
	IPAddress  string      `json:"ipAddress,omitempty"`
	Timestamp  Time        `json:"timestamp"`
}

// NotificationType represents the severity or topic of a notification.
type NotificationType string

const (
	NotificationInfo    NotificationType = "INFO"
	NotificationSuccess NotificationType = "SUCCESS"
	NotificationWarning NotificationType = "WARNING"
	NotificationError   NotificationType = "ERROR"
)

// IsValid checks if the notification type is valid.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationInfo, NotificationSuccess, NotificationWarning, NotificationError:
		return true
	default:
		return false
	}
}

// String returns the string representation of the type.
func (t NotificationType) String() string {
	return string(t)
}

// ParseNotificationType parses a string into a NotificationType.
func ParseNotificationType(s string) (NotificationType, error) {
	nt := NotificationType(strings.ToUpper(s))
	if !nt.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return nt, nil
}

// Notification is an in-app message for the signed-in user.
type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"isRead"`
	Link      string           `json:"link,omitempty"`
	CreatedAt Time             `json:"createdAt"`
}
