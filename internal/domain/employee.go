package domain

import (
	"fmt"
	"strings"
)

// Role is the access role of a user account.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleHR       Role = "HR"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

// IsValid checks if the role is valid.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleManager, RoleEmployee:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// User is the login account attached to employees and audit entries.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Role      Role   `json:"role,omitempty"`
}

// FullName returns the user's display name, falling back to the email.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

// Department groups employees.
type Department struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	EmployeeCount int    `json:"employeeCount"`
	Manager       *User  `json:"manager,omitempty"`
	CreatedAt     Time   `json:"createdAt"`
}

// EmployeeStatus represents the employment status.
type EmployeeStatus string

const (
	EmployeeActive     EmployeeStatus = "ACTIVE"
	EmployeeInactive   EmployeeStatus = "INACTIVE"
	EmployeeOnLeave    EmployeeStatus = "ON_LEAVE"
	EmployeeTerminated EmployeeStatus = "TERMINATED"
)

// IsValid checks if the employee status is valid.
func (s EmployeeStatus) IsValid() bool {
	switch s {
	case EmployeeActive, EmployeeInactive, EmployeeOnLeave, EmployeeTerminated:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s EmployeeStatus) String() string {
	return string(s)
}

// ParseEmployeeStatus parses a string into an EmployeeStatus.
func ParseEmployeeStatus(s string) (EmployeeStatus, error) {
	es := EmployeeStatus(strings.ToUpper(s))
	if !es.IsValid() {
		return "", fmt.Errorf("invalid employee status: %s", s)
	}
	return es, nil
}

// Employee is one row of the employee directory.
type Employee struct {
	ID         string         `json:"id"`
	EmployeeNo string         `json:"employeeId,omitempty"`
	FirstName  string         `json:"firstName"`
	LastName   string         `json:"lastName"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone,omitempty"`
	Position   string         `json:"position"`
	Status     EmployeeStatus `json:"status"`
	HireDate   Time           `json:"hireDate"`
	Salary     float64        `json:"salary,omitempty"`
	Department *Department    `json:"department,omitempty"`
	User       *User          `json:"user,omitempty"`
}

// FullName returns "First Last".
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// DepartmentName returns the name of the employee's department; ok is
// false when the employee has none.
func (e *Employee) DepartmentName() (name string, ok bool) {
	if e.Department == nil {
		return "", false
	}
	return e.Department.Name, true
}
