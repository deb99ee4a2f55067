package domain

import (
	"fmt"
	"strings"
)

// JobStatus represents the publication state of a job posting.
type JobStatus string

const (
	JobDraft  JobStatus = "DRAFT"
	JobOpen   JobStatus = "OPEN"
	JobClosed JobStatus = "CLOSED"
)

// IsValid checks if the job status is valid.
func (s JobStatus) IsValid() bool {
	switch s {
	case JobDraft, JobOpen, JobClosed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s JobStatus) String() string {
	return string(s)
}

// ParseJobStatus parses a string into a JobStatus.
func ParseJobStatus(s string) (JobStatus, error) {
	js := JobStatus(strings.ToUpper(s))
	if !js.IsValid() {
		return "", fmt.Errorf("invalid job status: %s", s)
	}
	return js, nil
}

// JobPosting is an open (or past) position in recruitment.
type JobPosting struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description,omitempty"`
	Department     *Department `json:"department,omitempty"`
	Location       string      `json:"location,omitempty"`
	EmploymentType string      `json:"employmentType,omitempty"`
	Status         JobStatus   `json:"status"`
	PostedAt       Time        `json:"postedAt"`
	Deadline       *Time       `json:"deadline,omitempty"`
	ApplicantCount int         `json:"applicantCount"`
}

// OnboardingStatus represents the progress state of an onboarding process.
type OnboardingStatus string

const (
	OnboardingNotStarted OnboardingStatus = "NOT_STARTED"
	OnboardingInProgress OnboardingStatus = "IN_PROGRESS"
	OnboardingCompleted  OnboardingStatus = "COMPLETED"
)

// IsValid checks if the onboarding status is valid.
func (s OnboardingStatus) IsValid() bool {
	switch s {
	case OnboardingNotStarted, OnboardingInProgress, OnboardingCompleted:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s OnboardingStatus) String() string {
	return string(s)
}

// OnboardingProcess tracks a new hire's onboarding checklist.
type OnboardingProcess struct {
	ID             string           `json:"id"`
	Employee       *Employee        `json:"employee,omitempty"`
	Status         OnboardingStatus `json:"status"`
	StartDate      Time             `json:"startDate"`
	DueDate        *Time            `json:"dueDate,omitempty"`
	TasksCompleted int              `json:"completedTasks"`
	TotalTasks     int              `json:"totalTasks"`
}

// Progress returns the completion percentage in [0, 100].
func (p *OnboardingProcess) Progress() float64 {
	if p.TotalTasks <= 0 {
		return 0
	}
	pct := float64(p.TasksCompleted) / float64(p.TotalTasks) * 100
	if pct > 100 {
		return 100
	}
	return pct
}
