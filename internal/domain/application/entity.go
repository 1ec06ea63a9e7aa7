package application

import (
	"errors"
	"time"
)

var (
	ErrMissingUser       = errors.New("user id is required")
	ErrMissingUniversity = errors.New("university id is required")
	ErrMissingProgram    = errors.New("program id is required")
	ErrInvalidStatus     = errors.New("invalid application status")
)

// Status of an application in the review pipeline.
type Status string

const (
	StatusPending     Status = "pending"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
)

// ValidStatus reports whether s is one of the known pipeline states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Application is a student's submission for a program at a university.
// PersonalInfo and Documents carry the submitted form data as free-form JSON,
// matching what the dashboard collects.
type Application struct {
	ID           int            `json:"id"`
	UserID       string         `json:"user_id"`
	UniversityID int            `json:"university_id"`
	ProgramID    int            `json:"program_id"`
	Status       Status         `json:"status"`
	PersonalInfo map[string]any `json:"personal_info"`
	Documents    map[string]any `json:"documents"`
	SubmittedAt  time.Time      `json:"submitted_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// NewApplication validates required references and starts the pipeline at
// pending.
func NewApplication(userID string, universityID, programID int) (*Application, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	if universityID <= 0 {
		return nil, ErrMissingUniversity
	}
	if programID <= 0 {
		return nil, ErrMissingProgram
	}

	now := time.Now().UTC()
	return &Application{
		UserID:       userID,
		UniversityID: universityID,
		ProgramID:    programID,
		Status:       StatusPending,
		SubmittedAt:  now,
		UpdatedAt:    now,
	}, nil
}

// UpdateStatus moves the application to a new pipeline state.
func (a *Application) UpdateStatus(status Status) error {
	if !ValidStatus(status) {
		return ErrInvalidStatus
	}
	a.Status = status
	a.UpdatedAt = time.Now().UTC()
	return nil
}
