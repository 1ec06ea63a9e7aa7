package dto

import (
	"time"

	"github.com/mtendere/education-consult/internal/domain/application"
)

// ApplicationRequest is the payload submitted from the student dashboard.
type ApplicationRequest struct {
	UniversityID int            `json:"university_id" binding:"required"`
	ProgramID    int            `json:"program_id" binding:"required"`
	PersonalInfo map[string]any `json:"personal_info"`
	Documents    map[string]any `json:"documents"`
}

// ApplicationStatusRequest updates the review state of an application.
type ApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ApplicationResponse is the wire shape of an application.
type ApplicationResponse struct {
	ID           int            `json:"id"`
	UserID       string         `json:"user_id"`
	UniversityID int            `json:"university_id"`
	ProgramID    int            `json:"program_id"`
	Status       string         `json:"status"`
	PersonalInfo map[string]any `json:"personal_info,omitempty"`
	Documents    map[string]any `json:"documents,omitempty"`
	SubmittedAt  time.Time      `json:"submitted_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// ToApplicationResponse converts a domain application to the wire shape.
func ToApplicationResponse(a *application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		UniversityID: a.UniversityID,
		ProgramID:    a.ProgramID,
		Status:       string(a.Status),
		PersonalInfo: a.PersonalInfo,
		Documents:    a.Documents,
		SubmittedAt:  a.SubmittedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// ToApplicationListResponse converts a list of applications.
func ToApplicationListResponse(applications []application.Application) []ApplicationResponse {
	items := make([]ApplicationResponse, 0, len(applications))
	for i := range applications {
		items = append(items, ToApplicationResponse(&applications[i]))
	}
	return items
}
