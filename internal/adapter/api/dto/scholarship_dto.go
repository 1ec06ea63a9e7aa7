package dto

import (
	"time"

	"github.com/mtendere/education-consult/internal/domain/scholarship"
)

// ScholarshipRequest is the create/update payload for a scholarship.
type ScholarshipRequest struct {
	Name           string     `json:"name" binding:"required"`
	Provider       string     `json:"provider" binding:"required"`
	Amount         *float64   `json:"amount"`
	Currency       string     `json:"currency"`
	Type           *string    `json:"type"`
	Eligibility    *string    `json:"eligibility"`
	Deadline       *time.Time `json:"deadline"`
	Description    *string    `json:"description"`
	ApplicationURL *string    `json:"application_url"`
	IsActive       *bool      `json:"is_active"`
}

// ScholarshipResponse is the wire shape of a scholarship.
type ScholarshipResponse struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Provider       string     `json:"provider"`
	Amount         *float64   `json:"amount"`
	Currency       string     `json:"currency"`
	Type           *string    `json:"type"`
	Eligibility    *string    `json:"eligibility"`
	Deadline       *time.Time `json:"deadline"`
	Description    *string    `json:"description"`
	ApplicationURL *string    `json:"application_url"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ToScholarshipResponse converts a domain scholarship to the wire shape.
func ToScholarshipResponse(s *scholarship.Scholarship) ScholarshipResponse {
	var scholarshipType *string
	if s.Type != nil {
		t := string(*s.Type)
		scholarshipType = &t
	}

	return ScholarshipResponse{
		ID:             s.ID,
		Name:           s.Name,
		Provider:       s.Provider,
		Amount:         s.Amount,
		Currency:       s.Currency,
		Type:           scholarshipType,
		Eligibility:    s.Eligibility,
		Deadline:       s.Deadline,
		Description:    s.Description,
		ApplicationURL: s.ApplicationURL,
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// ToScholarshipListResponse converts a list of scholarships.
func ToScholarshipListResponse(scholarships []scholarship.Scholarship) []ScholarshipResponse {
	items := make([]ScholarshipResponse, 0, len(scholarships))
	for i := range scholarships {
		items = append(items, ToScholarshipResponse(&scholarships[i]))
	}
	return items
}

// Apply copies the request fields onto a scholarship.
func (r *ScholarshipRequest) Apply(s *scholarship.Scholarship) {
	s.Name = r.Name
	s.Provider = r.Provider
	s.Amount = r.Amount
	if r.Currency != "" {
		s.Currency = r.Currency
	}
	if r.Type != nil {
		t := scholarship.Type(*r.Type)
		s.Type = &t
	} else {
		s.Type = nil
	}
	s.Eligibility = r.Eligibility
	s.Deadline = r.Deadline
	s.Description = r.Description
	s.ApplicationURL = r.ApplicationURL
	if r.IsActive != nil {
		s.IsActive = *r.IsActive
	}
}
