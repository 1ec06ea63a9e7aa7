package dto

import (
	"time"

	"github.com/mtendere/education-consult/internal/domain/university"
)

// UniversityRequest is the create/update payload for a university.
type UniversityRequest struct {
	Name         string  `json:"name" binding:"required"`
	Location     string  `json:"location" binding:"required"`
	Country      string  `json:"country" binding:"required"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url"`
	Ranking      *int    `json:"ranking"`
	Website      *string `json:"website"`
	Established  *int    `json:"established"`
	StudentCount *int    `json:"student_count"`
	IsActive     *bool   `json:"is_active"`
}

// UniversityResponse is the wire shape of a university.
type UniversityResponse struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	Country      string    `json:"country"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"image_url"`
	Ranking      *int      `json:"ranking"`
	Website      *string   `json:"website"`
	Established  *int      `json:"established"`
	StudentCount *int      `json:"student_count"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToUniversityResponse converts a domain university to the wire shape.
func ToUniversityResponse(u *university.University) UniversityResponse {
	return UniversityResponse{
		ID:           u.ID,
		Name:         u.Name,
		Location:     u.Location,
		Country:      u.Country,
		Description:  u.Description,
		ImageURL:     u.ImageURL,
		Ranking:      u.Ranking,
		Website:      u.Website,
		Established:  u.Established,
		StudentCount: u.StudentCount,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// ToUniversityListResponse converts a list of universities.
func ToUniversityListResponse(universities []university.University) []UniversityResponse {
	items := make([]UniversityResponse, 0, len(universities))
	for i := range universities {
		items = append(items, ToUniversityResponse(&universities[i]))
	}
	return items
}

// Apply copies the request fields onto a university.
func (r *UniversityRequest) Apply(u *university.University) {
	u.Name = r.Name
	u.Location = r.Location
	u.Country = r.Country
	u.Description = r.Description
	u.ImageURL = r.ImageURL
	u.Ranking = r.Ranking
	u.Website = r.Website
	u.Established = r.Established
	u.StudentCount = r.StudentCount
	if r.IsActive != nil {
		u.IsActive = *r.IsActive
	}
}
