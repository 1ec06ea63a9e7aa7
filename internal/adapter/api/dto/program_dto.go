package dto

import (
	"time"

	"github.com/mtendere/education-consult/internal/domain/program"
)

// ProgramRequest is the create/update payload for a program.
type ProgramRequest struct {
	UniversityID int      `json:"university_id" binding:"required"`
	Name         string   `json:"name" binding:"required"`
	Level        string   `json:"level" binding:"required"`
	Field        string   `json:"field" binding:"required"`
	Duration     *string  `json:"duration"`
	TuitionFee   *float64 `json:"tuition_fee"`
	Currency     string   `json:"currency"`
	Requirements *string  `json:"requirements"`
	Description  *string  `json:"description"`
	IsActive     *bool    `json:"is_active"`
}

// ProgramResponse is the wire shape of a program.
type ProgramResponse struct {
	ID           int       `json:"id"`
	UniversityID int       `json:"university_id"`
	Name         string    `json:"name"`
	Level        string    `json:"level"`
	Field        string    `json:"field"`
	Duration     *string   `json:"duration"`
	TuitionFee   *float64  `json:"tuition_fee"`
	Currency     string    `json:"currency"`
	Requirements *string   `json:"requirements"`
	Description  *string   `json:"description"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToProgramResponse converts a domain program to the wire shape.
func ToProgramResponse(p *program.Program) ProgramResponse {
	return ProgramResponse{
		ID:           p.ID,
		UniversityID: p.UniversityID,
		Name:         p.Name,
		Level:        string(p.Level),
		Field:        p.Field,
		Duration:     p.Duration,
		TuitionFee:   p.TuitionFee,
		Currency:     p.Currency,
		Requirements: p.Requirements,
		Description:  p.Description,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToProgramListResponse converts a list of programs.
func ToProgramListResponse(programs []program.Program) []ProgramResponse {
	items := make([]ProgramResponse, 0, len(programs))
	for i := range programs {
		items = append(items, ToProgramResponse(&programs[i]))
	}
	return items
}

// Apply copies the request fields onto a program.
func (r *ProgramRequest) Apply(p *program.Program) {
	p.UniversityID = r.UniversityID
	p.Name = r.Name
	p.Level = program.Level(r.Level)
	p.Field = r.Field
	p.Duration = r.Duration
	p.TuitionFee = r.TuitionFee
	if r.Currency != "" {
		p.Currency = r.Currency
	}
	p.Requirements = r.Requirements
	p.Description = r.Description
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
}
