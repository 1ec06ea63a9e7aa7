package university

import (
	"errors"
	"time"
)

var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrEmptyCountry = errors.New("country cannot be empty")
)

// University is a partner institution shown in the public catalog.
type University struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Location     string     `json:"location"`
	Country      string     `json:"country"`
	Description  *string    `json:"description"`
	ImageURL     *string    `json:"image_url"`
	Ranking      *int       `json:"ranking"`
	Website      *string    `json:"website"`
	Established  *int       `json:"established"`
	StudentCount *int       `json:"student_count"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewUniversity validates the required fields and builds a university with
// defaults applied. The ID is assigned by the repository on insert.
func NewUniversity(name, location, country string) (*University, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if country == "" {
		return nil, ErrEmptyCountry
	}

	now := time.Now().UTC()
	return &University{
		Name:      name,
		Location:  location,
		Country:   country,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
