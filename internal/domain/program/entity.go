package program

import (
	"errors"
	"time"
)

var (
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrEmptyLevel        = errors.New("level cannot be empty")
	ErrEmptyField        = errors.New("field cannot be empty")
	ErrMissingUniversity = errors.New("university id is required")
)

// Level of study offered by a program.
type Level string

const (
	LevelDiploma  Level = "diploma"
	LevelBachelor Level = "bachelor"
	LevelMaster   Level = "master"
	LevelPhD      Level = "phd"
)

// Program is a course of study offered by a partner university.
type Program struct {
	ID           int       `json:"id"`
	UniversityID int       `json:"university_id"`
	Name         string    `json:"name"`
	Level        Level     `json:"level"`
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

// NewProgram validates required fields and applies defaults.
func NewProgram(universityID int, name string, level Level, field string) (*Program, error) {
	if universityID <= 0 {
		return nil, ErrMissingUniversity
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if level == "" {
		return nil, ErrEmptyLevel
	}
	if field == "" {
		return nil, ErrEmptyField
	}

	now := time.Now().UTC()
	return &Program{
		UniversityID: universityID,
		Name:         name,
		Level:        level,
		Field:        field,
		Currency:     "USD",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
