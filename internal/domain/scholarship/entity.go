package scholarship

import (
	"errors"
	"time"
)

var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrEmptyProvider = errors.New("provider cannot be empty")
)

// Type classifies how a scholarship is funded and awarded.
type Type string

const (
	TypeFull      Type = "full"
	TypePartial   Type = "partial"
	TypeMeritBase Type = "merit-based"
	TypeNeedBase  Type = "need-based"
)

// Scholarship is a funding opportunity listed on the site.
type Scholarship struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Provider       string     `json:"provider"`
	Amount         *float64   `json:"amount"`
	Currency       string     `json:"currency"`
	Type           *Type      `json:"type"`
	Eligibility    *string    `json:"eligibility"`
	Deadline       *time.Time `json:"deadline"`
	Description    *string    `json:"description"`
	ApplicationURL *string    `json:"application_url"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewScholarship validates required fields and applies defaults.
func NewScholarship(name, provider string) (*Scholarship, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if provider == "" {
		return nil, ErrEmptyProvider
	}

	now := time.Now().UTC()
	return &Scholarship{
		Name:      name,
		Provider:  provider,
		Currency:  "USD",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
