package inquiry

import (
	"errors"
	"time"
)

var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrEmptyEmail   = errors.New("email cannot be empty")
	ErrEmptyMessage = errors.New("message cannot be empty")
)

// Status of a contact inquiry.
type Status string

const (
	StatusNew       Status = "new"
	StatusResponded Status = "responded"
	StatusClosed    Status = "closed"
)

// Inquiry is a message sent through the public contact form.
type Inquiry struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Subject   *string   `json:"subject"`
	Message   string    `json:"message"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewInquiry validates the contact form fields.
func NewInquiry(name, email, message string) (*Inquiry, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if message == "" {
		return nil, ErrEmptyMessage
	}

	now := time.Now().UTC()
	return &Inquiry{
		Name:      name,
		Email:     email,
		Message:   message,
		Status:    StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
