package dto

import (
	"time"

	"github.com/mtendere/education-consult/internal/domain/user"
)

// LoginRequest is the credential payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest creates a student account.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
}

// LoginResponse carries the issued token and the authenticated identity.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the wire shape of a user, without credentials.
type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	ProfileImageURL *string   `json:"profile_image_url"`
	Role            string    `json:"role"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToUserResponse converts a domain user to the wire shape.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
		Role:            string(u.Role),
		CreatedAt:       u.CreatedAt,
	}
}

// DashboardStatsResponse aggregates the admin dashboard counters.
type DashboardStatsResponse struct {
	TotalApplications   int `json:"totalApplications"`
	ActiveStudents      int `json:"activeStudents"`
	PartnerUniversities int `json:"partnerUniversities"`
	TotalInquiries      int `json:"totalInquiries"`
}
