package dto

import (
	"time"

	"github.com/mtendere/education-consult/internal/domain/inquiry"
)

// InquiryRequest is the public contact form payload.
type InquiryRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone"`
	Subject *string `json:"subject"`
	Message string  `json:"message" binding:"required"`
}

// InquiryResponse is the wire shape of an inquiry.
type InquiryResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Subject   *string   `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToInquiryResponse converts a domain inquiry to the wire shape.
func ToInquiryResponse(i *inquiry.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:        i.ID,
		Name:      i.Name,
		Email:     i.Email,
		Phone:     i.Phone,
		Subject:   i.Subject,
		Message:   i.Message,
		Status:    string(i.Status),
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// ToInquiryListResponse converts a list of inquiries.
func ToInquiryListResponse(inquiries []inquiry.Inquiry) []InquiryResponse {
	items := make([]InquiryResponse, 0, len(inquiries))
	for i := range inquiries {
		items = append(items, ToInquiryResponse(&inquiries[i]))
	}
	return items
}
