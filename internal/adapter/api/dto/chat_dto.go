package dto

import (
	"time"

	"github.com/mtendere/education-consult/internal/domain/chat"
)

// ChatRequest is the payload of the public chat endpoint.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"sessionId" binding:"required"`
}

// ChatResponse mirrors the responder's reply plus the always-available
// human-contact channel.
type ChatResponse struct {
	Message          string   `json:"message"`
	ShouldEscalate   bool     `json:"shouldEscalate"`
	SuggestedActions []string `json:"suggestedActions,omitempty"`
	ContactURL       string   `json:"contactUrl"`
}

// ChatTurnResponse is one history entry.
type ChatTurnResponse struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	Message     string    `json:"message"`
	Response    string    `json:"response"`
	IsEscalated bool      `json:"is_escalated"`
	CreatedAt   time.Time `json:"created_at"`
}

// ChatHistoryResponse is the ordered conversation log of one session.
type ChatHistoryResponse struct {
	SessionID string             `json:"session_id"`
	Turns     []ChatTurnResponse `json:"turns"`
}

// ToChatHistoryResponse converts stored turns to the wire shape.
func ToChatHistoryResponse(sessionID string, turns []chat.Turn) ChatHistoryResponse {
	items := make([]ChatTurnResponse, 0, len(turns))
	for _, t := range turns {
		items = append(items, ChatTurnResponse{
			ID:          t.ID,
			SessionID:   t.SessionID,
			Message:     t.Message,
			Response:    t.Response,
			IsEscalated: t.IsEscalated,
			CreatedAt:   t.CreatedAt,
		})
	}

	return ChatHistoryResponse{
		SessionID: sessionID,
		Turns:     items,
	}
}

// RecommendationRequest is the payload of the recommendation endpoint.
type RecommendationRequest struct {
	Level    string `json:"level" binding:"required"`
	Field    string `json:"field" binding:"required"`
	Budget   string `json:"budget"`
	Location string `json:"location"`
}

// RecommendationResponse carries the advisory text.
type RecommendationResponse struct {
	Recommendations string `json:"recommendations"`
}
