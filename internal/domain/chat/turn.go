package chat

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptySessionID = errors.New("session id cannot be empty")
	ErrEmptyMessage   = errors.New("message cannot be empty")
	ErrEmptyResponse  = errors.New("response cannot be empty")
)

// Turn is one persisted request/response pair in the conversation log.
// Turns are written exactly once and never updated or deleted.
type Turn struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	UserID      *string   `json:"user_id"`
	Message     string    `json:"message"`
	Response    string    `json:"response"`
	IsEscalated bool      `json:"is_escalated"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTurn creates a completed conversation turn ready to be appended.
func NewTurn(sessionID, message, response string, isEscalated bool, userID *string) (*Turn, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if response == "" {
		return nil, ErrEmptyResponse
	}

	return &Turn{
		ID:          uuid.New().String(),
		SessionID:   sessionID,
		UserID:      userID,
		Message:     message,
		Response:    response,
		IsEscalated: isEscalated,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
