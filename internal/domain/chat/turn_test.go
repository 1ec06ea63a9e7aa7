package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTurn(t *testing.T) {
	turn, err := NewTurn("session-1", "How do I apply?", "Start with the online form.", false, nil)

	require.NoError(t, err)
	assert.NotEmpty(t, turn.ID)
	assert.Equal(t, "session-1", turn.SessionID)
	assert.Equal(t, "How do I apply?", turn.Message)
	assert.Equal(t, "Start with the online form.", turn.Response)
	assert.False(t, turn.IsEscalated)
	assert.Nil(t, turn.UserID)
	assert.False(t, turn.CreatedAt.IsZero())
}

func TestNewTurnValidation(t *testing.T) {
	_, err := NewTurn("", "message", "response", false, nil)
	assert.ErrorIs(t, err, ErrEmptySessionID)

	_, err = NewTurn("session-1", "", "response", false, nil)
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = NewTurn("session-1", "message", "", false, nil)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestNewTurnKeepsUserID(t *testing.T) {
	userID := "user-42"
	turn, err := NewTurn("session-1", "message", "response", true, &userID)

	require.NoError(t, err)
	require.NotNil(t, turn.UserID)
	assert.Equal(t, "user-42", *turn.UserID)
	assert.True(t, turn.IsEscalated)
}
