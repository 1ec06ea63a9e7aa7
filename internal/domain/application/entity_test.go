package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplication(t *testing.T) {
	a, err := NewApplication("user-1", 3, 7)

	require.NoError(t, err)
	assert.Equal(t, "user-1", a.UserID)
	assert.Equal(t, 3, a.UniversityID)
	assert.Equal(t, 7, a.ProgramID)
	assert.Equal(t, StatusPending, a.Status)
}

func TestNewApplicationValidation(t *testing.T) {
	_, err := NewApplication("", 3, 7)
	assert.Error(t, err)

	_, err = NewApplication("user-1", 0, 7)
	assert.Error(t, err)

	_, err = NewApplication("user-1", 3, 0)
	assert.Error(t, err)
}

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusUnderReview, StatusApproved, StatusRejected} {
		assert.True(t, ValidStatus(s), string(s))
	}

	assert.False(t, ValidStatus(Status("archived")))
	assert.False(t, ValidStatus(Status("")))
}

func TestUpdateStatus(t *testing.T) {
	a, err := NewApplication("user-1", 3, 7)
	require.NoError(t, err)

	before := a.UpdatedAt
	require.NoError(t, a.UpdateStatus(StatusApproved))

	assert.Equal(t, StatusApproved, a.Status)
	assert.True(t, !a.UpdatedAt.Before(before))

	assert.ErrorIs(t, a.UpdateStatus(Status("archived")), ErrInvalidStatus)
	assert.Equal(t, StatusApproved, a.Status)
}
