package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserHashesPassword(t *testing.T) {
	u, err := NewUser("student@example.com", "Thandiwe", "Banda", "s3cret-pass", RoleUser)

	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, RoleUser, u.Role)
	assert.NotEqual(t, "s3cret-pass", u.PasswordHash)
}

func TestNewUserValidation(t *testing.T) {
	_, err := NewUser("", "A", "B", "password", RoleUser)
	assert.ErrorIs(t, err, ErrEmptyEmail)

	_, err = NewUser("a@example.com", "A", "B", "", RoleUser)
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestCheckPassword(t *testing.T) {
	u, err := NewUser("student@example.com", "Thandiwe", "Banda", "s3cret-pass", RoleUser)
	require.NoError(t, err)

	assert.NoError(t, u.CheckPassword("s3cret-pass"))
	assert.ErrorIs(t, u.CheckPassword("wrong"), ErrInvalidPassword)
}
