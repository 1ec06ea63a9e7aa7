package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtendere/education-consult/internal/domain/user"
)

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := NewJWTService()
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	svc, err := NewJWTService()
	require.NoError(t, err)

	u, err := user.NewUser("admin@example.com", "Admin", "User", "password123", user.RoleAdmin)
	require.NoError(t, err)

	token, err := svc.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "education-consult-api", claims.Issuer)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "key-one")
	svc1, err := NewJWTService()
	require.NoError(t, err)

	u, err := user.NewUser("a@example.com", "A", "B", "password123", user.RoleUser)
	require.NoError(t, err)

	token, err := svc1.GenerateToken(u)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "key-two")
	svc2, err := NewJWTService()
	require.NoError(t, err)

	_, err = svc2.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	svc, err := NewJWTService()
	require.NoError(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
