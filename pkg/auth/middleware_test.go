package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtendere/education-consult/internal/domain/user"
)

func newAuthTestRouter(t *testing.T, role user.Role) (*gin.Engine, string) {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "middleware-test-secret")

	gin.SetMode(gin.TestMode)

	svc, err := NewJWTService()
	require.NoError(t, err)

	u, err := user.NewUser("someone@example.com", "Some", "One", "password123", role)
	require.NoError(t, err)

	token, err := svc.GenerateToken(u)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(svc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c)})
	})
	r.GET("/admin", JWTAuthMiddleware(svc), RoleAuthMiddleware("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r, token
}

func doGet(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	router, _ := newAuthTestRouter(t, user.RoleUser)

	w := doGet(router, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	router, _ := newAuthTestRouter(t, user.RoleUser)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareAcceptsValidToken(t *testing.T) {
	router, token := newAuthTestRouter(t, user.RoleUser)

	w := doGet(router, "/protected", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user_id")
}

func TestRoleAuthMiddlewareForbidsNonAdmin(t *testing.T) {
	router, token := newAuthTestRouter(t, user.RoleUser)

	w := doGet(router, "/admin", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleAuthMiddlewareAllowsAdmin(t *testing.T) {
	router, token := newAuthTestRouter(t, user.RoleAdmin)

	w := doGet(router, "/admin", token)
	assert.Equal(t, http.StatusOK, w.Code)
}
