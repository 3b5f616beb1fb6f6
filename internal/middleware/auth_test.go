package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"homeswap/internal/pkg/jwt"
)

func protectedRouter(t *testing.T, j *jwt.Service, extra ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Auth(j))
	for _, mw := range extra {
		router.Use(mw)
	}
	router.GET("/protected", func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": role})
	})
	return router
}

func TestAuth_ValidToken(t *testing.T) {
	j := jwt.New("test-secret-123", time.Hour)
	token, _ := j.GenerateToken(42, "member")

	router := protectedRouter(t, j)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "member")
}

func TestAuth_InvalidToken(t *testing.T) {
	j := jwt.New("test-secret-123", time.Hour)
	router := protectedRouter(t, j)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_WrongSecret(t *testing.T) {
	other := jwt.New("other-secret", time.Hour)
	token, _ := other.GenerateToken(42, "member")

	j := jwt.New("test-secret-123", time.Hour)
	router := protectedRouter(t, j)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MissingHeader(t *testing.T) {
	j := jwt.New("test-secret-123", time.Hour)
	router := protectedRouter(t, j)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	j := jwt.New("test-secret-123", -time.Minute)
	token, _ := j.GenerateToken(42, "member")

	router := protectedRouter(t, j)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly_MemberForbidden(t *testing.T) {
	j := jwt.New("test-secret-123", time.Hour)
	token, _ := j.GenerateToken(42, "member")

	router := protectedRouter(t, j, AdminOnly())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOnly_AdminPasses(t *testing.T) {
	j := jwt.New("test-secret-123", time.Hour)
	token, _ := j.GenerateToken(1, "admin")

	router := protectedRouter(t, j, AdminOnly())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
