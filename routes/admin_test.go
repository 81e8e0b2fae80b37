package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	orderControllers "github.com/aaban-saad/nextgen-circuits-api/controllers/order"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupAdminRoutes(r, Deps{Feed: orderControllers.NewFeed()})
	return r
}

func signToken(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// the admin group answers unauthorized requests with JSON before the
// page guard can redirect; the guard's only remaining job here is the
// manager deny-list
func TestAdminRoutesRejectWithJSON(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := adminEngine(t)

	t.Run("anonymous gets 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	})

	t.Run("user role gets 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "user"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	})
}
