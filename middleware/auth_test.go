package middleware

import (
	"testing"
	"time"

	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("valid token", func(t *testing.T) {
		token := signTestToken(t, "test-secret", jwt.MapClaims{
			"user_id": "u1",
			"role":    "manager",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		ident, err := ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "u1", ident.UserID)
		assert.Equal(t, models.RoleManager, ident.Role)
	})

	t.Run("unknown role collapses to user", func(t *testing.T) {
		token := signTestToken(t, "test-secret", jwt.MapClaims{
			"user_id": "u1",
			"role":    "superuser",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		ident, err := ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, models.RoleUser, ident.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signTestToken(t, "test-secret", jwt.MapClaims{
			"user_id": "u1",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})
		_, err := ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signTestToken(t, "other-secret", jwt.MapClaims{
			"user_id": "u1",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		_, err := ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("missing user_id", func(t *testing.T) {
		token := signTestToken(t, "test-secret", jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		_, err := ParseToken(token)
		assert.Error(t, err)
	})
}
