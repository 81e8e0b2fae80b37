package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the cookie the page flows carry the token in; API
// clients use the Authorization header instead.
const SessionCookie = "session"

// Identity is the authenticated principal attached to a request.
type Identity struct {
	UserID string
	Role   models.Role
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// ParseToken validates tokenString and extracts the identity claims.
func ParseToken(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, errors.New("token missing user_id")
	}
	role, _ := claims["role"].(string)
	return &Identity{UserID: userID, Role: models.ParseRole(role)}, nil
}

// requestIdentity resolves the identity from the bearer header or the
// session cookie, returning nil when the request is anonymous.
func requestIdentity(c *gin.Context) *Identity {
	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if tokenString == "" {
		tokenString, _ = c.Cookie(SessionCookie)
	}
	if tokenString == "" {
		return nil
	}
	ident, err := ParseToken(tokenString)
	if err != nil {
		return nil
	}
	return ident
}

// RequireAuth rejects anonymous requests and stores the identity in the
// context for handlers.
func RequireAuth(c *gin.Context) {
	ident := requestIdentity(c)
	if ident == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
		c.Abort()
		return
	}
	c.Set("user_id", ident.UserID)
	c.Set("role", ident.Role)
	c.Next()
}

// RequireRole layers on RequireAuth and rejects identities outside the
// given roles.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			c.Abort()
			return
		}
		role := roleVal.(models.Role)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
		c.Abort()
	}
}

// UserID pulls the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) string {
	v, _ := c.Get("user_id")
	s, _ := v.(string)
	return s
}
