// Package auth issues sessions for the storefront. Login returns a
// bearer token for API clients and a one-time redirect code for the
// page flow, which /auth/callback exchanges for a session cookie.
package auth

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/aaban-saad/nextgen-circuits-api/middleware"
	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	sessionTTL = 72 * time.Hour
	codeTTL    = 2 * time.Minute
)

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func signSession(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(sessionTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

func signCode(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"purpose": "code",
		"exp":     time.Now().Add(codeTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

func parseCode(code string) (string, error) {
	token, err := jwt.Parse(code, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired code")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["purpose"] != "code" {
		return "", errors.New("not a redirect code")
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", errors.New("code missing user_id")
	}
	return userID, nil
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

// Register creates a user with the base role and returns a session.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Email:        req.Email,
			PasswordHash: string(hash),
			Name:         req.Name,
			Phone:        req.Phone,
			Role:         models.RoleUser,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}

		token, err := signSession(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials. API clients get a bearer token; when the
// page flow asks (?flow=web) a one-time code is returned instead, to be
// exchanged at /auth/callback.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		if c.Query("flow") == "web" {
			code, err := signCode(&user)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign code"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"code": code})
			return
		}

		token, err := signSession(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// Callback exchanges a redirect code for a session cookie and sends the
// browser on to redirect_to (or the user dashboard).
func Callback(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
			return
		}
		userID, err := parseCode(code)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}

		token, err := signSession(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
			return
		}

		c.SetCookie(middleware.SessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)

		target := c.Query("redirect_to")
		if target == "" || target[0] != '/' {
			target = "/user/dashboard"
		}
		c.Redirect(http.StatusFound, target)
	}
}
