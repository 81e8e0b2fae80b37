package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RestrictedMatch reports whether path hits pattern exactly or as a
// sub-path. A path that merely shares a prefix string without the
// separator (/admin/settingsX vs /admin/settings) does not match.
func RestrictedMatch(path, pattern string) bool {
	return path == pattern || strings.HasPrefix(path, pattern+"/")
}

// Decide evaluates the page-routing policy for path. ident is nil for
// anonymous requests; restricted is the manager deny-list. The returned
// string is a redirect target, empty when the request may proceed.
func Decide(path string, ident *Identity, restricted []string) string {
	isUserArea := RestrictedMatch(path, "/user")
	isAdminArea := RestrictedMatch(path, "/admin")

	if ident == nil {
		if isUserArea || isAdminArea {
			return "/login?redirect_to=" + url.QueryEscape(path)
		}
		return ""
	}

	if path == "/login" {
		return "/user/dashboard"
	}

	if !isAdminArea {
		return ""
	}
	switch ident.Role {
	case models.RoleAdmin:
		return "" // admin passes unconditionally
	case models.RoleManager:
		for _, p := range restricted {
			if RestrictedMatch(path, p) {
				return "/admin/dashboard?error=access_denied"
			}
		}
		return ""
	default:
		return "/"
	}
}

// PageGuard applies Decide to every request, loading the manager
// deny-list from the restricted_urls table so changes take effect
// without a restart.
func PageGuard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := requestIdentity(c)

		var restricted []string
		if ident != nil && ident.Role == models.RoleManager {
			var rows []models.RestrictedURL
			if err := db.Find(&rows).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load access rules"})
				c.Abort()
				return
			}
			for _, r := range rows {
				restricted = append(restricted, r.Pattern)
			}
		}

		if target := Decide(c.Request.URL.Path, ident, restricted); target != "" {
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}

		if ident != nil {
			c.Set("user_id", ident.UserID)
			c.Set("role", ident.Role)
		}
		c.Next()
	}
}
