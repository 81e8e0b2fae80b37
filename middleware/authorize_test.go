package middleware

import (
	"testing"

	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/stretchr/testify/assert"
)

func TestRestrictedMatch(t *testing.T) {
	assert.True(t, RestrictedMatch("/admin/settings", "/admin/settings"))
	assert.True(t, RestrictedMatch("/admin/settings/security", "/admin/settings"))
	// shared prefix without the separator must not match
	assert.False(t, RestrictedMatch("/admin/settingsX", "/admin/settings"))
	assert.False(t, RestrictedMatch("/admin", "/admin/settings"))
}

func TestDecide(t *testing.T) {
	user := &Identity{UserID: "u1", Role: models.RoleUser}
	manager := &Identity{UserID: "m1", Role: models.RoleManager}
	admin := &Identity{UserID: "a1", Role: models.RoleAdmin}
	restricted := []string{"/admin/settings", "/admin/discounts"}

	tests := []struct {
		name       string
		path       string
		ident      *Identity
		restricted []string
		want       string
	}{
		{"anonymous public page", "/products", nil, nil, ""},
		{"anonymous user area", "/user/orders", nil, nil, "/login?redirect_to=%2Fuser%2Forders"},
		{"anonymous admin area", "/admin/products", nil, nil, "/login?redirect_to=%2Fadmin%2Fproducts"},
		{"authenticated login page", "/login", user, nil, "/user/dashboard"},
		{"user in admin area", "/admin/products", user, nil, "/"},
		{"admin passes everywhere", "/admin/settings", admin, restricted, ""},
		{"manager on open admin page", "/admin/orders", manager, restricted, ""},
		{"manager on restricted page", "/admin/settings", manager, restricted, "/admin/dashboard?error=access_denied"},
		{"manager on restricted sub-path", "/admin/settings/security", manager, restricted, "/admin/dashboard?error=access_denied"},
		{"manager on prefix-sharing page", "/admin/settingsX", manager, restricted, ""},
		{"user area with identity", "/user/cart", user, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.path, tt.ident, tt.restricted))
		})
	}
}
