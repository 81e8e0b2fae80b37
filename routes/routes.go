package routes

import (
	"github.com/aaban-saad/nextgen-circuits-api/checkout"
	orderControllers "github.com/aaban-saad/nextgen-circuits-api/controllers/order"
	"github.com/aaban-saad/nextgen-circuits-api/courier"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps bundles everything the route groups need.
type Deps struct {
	DB       *gorm.DB
	Redis    *redis.Client // nil disables the product cache
	Checkout *checkout.Service
	Courier  *courier.Client // nil disables admin dispatch
	Feed     *orderControllers.Feed
}

// SetupRoutes is the single entry-point that wires up the public, auth,
// user, and admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupAuthRoutes(r, deps)

	SetupPublicRoutes(r, deps)

	SetupUserRoutes(r, deps)

	SetupAdminRoutes(r, deps)
}
