package routes

import (
	cartControllers "github.com/aaban-saad/nextgen-circuits-api/controllers/cart"
	orderControllers "github.com/aaban-saad/nextgen-circuits-api/controllers/order"
	reviewControllers "github.com/aaban-saad/nextgen-circuits-api/controllers/review"
	userControllers "github.com/aaban-saad/nextgen-circuits-api/controllers/user"
	wishlistControllers "github.com/aaban-saad/nextgen-circuits-api/controllers/wishlist"
	"github.com/aaban-saad/nextgen-circuits-api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires a session.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireAuth)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(deps.DB))
		userGroup.PUT("/", userControllers.UpdateUser(deps.DB))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(deps.DB))
			cartGroup.POST("/", cartControllers.UpsertCartEntry(deps.DB))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartEntry(deps.DB))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(deps.DB))
		}

		// ──────────────── Wishlist ────────────────
		wishGroup := userGroup.Group("/wishlist")
		{
			wishGroup.GET("/", wishlistControllers.GetWishlist(deps.DB))
			wishGroup.POST("/", wishlistControllers.AddWishlistEntry(deps.DB))
			wishGroup.DELETE("/:product_id", wishlistControllers.DeleteWishlistEntry(deps.DB))
		}

		// ──────────────── Reviews ────────────────
		userGroup.POST("/reviews", reviewControllers.CreateReview(deps.DB))
		userGroup.DELETE("/reviews/:product_id", reviewControllers.DeleteReview(deps.DB))

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/checkout", orderControllers.CheckoutHandler(deps.Checkout))
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(deps.DB))
	}
}
