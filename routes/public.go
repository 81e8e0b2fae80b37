package routes

import (
	bannerControllers "github.com/aaban-saad/nextgen-circuits-api/controllers/banner"
	productControllers "github.com/aaban-saad/nextgen-circuits-api/controllers/product"
	reviewControllers "github.com/aaban-saad/nextgen-circuits-api/controllers/review"
	"github.com/gin-gonic/gin"
)

// SetupPublicRoutes registers the unauthenticated storefront endpoints.
func SetupPublicRoutes(r *gin.Engine, deps Deps) {
	r.GET("/products", productControllers.GetProducts(deps.DB))
	r.GET("/products/:id", productControllers.GetProductByID(deps.DB, deps.Redis))
	r.GET("/products/:id/reviews", reviewControllers.GetProductReviews(deps.DB))

	r.GET("/categories", productControllers.GetAllCategories(deps.DB))

	// active popup banners for the storefront
	r.GET("/banners", bannerControllers.GetActiveBanners(deps.DB))
}
