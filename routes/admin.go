package routes

import (
	bannerControllers "github.com/aaban-saad/nextgen-circuits-api/controllers/banner"
	cartControllers "github.com/aaban-saad/nextgen-circuits-api/controllers/cart"
	discountControllers "github.com/aaban-saad/nextgen-circuits-api/controllers/discount"
	orderControllers "github.com/aaban-saad/nextgen-circuits-api/controllers/order"
	productControllers "github.com/aaban-saad/nextgen-circuits-api/controllers/product"
	restrictedControllers "github.com/aaban-saad/nextgen-circuits-api/controllers/restricted"
	userControllers "github.com/aaban-saad/nextgen-circuits-api/controllers/user"
	"github.com/aaban-saad/nextgen-circuits-api/middleware"
	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Admins pass
// unconditionally; managers additionally go through the restricted-url
// page guard. Anonymous and user-role requests are answered with JSON
// by RequireAuth/RequireRole before PageGuard runs; its login and
// send-home redirects apply only where the guard fronts page routes.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAuth, middleware.RequireRole(models.RoleAdmin, models.RoleManager), middleware.PageGuard(deps.DB))
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(deps.DB))
		adminGroup.PUT("/users/:id/role", userControllers.UpdateUserRole(deps.DB))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(deps.DB))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(deps.DB, deps.Redis))
			productAdmin.GET("", productControllers.GetProducts(deps.DB))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(deps.DB, deps.Redis))
			productAdmin.POST("/import-excel", productControllers.ImportProductsFromExcel(deps.DB))
			productAdmin.GET("/export-excel", productControllers.ExportProductsToExcel(deps.DB))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productControllers.CreateCategory(deps.DB))
			categoryAdmin.PUT("/:id", productControllers.UpdateCategory(deps.DB))
			categoryAdmin.GET("", productControllers.GetAllCategories(deps.DB))
			categoryAdmin.DELETE("/:id", productControllers.DeleteCategory(deps.DB))
		}

		// ─────────── Discount Management ───────────
		discountAdmin := adminGroup.Group("/discounts")
		{
			discountAdmin.POST("", discountControllers.CreateDiscount(deps.DB))
			discountAdmin.PUT("/:id", discountControllers.UpdateDiscount(deps.DB))
			discountAdmin.GET("", discountControllers.GetDiscounts(deps.DB))
			discountAdmin.DELETE("/:id", discountControllers.DeleteDiscount(deps.DB))
		}

		// ─────────── Orders ───────────
		ordersAdmin := adminGroup.Group("/orders")
		{
			ordersAdmin.GET("", orderControllers.GetAllOrdersHandler(deps.DB))
			ordersAdmin.GET("/ws", deps.Feed.Handler)
			ordersAdmin.GET("/:orderID", orderControllers.GetOrderByIDHandler(deps.DB))
			ordersAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(deps.DB))
			ordersAdmin.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(deps.DB))
			if deps.Courier != nil {
				ordersAdmin.POST("/:orderID/dispatch", orderControllers.DispatchOrderHandler(deps.DB, deps.Courier))
			}
		}

		// ─────────── Popup Banners ───────────
		bannerMgmt := adminGroup.Group("/banners")
		{
			bannerMgmt.POST("", bannerControllers.UploadBanner(deps.DB))
			bannerMgmt.GET("", bannerControllers.GetBanners(deps.DB))
			bannerMgmt.DELETE("/:id", bannerControllers.DeleteBanner(deps.DB))
		}

		// ─────────── Manager Deny-List ───────────
		restrictedMgmt := adminGroup.Group("/restricted-urls")
		{
			restrictedMgmt.POST("", restrictedControllers.CreatePattern(deps.DB))
			restrictedMgmt.GET("", restrictedControllers.GetPatterns(deps.DB))
			restrictedMgmt.DELETE("/:id", restrictedControllers.DeletePattern(deps.DB))
		}

		// ─────────── Cart Inspection ───────────
		adminGroup.GET("/user-cart/:user_id", cartControllers.GetAdminUserCart(deps.DB))
	}
}
