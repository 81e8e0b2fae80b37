package wishlistControllers

import (
	"net/http"
	"time"

	"github.com/aaban-saad/nextgen-circuits-api/middleware"
	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WishlistInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// AddWishlistEntry saves a product to the user's wishlist. Adding the
// same product twice is a no-op thanks to the unique pair index.
// POST /user/wishlist
func AddWishlistEntry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		entry := models.WishlistEntry{
			UserID:    userID,
			ProductID: product.ID,
			AddedAt:   time.Now(),
		}
		if err := db.Where("user_id = ? AND product_id = ?", userID, product.ID).
			FirstOrCreate(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
			return
		}
		c.JSON(http.StatusCreated, entry)
	}
}

// DeleteWishlistEntry removes a product from the wishlist.
// DELETE /user/wishlist/:product_id
func DeleteWishlistEntry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		result := db.Where("user_id = ? AND product_id = ?", userID, c.Param("product_id")).
			Delete(&models.WishlistEntry{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist entry not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
	}
}

// GetWishlist lists the user's wishlist with product details.
// GET /user/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var entries []models.WishlistEntry
		if err := db.Preload("Product").Where("user_id = ?", userID).Order("id ASC").Find(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}
