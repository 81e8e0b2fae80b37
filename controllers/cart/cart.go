package cartControllers

import (
	"net/http"
	"time"

	"github.com/aaban-saad/nextgen-circuits-api/middleware"
	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// UpsertCartEntry adds a product to the user's cart or replaces the
// quantity of an existing entry. The quantity is checked against live
// stock on every call; a request that would exceed stock is rejected
// with no row mutation.
// POST /user/cart
func UpsertCartEntry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		if input.Quantity > product.Stock {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Requested quantity exceeds available stock"})
			return
		}

		var entry models.CartEntry
		err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&entry).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				entry = models.CartEntry{
					UserID:    userID,
					ProductID: product.ID,
					Quantity:  input.Quantity,
					AddedAt:   time.Now(),
				}
				if err := db.Create(&entry).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
					return
				}
				c.JSON(http.StatusCreated, entry)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart entry"})
			return
		}

		entry.Quantity = input.Quantity
		entry.AddedAt = time.Now()
		if err := db.Save(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart entry"})
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}

// DeleteCartEntry removes one product from the cart.
// DELETE /user/cart/:product_id
func DeleteCartEntry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		productID := c.Param("product_id")

		result := db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.CartEntry{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart entry not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart entry deleted"})
	}
}

// ClearUserCart removes every entry in the user's cart.
// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if err := db.Where("user_id = ?", userID).Delete(&models.CartEntry{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GetUserCart lists the cart with product details.
// GET /user/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var entries []models.CartEntry
		if err := db.Preload("Product").Where("user_id = ?", userID).Order("id ASC").Find(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

// GetAdminUserCart lets an admin inspect any user's cart.
// GET /admin/user-cart/:user_id
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}
		var entries []models.CartEntry
		if err := db.Preload("Product").Where("user_id = ?", userID).Find(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}
