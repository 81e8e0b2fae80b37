package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/aaban-saad/nextgen-circuits-api/cache"
	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	SKU         string  `json:"sku" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Image       string  `json:"image"`
	WeightKG    float64 `json:"weight_kg" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	CategoryIDs []uint  `json:"category_ids"`
}

func loadCategories(db *gorm.DB, ids []uint) ([]models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []models.Category
	if err := db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateProduct adds a catalog entry.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		categories, err := loadCategories(db, input.CategoryIDs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
			return
		}

		product := models.Product{
			Name:        input.Name,
			SKU:         input.SKU,
			Description: input.Description,
			Price:       input.Price,
			Image:       input.Image,
			WeightKG:    input.WeightKG,
			Stock:       input.Stock,
			Categories:  categories,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Failed to create product (duplicate SKU?)"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// UpdateProduct modifies an existing product and drops its cache entry.
func UpdateProduct(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		categories, err := loadCategories(db, input.CategoryIDs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
			return
		}

		product.Name = input.Name
		product.SKU = input.SKU
		product.Description = input.Description
		product.Price = input.Price
		product.Image = input.Image
		product.WeightKG = input.WeightKG
		product.Stock = input.Stock

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
			return tx.Model(&product).Association("Categories").Replace(categories)
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		cache.InvalidateProduct(c.Request.Context(), rdb, product.ID)
		c.JSON(http.StatusOK, product)
	}
}

// DeleteProduct soft-deletes a product and drops its cache entry.
func DeleteProduct(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		result := db.Delete(&models.Product{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		cache.InvalidateProduct(c.Request.Context(), rdb, uint(id))
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
