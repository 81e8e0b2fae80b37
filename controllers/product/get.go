package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/aaban-saad/nextgen-circuits-api/cache"
	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/aaban-saad/nextgen-circuits-api/pricing"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ProductView is a product plus its discount-resolved price.
type ProductView struct {
	models.Product
	DiscountedPrice float64          `json:"discounted_price"`
	Discount        *models.Discount `json:"discount,omitempty"`
}

func withPricing(db *gorm.DB, p models.Product) (ProductView, error) {
	catIDs := make([]uint, 0, len(p.Categories))
	for _, cat := range p.Categories {
		catIDs = append(catIDs, cat.ID)
	}
	d, err := pricing.Resolve(db, p.ID, catIDs)
	if err != nil {
		return ProductView{}, err
	}
	return ProductView{
		Product:         p,
		DiscountedPrice: pricing.DiscountedPrice(p.Price, d),
		Discount:        d,
	}, nil
}

// GetProducts lists the catalog with resolved prices.
// Optional query: ?category_id=N
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Categories")
		if catID := c.Query("category_id"); catID != "" {
			query = query.
				Joins("JOIN product_categories pc ON pc.product_id = products.id").
				Where("pc.category_id = ?", catID)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		views := make([]ProductView, 0, len(products))
		for _, p := range products {
			v, err := withPricing(db, p)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve discounts"})
				return
			}
			views = append(views, v)
		}
		c.JSON(http.StatusOK, views)
	}
}

// GetProductByID returns a single product with its categories and
// resolved price. The raw product row is served from Redis when
// available; discounts are always resolved live.
func GetProductByID(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product := cache.GetProduct(c.Request.Context(), rdb, uint(id))
		if product == nil {
			var p models.Product
			if err := db.Preload("Categories").First(&p, id).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				} else {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
				}
				return
			}
			product = &p
			cache.SetProduct(c.Request.Context(), rdb, product)
		}

		view, err := withPricing(db, *product)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve discounts"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}
