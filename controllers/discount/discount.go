package discountControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DiscountInput struct {
	ProductID  *uint      `json:"product_id"`
	CategoryID *uint      `json:"category_id"`
	Type       string     `json:"type" binding:"required,oneof=percentage fixed"`
	Value      float64    `json:"value" binding:"required,gt=0"`
	Active     *bool      `json:"active"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
}

func (in *DiscountInput) validateScope() string {
	if (in.ProductID == nil) == (in.CategoryID == nil) {
		return "exactly one of product_id or category_id must be set"
	}
	if in.Type == string(models.DiscountTypePercentage) && in.Value > 100 {
		return "percentage value cannot exceed 100"
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return "end_date must not precede start_date"
	}
	return ""
}

// CreateDiscount registers a product- or category-scoped discount.
// POST /admin/discounts
func CreateDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DiscountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if msg := input.validateScope(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		active := true
		if input.Active != nil {
			active = *input.Active
		}
		discount := models.Discount{
			ProductID:  input.ProductID,
			CategoryID: input.CategoryID,
			Type:       models.DiscountType(input.Type),
			Value:      input.Value,
			Active:     active,
			StartDate:  input.StartDate,
			EndDate:    input.EndDate,
		}
		if err := db.Create(&discount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create discount"})
			return
		}
		c.JSON(http.StatusCreated, discount)
	}
}

// UpdateDiscount replaces a discount's fields.
// PUT /admin/discounts/:id
func UpdateDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount ID"})
			return
		}
		var discount models.Discount
		if err := db.First(&discount, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Discount not found"})
			return
		}

		var input DiscountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if msg := input.validateScope(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		discount.ProductID = input.ProductID
		discount.CategoryID = input.CategoryID
		discount.Type = models.DiscountType(input.Type)
		discount.Value = input.Value
		if input.Active != nil {
			discount.Active = *input.Active
		}
		discount.StartDate = input.StartDate
		discount.EndDate = input.EndDate

		if err := db.Save(&discount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update discount"})
			return
		}
		c.JSON(http.StatusOK, discount)
	}
}

// GetDiscounts lists all discounts for the admin panel.
// GET /admin/discounts
func GetDiscounts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var discounts []models.Discount
		if err := db.Order("id ASC").Find(&discounts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch discounts"})
			return
		}
		c.JSON(http.StatusOK, discounts)
	}
}

// DeleteDiscount removes a discount.
// DELETE /admin/discounts/:id
func DeleteDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount ID"})
			return
		}
		result := db.Delete(&models.Discount{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete discount"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Discount not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Discount deleted"})
	}
}
