package restrictedControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PatternInput struct {
	Pattern string `json:"pattern" binding:"required"`
}

// CreatePattern adds a path prefix to the manager deny-list. Patterns
// are normalized to start with a slash and carry no trailing slash so
// prefix matching behaves predictably.
// POST /admin/restricted-urls
func CreatePattern(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PatternInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		pattern := strings.TrimRight(input.Pattern, "/")
		if !strings.HasPrefix(pattern, "/") {
			pattern = "/" + pattern
		}

		row := models.RestrictedURL{Pattern: pattern}
		if err := db.Create(&row).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Pattern already exists"})
			return
		}
		c.JSON(http.StatusCreated, row)
	}
}

// GetPatterns lists the deny-list.
// GET /admin/restricted-urls
func GetPatterns(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []models.RestrictedURL
		if err := db.Order("pattern ASC").Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch patterns"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// DeletePattern removes an entry from the deny-list.
// DELETE /admin/restricted-urls/:id
func DeletePattern(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pattern ID"})
			return
		}
		result := db.Delete(&models.RestrictedURL{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pattern"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pattern not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Pattern deleted"})
	}
}
