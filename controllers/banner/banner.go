package bannerControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/aaban-saad/nextgen-circuits-api/pricing"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func uploadDir() string {
	if d := os.Getenv("UPLOAD_DIR"); d != "" {
		return d
	}
	return "./uploads/banners"
}

func publicBaseURL() string {
	if d := os.Getenv("PUBLIC_BASE_URL"); d != "" {
		return d
	}
	return "http://localhost:8080"
}

// UploadBanner saves the image locally and stores the popup banner row.
// POST /admin/banners
func UploadBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, fileHeader, err := c.Request.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}
		defer file.Close()

		if err := os.MkdirAll(uploadDir(), os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		ext := filepath.Ext(fileHeader.Filename)
		baseName := strings.TrimSuffix(fileHeader.Filename, ext)
		baseName = strings.ReplaceAll(baseName, " ", "_")
		newFileName := fmt.Sprintf("%d_%s%s", time.Now().Unix(), baseName, ext)
		savePath := filepath.Join(uploadDir(), newFileName)

		if err := c.SaveUploadedFile(fileHeader, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		banner := models.PopupBanner{
			Title:    c.PostForm("title"),
			Link:     c.PostForm("link"),
			ImageURL: fmt.Sprintf("%s/uploads/banners/%s", publicBaseURL(), newFileName),
			Active:   true,
		}
		if start := c.PostForm("start_date"); start != "" {
			if ts, err := time.Parse(time.RFC3339, start); err == nil {
				banner.StartDate = &ts
			}
		}
		if end := c.PostForm("end_date"); end != "" {
			if ts, err := time.Parse(time.RFC3339, end); err == nil {
				banner.EndDate = &ts
			}
		}

		if err := db.Create(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB save failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Banner uploaded", "data": banner})
	}
}

// GetBanners lists every banner for the admin panel.
// GET /admin/banners
func GetBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.PopupBanner
		if err := db.Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

// GetActiveBanners returns the banners the storefront should pop up
// right now: active and inside their display window.
// GET /banners
func GetActiveBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.PopupBanner
		if err := db.Where("active = ?", true).Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get banners"})
			return
		}
		now := time.Now()
		visible := make([]models.PopupBanner, 0, len(banners))
		for _, b := range banners {
			if pricing.WindowContains(b.StartDate, b.EndDate, now) {
				visible = append(visible, b)
			}
		}
		c.JSON(http.StatusOK, visible)
	}
}

// DeleteBanner removes the DB row and the local file.
// DELETE /admin/banners/:id
func DeleteBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var banner models.PopupBanner
		if err := db.First(&banner, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if banner.ImageURL != "" {
			localPath := filepath.Join(uploadDir(), filepath.Base(banner.ImageURL))
			if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
				return
			}
		}

		if err := db.Delete(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete from database"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
	}
}
