package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportProductsToExcel streams the catalog as an .xlsx download.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Categories").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "SKU", "Description", "Price", "WeightKG", "Stock", "Image", "CategoryIDs"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			var catIDs []string
			for _, cat := range p.Categories {
				catIDs = append(catIDs, strconv.Itoa(int(cat.ID)))
			}

			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.SKU)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.WeightKG)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(strings.Join(catIDs, ","))
		}

		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}

// ImportProductsFromExcel upserts products from an uploaded .xlsx file.
// Expected columns: Name, SKU, Description, Price, WeightKG, Stock, Image.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open file"})
			return
		}
		defer f.Close()

		wb, err := xlsx.OpenReaderAt(f, fileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Excel file"})
			return
		}
		if len(wb.Sheets) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file has no sheets"})
			return
		}

		var imported, skipped int
		for i, row := range wb.Sheets[0].Rows {
			if i == 0 || len(row.Cells) < 6 { // header row
				continue
			}
			name := row.Cells[0].String()
			sku := row.Cells[1].String()
			if name == "" || sku == "" {
				skipped++
				continue
			}
			price, err1 := row.Cells[3].Float()
			weight, err2 := row.Cells[4].Float()
			stock, err3 := row.Cells[5].Int()
			if err1 != nil || err2 != nil || err3 != nil {
				skipped++
				continue
			}

			product := models.Product{
				Name:        name,
				SKU:         sku,
				Description: row.Cells[2].String(),
				Price:       price,
				WeightKG:    weight,
				Stock:       stock,
			}
			if len(row.Cells) > 6 {
				product.Image = row.Cells[6].String()
			}

			var existing models.Product
			err := db.Where(models.Product{SKU: sku}).
				Assign(models.Product{
					Name:        product.Name,
					Description: product.Description,
					Price:       product.Price,
					WeightKG:    product.WeightKG,
					Stock:       product.Stock,
					Image:       product.Image,
				}).
				FirstOrCreate(&existing).Error
			if err != nil {
				skipped++
				continue
			}
			imported++
		}

		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Imported %d products, skipped %d rows", imported, skipped)})
	}
}
