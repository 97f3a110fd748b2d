package adminController

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/shoppyhq/shoppy-api/models"
)

// Spreadsheet columns for catalog import/export:
// ID | Name | Description | Category | Price | Stock | ImageURL

// POST /admin/products/import-xlsx
// Rows with an ID matching an existing product update it; the rest insert.
// Malformed rows are counted and skipped; a database error rolls back the
// whole import.
func ImportProductsFromXLSX(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Spreadsheet file is required"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open spreadsheet"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, fileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse spreadsheet"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Spreadsheet is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		// One transaction for the whole file; a write error rolls back every
		// row so the counts always match what was committed.
		err = db.Transaction(func(tx *gorm.DB) error {
			for i := 1; i < sheet.MaxRow; i++ {
				row := sheet.Rows[i]

				get := func(index int) string {
					if index < len(row.Cells) {
						return strings.TrimSpace(row.Cells[index].String())
					}
					return ""
				}

				idStr := get(0)
				name := get(1)
				description := get(2)
				category := get(3)
				price, priceErr := strconv.ParseFloat(get(4), 64)
				stock, _ := strconv.Atoi(get(5))
				imageURL := get(6)

				if name == "" || priceErr != nil || price < 0 || stock < 0 {
					skippedCount++
					continue
				}
				if category != "" && !models.IsValidCategory(category) {
					skippedCount++
					continue
				}

				if idStr != "" {
					if id, err := strconv.Atoi(idStr); err == nil {
						var existing models.Product
						if err := tx.First(&existing, id).Error; err == nil {
							existing.Name = name
							existing.Description = description
							existing.Category = category
							existing.Price = price
							existing.Stock = stock
							existing.ImageURL = imageURL
							if err := tx.Save(&existing).Error; err != nil {
								return err
							}
							updatedCount++
							continue
						}
					}
				}

				product := models.Product{
					Name:        name,
					Description: description,
					Category:    category,
					Price:       price,
					Stock:       stock,
					ImageURL:    imageURL,
				}
				if err := tx.Create(&product).Error; err != nil {
					return err
				}
				createdCount++
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}

// GET /admin/products/export-xlsx
func ExportProductsToXLSX(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sheet"})
			return
		}

		headers := []string{"ID", "Name", "Description", "Category", "Price", "Stock", "ImageURL", "CreatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.ImageURL)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write spreadsheet"})
			return
		}
	}
}
