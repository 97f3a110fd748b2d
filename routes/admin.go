package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shoppyhq/shoppy-api/config"
	adminController "github.com/shoppyhq/shoppy-api/controllers/admin"
	"github.com/shoppyhq/shoppy-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires an
// authenticated admin user.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireUser(db, cfg), middleware.RequireAdmin())
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", adminController.CreateProduct(db))
			productAdmin.POST("/bulk", adminController.CreateProductsBulk(db))
			productAdmin.PUT("/:id", adminController.UpdateProduct(db))
			productAdmin.DELETE("/:id", adminController.DeleteProduct(db))
			productAdmin.POST("/import-xlsx", adminController.ImportProductsFromXLSX(db))
			productAdmin.GET("/export-xlsx", adminController.ExportProductsToXLSX(db))
		}
	}
}
