package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/shoppyhq/shoppy-api/controllers/product"
)

// SetupProductRoutes registers the public catalog endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.ListProducts(db))
		products.GET("/search", productcontroller.SearchProducts(db))
		products.GET("/categories", productcontroller.ListCategories())
		products.GET("/:id", productcontroller.GetProductByID(db))
	}
}
