package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shoppyhq/shoppy-api/config"
	orderControllers "github.com/shoppyhq/shoppy-api/controllers/order"
	"github.com/shoppyhq/shoppy-api/middleware"
)

// SetupOrderRoutes registers checkout and order history endpoints. Status
// transitions are admin-only.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	orders := r.Group("/orders")
	orders.Use(middleware.RequireUser(db, cfg))
	{
		orders.POST("", orderControllers.PlaceOrder(db))
		orders.GET("", orderControllers.ListOrders(db))
		orders.GET("/:id", orderControllers.GetOrder(db))
		orders.PATCH("/:id/status", middleware.RequireAdmin(), orderControllers.UpdateOrderStatus(db))
	}
}
