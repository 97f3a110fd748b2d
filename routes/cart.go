package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shoppyhq/shoppy-api/config"
	cartControllers "github.com/shoppyhq/shoppy-api/controllers/cart"
	"github.com/shoppyhq/shoppy-api/middleware"
)

// SetupCartRoutes registers the JWT-protected cart endpoints.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	cart := r.Group("/cart")
	cart.Use(middleware.RequireUser(db, cfg))
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.DELETE("", cartControllers.ClearCart(db))
		cart.POST("/items", cartControllers.AddCartItem(db))
		cart.PATCH("/items/:id", cartControllers.UpdateCartItem(db))
		cart.DELETE("/items/:id", cartControllers.DeleteCartItem(db))
	}
}
