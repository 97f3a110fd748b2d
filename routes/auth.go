package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shoppyhq/shoppy-api/config"
	authControllers "github.com/shoppyhq/shoppy-api/controllers/auth"
	"github.com/shoppyhq/shoppy-api/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db))
		authGroup.POST("/login", authControllers.Login(db, cfg))
		authGroup.POST("/logout", authControllers.Logout())

		me := authGroup.Group("/me")
		me.Use(middleware.RequireUser(db, cfg))
		{
			me.GET("", authControllers.Me())
			me.PATCH("", authControllers.UpdateMe(db))
		}
	}
}
