package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shoppyhq/shoppy-api/config"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	SetupAuthRoutes(r, db, cfg)
	SetupProductRoutes(r, db)
	SetupCartRoutes(r, db, cfg)
	SetupOrderRoutes(r, db, cfg)
	SetupReviewRoutes(r, db, cfg)
	SetupAdminRoutes(r, db, cfg)
}
