package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shoppyhq/shoppy-api/config"
	reviewControllers "github.com/shoppyhq/shoppy-api/controllers/review"
	"github.com/shoppyhq/shoppy-api/middleware"
)

// SetupReviewRoutes registers review endpoints. Listing and reading are
// public; writes require authentication.
func SetupReviewRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.GET("/products/:id/reviews", reviewControllers.ListProductReviews(db))
	r.POST("/products/:id/reviews",
		middleware.RequireUser(db, cfg), reviewControllers.CreateReview(db))

	reviews := r.Group("/reviews")
	{
		reviews.GET("/:id", reviewControllers.GetReview(db))
		reviews.PUT("/:id", middleware.RequireUser(db, cfg), reviewControllers.UpdateReview(db))
		reviews.DELETE("/:id", middleware.RequireUser(db, cfg), reviewControllers.DeleteReview(db))
	}
}
