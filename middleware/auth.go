package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shoppyhq/shoppy-api/auth"
	"github.com/shoppyhq/shoppy-api/config"
	"github.com/shoppyhq/shoppy-api/models"
)

const userKey = "current_user"

// RequireUser validates the bearer token and loads the matching user into
// the request context. Any failure aborts with 401.
func RequireUser(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		subject, err := auth.SubjectFromToken(cfg.JWTSecret, tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.Where("email = ?", subject).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			}
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAdmin must run after RequireUser.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentUser(c).IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user set by RequireUser. Panics if RequireUser did
// not run on this route; a zero-value user must never pass for an identity.
func CurrentUser(c *gin.Context) models.User {
	return c.MustGet(userKey).(models.User)
}
