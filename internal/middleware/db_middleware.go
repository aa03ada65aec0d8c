package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DatabaseMiddleware injects the shared gorm handle into the request
// context so handlers stay free of package-level globals.
func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("db", db)
		c.Next()
	}
}
