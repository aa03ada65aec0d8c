package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/infogrowkro/growkroweb/internal/helpers"
)

// database pulls the gorm handle the middleware stashed on the request.
// On failure it has already written the 500 response.
func database(c *gin.Context) (*gorm.DB, bool) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return nil, false
	}
	return db.(*gorm.DB), true
}
