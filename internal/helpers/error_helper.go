package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RespondWithError writes the standard error envelope: the HTTP status
// text plus a human-readable reason.
func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: customMessage,
	})
}

// AbortWithError is RespondWithError for middleware: it also stops the
// handler chain.
func AbortWithError(c *gin.Context, statusCode int, customMessage string) {
	RespondWithError(c, statusCode, customMessage)
	c.Abort()
}
