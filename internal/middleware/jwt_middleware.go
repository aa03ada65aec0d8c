package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/infogrowkro/growkroweb/internal/helpers"
)

// JWTAuthMiddleware guards the admin console. Tokens are HS256, signed
// with JWT_SECRET, and must carry role=admin.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			helpers.AbortWithError(c, http.StatusUnauthorized, "Missing or malformed authorization header.")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			helpers.AbortWithError(c, http.StatusInternalServerError, "JWT_SECRET not configured.")
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			helpers.AbortWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			helpers.AbortWithError(c, http.StatusUnauthorized, "Invalid token claims.")
			return
		}
		if role, _ := claims["role"].(string); role != "admin" {
			helpers.AbortWithError(c, http.StatusForbidden, "Admin access required.")
			return
		}

		if email, _ := claims["email"].(string); email != "" {
			c.Set("admin_email", email)
		}
		c.Next()
	}
}
