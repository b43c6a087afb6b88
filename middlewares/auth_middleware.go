package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adisyonqr/restaurant-app/utils"
)

// AuthMiddleware verifies the staff JWT. Browsers carry it in the
// auth_token cookie set at login; API clients may send a Bearer header
// instead.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authentication required"))
			c.Abort()
			return
		}

		if utils.IsTokenBlacklisted(tokenString) {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired token"))
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired token"))
			c.Abort()
			return
		}

		if claims.StaffID == 0 {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid staff ID in token"))
			c.Abort()
			return
		}

		c.Set("staffID", claims.StaffID)
		c.Set("staffName", claims.Name)
		c.Set("role", claims.Role)
		c.Set("token", tokenString)

		c.Next()
	}
}

// OptionalAuthMiddleware decodes a token when one is present but never
// rejects. Customer order placement is anonymous; a logged-in waiter
// placing the same request gets attributed.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" || utils.IsTokenBlacklisted(tokenString) {
			c.Next()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err == nil && claims != nil && claims.StaffID != 0 {
			c.Set("staffID", claims.StaffID)
			c.Set("staffName", claims.Name)
			c.Set("role", claims.Role)
			c.Set("token", tokenString)
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(utils.AuthCookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
