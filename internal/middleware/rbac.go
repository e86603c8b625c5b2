package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/kztJames01/makerSpace/internal/apperrors"
)

// RequireAdmin guards platform-admin routes.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsCurrentUserAdmin(c) {
			abortWith(c, apperrors.Forbidden(40304, "admin role required"))
			return
		}
		c.Next()
	}
}
