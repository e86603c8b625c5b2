package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kztJames01/makerSpace/internal/apperrors"
	"github.com/kztJames01/makerSpace/internal/model"
	"github.com/kztJames01/makerSpace/pkg/jwt"
)

// SessionCookie is the name of the HTTP-only session cookie.
const SessionCookie = "token"

// AuthMiddleware validates the session token from the Authorization header
// or the session cookie and resolves its subject against the database.
// It fails closed: any missing, malformed, expired or orphaned token aborts
// the request with 401.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
			if tokenStr == authHeader {
				abortWith(c, apperrors.ErrTokenInvalid)
				return
			}
		}

		// Fall back to the session cookie, then to a query param for
		// EventSource clients which cannot set headers.
		if tokenStr == "" {
			tokenStr, _ = c.Cookie(SessionCookie)
		}
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}
		if tokenStr == "" {
			abortWith(c, apperrors.ErrTokenMissing)
			return
		}

		claims, err := jwt.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			if strings.Contains(err.Error(), "expired") {
				abortWith(c, apperrors.ErrTokenExpired)
			} else {
				abortWith(c, apperrors.ErrTokenInvalid)
			}
			return
		}

		var user model.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			abortWith(c, apperrors.ErrTokenInvalid)
			return
		}

		c.Set("userID", user.ID)
		c.Set("userRole", user.Role)
		c.Set("user", &user)
		c.Next()
	}
}

func abortWith(c *gin.Context, err *apperrors.Error) {
	c.AbortWithStatusJSON(err.Status, gin.H{
		"code":    err.Code,
		"message": err.Message,
		"data":    nil,
	})
}

func GetCurrentUser(c *gin.Context) *model.User {
	u, exists := c.Get("user")
	if !exists {
		return nil
	}
	return u.(*model.User)
}

func GetCurrentUserID(c *gin.Context) uint {
	id, _ := c.Get("userID")
	return id.(uint)
}

func GetCurrentUserRole(c *gin.Context) string {
	role, _ := c.Get("userRole")
	return role.(string)
}

func IsCurrentUserAdmin(c *gin.Context) bool {
	return GetCurrentUserRole(c) == "admin"
}
