package middleware

import (
	"net/http"
	"strings"

	"lostandfound/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// AuthUserKey is the gin context key holding the authenticated user's id
	// as a uuid.UUID.
	AuthUserKey = "authUser"
)

// JWTAuthMiddleware creates a middleware for JWT authentication. The decoded
// subject id is stored in the context under AuthUserKey.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token not found"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token not found"})
			return
		}

		claims, err := jwtUtil.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token"})
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format in token"})
			return
		}

		c.Set(AuthUserKey, userID)
		c.Next()
	}
}

// GetAuthUserID extracts the authenticated user id set by JWTAuthMiddleware
func GetAuthUserID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get(AuthUserKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := val.(uuid.UUID)
	return userID, ok
}
