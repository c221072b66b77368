package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warsonwoods/jobs-backend/internal/core"
)

// RequireRole resolves the authenticated caller's profile document and
// rejects the request unless the profile's type matches. The resolved role
// is cached in the Gin context so handlers can read it without refetching.
// Must run after AuthMiddleware.VerifyToken.
func RequireRole(userService core.UserService, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
			return
		}

		user, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			log.Printf("RequireRole: failed to resolve profile for user '%s': %v", userID, err)
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "No profile found for this account"})
			return
		}

		if user.Type != role {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "This action is not available for your account type"})
			return
		}

		c.Set(ContextUserType, user.Type)
		c.Next()
	}
}
