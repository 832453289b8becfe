package middleware

import (
	"net/http"

	"hospital-admission-backend/internal/models"
	"hospital-admission-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RequireAdminGuard restricts a route to sessions opened through the admin
// guard with an admin role. A web-guard token held by an admin account is
// not enough; the realm must match too.
func RequireAdminGuard(adminGuard string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, roleExists := c.Get("role")
		guard, guardExists := c.Get("guard")
		if !roleExists || !guardExists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		if role != models.RoleAdmin || guard != adminGuard {
			utils.ErrorResponse(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireRole restricts a route to the given account roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
		c.Abort()
	}
}
