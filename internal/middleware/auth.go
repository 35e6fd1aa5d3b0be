package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/parths301/aib-hub/internal/auth"
	"github.com/parths301/aib-hub/internal/logger"
	"github.com/parths301/aib-hub/internal/models"
	"github.com/parths301/aib-hub/pkg/apperrors"
)

const (
	ctxUserIDKey = "userID"
	ctxRoleKey   = "role"
)

// AuthMiddleware validates the bearer token and stores the caller's
// identity on the request.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("authorization header missing or invalid"))
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			if err == auth.ErrTokenExpired {
				apperrors.HandleError(c, apperrors.New(
					apperrors.CodeTokenExpired, "auth", "token expired", http.StatusUnauthorized))
			} else {
				apperrors.HandleError(c, apperrors.ErrInvalidToken)
			}
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxRoleKey, models.UserRole(claims.Role))

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles gates a route group to the given roles. Runs after
// AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get(ctxRoleKey)
		if !exists {
			apperrors.HandleError(c, apperrors.NewForbiddenError("access denied"))
			c.Abort()
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			apperrors.HandleError(c, apperrors.NewForbiddenError("access denied"))
			c.Abort()
			return
		}

		if !roleSet[role] {
			apperrors.HandleError(c, apperrors.NewForbiddenError("insufficient permissions"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID returns the authenticated user id set by AuthMiddleware.
func GetUserID(c *gin.Context) (string, bool) {
	val, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}
	userID, ok := val.(string)
	return userID, ok && userID != ""
}

// GetRole returns the authenticated role set by AuthMiddleware.
func GetRole(c *gin.Context) (models.UserRole, bool) {
	val, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	role, ok := val.(models.UserRole)
	return role, ok
}
