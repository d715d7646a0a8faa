package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"servija-api/internal/application/apperr"
	"servija-api/internal/application/ports"
	"servija-api/internal/domain/user"
)

const CtxUser = "user"

// ActiveAccount loads the Identity behind the token. Tokens of deleted
// accounts and of deactivated providers are rejected. Must run after
// AuthMiddleware.
func ActiveAccount(authService ports.AuthService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetString(CtxUserID))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		u, err := authService.CurrentUser(c.Request.Context(), id)
		if err != nil {
			if !apperr.IsKind(err, apperr.KindUnauthorized) {
				logger.Error("CurrentUser() error", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load account"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		c.Set(CtxUser, u)
		c.Next()
	}
}

// RequireAdmin must run after ActiveAccount.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil || !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the Identity stored by ActiveAccount, or nil.
func CurrentUser(c *gin.Context) *user.User {
	v, ok := c.Get(CtxUser)
	if !ok {
		return nil
	}
	u, _ := v.(*user.User)
	return u
}
