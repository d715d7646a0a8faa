package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"servija-api/internal/application/ports"
	"servija-api/internal/infrastructure/jwt"
	"servija-api/internal/interface/api/rest/middleware"
)

// Guard holds the middleware chains routes are mounted behind.
type Guard struct {
	signedIn []gin.HandlerFunc
	admin    []gin.HandlerFunc
}

func NewGuard(jwtService *jwt.Service, authService ports.AuthService, logger *zap.Logger) Guard {
	signedIn := []gin.HandlerFunc{
		middleware.AuthMiddleware(jwtService),
		middleware.ActiveAccount(authService, logger),
	}
	return Guard{
		signedIn: signedIn,
		admin:    chain(signedIn, []gin.HandlerFunc{middleware.RequireAdmin()}),
	}
}

// SignedIn prefixes h with token validation and the active-account check.
func (g Guard) SignedIn(h ...gin.HandlerFunc) []gin.HandlerFunc {
	return chain(g.signedIn, h)
}

// Admin additionally requires an administrator.
func (g Guard) Admin(h ...gin.HandlerFunc) []gin.HandlerFunc {
	return chain(g.admin, h)
}

func chain(prefix, h []gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(prefix)+len(h))
	out = append(out, prefix...)
	return append(out, h...)
}
