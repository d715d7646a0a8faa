package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"servija-api/internal/application/ports"
	"servija-api/internal/interface/api/rest/dto/auth"
	"servija-api/internal/interface/api/rest/dto/user"
	"servija-api/internal/interface/api/rest/middleware"
	"servija-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger      *zap.Logger
	authService ports.AuthService
}

// NewAuthController mounts the sign-up and sign-in routes behind limiter.
func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.AuthService,
	guard Guard,
	limiter gin.HandlerFunc,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
	}

	r.POST(RouteRegister, limiter, ac.RegisterHandler)
	r.POST(RouteLogin, limiter, ac.LoginHandler)
	r.GET(RouteMe, guard.SignedIn(ac.MeHandler)...)
	r.PATCH(RouteMe, guard.SignedIn(ac.UpdateMeHandler)...)

	return ac
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	session, err := ac.authService.Register(c.Request.Context(), auth.ToDomainRegistration(req))
	if err != nil {
		respondError(c, ac.logger, "Register()", err, "failed to register")
		return
	}

	c.JSON(http.StatusCreated, auth.ToResponseSession(*session))
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	session, err := ac.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, ac.logger, "Login()", err, "failed to sign in")
		return
	}

	c.JSON(http.StatusOK, auth.ToResponseSession(*session))
}

func (ac *AuthController) MeHandler(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (ac *AuthController) UpdateMeHandler(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req user.PatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	updated, err := ac.authService.UpdateMe(c.Request.Context(), u.ID, user.ToDomainPatch(req))
	if err != nil {
		respondError(c, ac.logger, "UpdateMe()", err, "failed to update account")
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*updated))
}
