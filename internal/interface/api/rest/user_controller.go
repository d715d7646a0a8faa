package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"servija-api/internal/application/ports"
	"servija-api/internal/interface/api/rest/dto/user"
	"servija-api/internal/interface/api/rest/middleware"
	"servija-api/internal/interface/api/rest/validator"
)

// UserController serves the administrator's account management.
type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	guard Guard,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.GET(RouteUsers, guard.Admin(uc.GetUsersHandler)...)
	r.PATCH(RouteUser, guard.Admin(uc.UpdateUserHandler)...)
	r.DELETE(RouteUser, guard.Admin(uc.DeleteUserHandler)...)

	return uc
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	users, err := uc.userService.FindUsers(c.Request.Context())
	if err != nil {
		respondError(c, uc.logger, "FindUsers()", err, "failed to get users")
		return
	}

	c.JSON(http.StatusOK, user.ResponseItems{
		Items: user.ToResponseUsers(users),
	})
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("user_id"))
	if !ok {
		invalidParam(c, "user_id")
		return
	}

	var req user.AdminPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	u, err := uc.userService.AdminUpdateUser(
		c.Request.Context(),
		middleware.CurrentUser(c),
		id,
		user.ToDomainAdminPatch(req),
	)
	if err != nil {
		respondError(c, uc.logger, "AdminUpdateUser()", err, "failed to update a user")
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("user_id"))
	if !ok {
		invalidParam(c, "user_id")
		return
	}

	if err := uc.userService.DeleteUser(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondError(c, uc.logger, "DeleteUser()", err, "failed to delete user")
		return
	}

	c.Status(http.StatusNoContent)
}
