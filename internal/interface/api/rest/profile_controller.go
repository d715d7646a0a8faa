package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"servija-api/internal/application/ports"
	"servija-api/internal/interface/api/rest/dto/profile"
	"servija-api/internal/interface/api/rest/middleware"
)

type ProfileController struct {
	profileService ports.ProfileService
	logger         *zap.Logger
}

func NewProfileController(
	r *gin.Engine,
	profileService ports.ProfileService,
	logger *zap.Logger,
	guard Guard,
) *ProfileController {
	pc := &ProfileController{
		profileService: profileService,
		logger:         logger,
	}

	r.GET(RouteProviderProfile, guard.SignedIn(pc.GetProviderProfileHandler)...)
	r.PATCH(RouteProviderProfile, guard.SignedIn(pc.MergeProfileHandler)...)

	return pc
}

func (pc *ProfileController) GetProviderProfileHandler(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	p, err := pc.profileService.GetProviderProfile(c.Request.Context(), u.ID)
	if err != nil {
		respondError(c, pc.logger, "GetProviderProfile()", err, "failed to load profile")
		return
	}

	c.JSON(http.StatusOK, profile.ToResponse(*p))
}

func (pc *ProfileController) MergeProfileHandler(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req profile.MergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	p, err := pc.profileService.MergeProfile(c.Request.Context(), u.ID, profile.ToDomainPatch(req))
	if err != nil {
		respondError(c, pc.logger, "MergeProfile()", err, "failed to save profile")
		return
	}

	c.JSON(http.StatusOK, profile.ToResponse(*p))
}
