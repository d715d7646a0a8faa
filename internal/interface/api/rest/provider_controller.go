package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"servija-api/internal/application/ports"
	domain "servija-api/internal/domain/provider"
	"servija-api/internal/interface/api/rest/dto/provider"
	"servija-api/internal/interface/api/rest/validator"
)

type ProviderController struct {
	providerService ports.ProviderService
	logger          *zap.Logger
}

func NewProviderController(
	r *gin.Engine,
	providerService ports.ProviderService,
	logger *zap.Logger,
	guard Guard,
) *ProviderController {
	pc := &ProviderController{
		providerService: providerService,
		logger:          logger,
	}

	r.GET(RouteProviders, pc.GetProvidersHandler)
	r.GET(RouteProvider, pc.GetProviderHandler)
	r.PATCH(RouteProvider, guard.Admin(pc.ModerateProviderHandler)...)

	return pc
}

func (pc *ProviderController) GetProvidersHandler(c *gin.Context) {
	var (
		f    domain.Filter
		errs = make(map[string]string)
		err  error
	)
	if f.CategoryID, err = validator.QueryUUID(c.Query("categoria_id")); err != nil {
		errs["categoria_id"] = err.Error()
	}
	if f.UserID, err = validator.QueryUUID(c.Query("user_id")); err != nil {
		errs["user_id"] = err.Error()
	}
	if f.Active, err = validator.QueryBool(c.Query("ativo")); err != nil {
		errs["ativo"] = err.Error()
	}
	if f.Featured, err = validator.QueryBool(c.Query("destaque")); err != nil {
		errs["destaque"] = err.Error()
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid query",
			"details": errs,
		})
		return
	}
	f.UserEmail = validator.QueryString(c.Query("user_email"))

	ps, err := pc.providerService.FindProviders(c.Request.Context(), f)
	if err != nil {
		respondError(c, pc.logger, "FindProviders()", err, "failed to get providers")
		return
	}

	c.JSON(http.StatusOK, provider.ResponseItems{
		Items: provider.ToResponseProviders(ps),
	})
}

func (pc *ProviderController) GetProviderHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("provider_id"))
	if !ok {
		invalidParam(c, "provider_id")
		return
	}

	p, err := pc.providerService.FindProviderByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, pc.logger, "FindProviderByID()", err, "failed to get a provider")
		return
	}

	c.JSON(http.StatusOK, provider.ToResponseProvider(*p))
}

func (pc *ProviderController) ModerateProviderHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("provider_id"))
	if !ok {
		invalidParam(c, "provider_id")
		return
	}

	var req provider.ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	p, err := pc.providerService.ModerateProvider(c.Request.Context(), id, provider.ToDomainModeration(req))
	if err != nil {
		respondError(c, pc.logger, "ModerateProvider()", err, "failed to update a provider")
		return
	}

	c.JSON(http.StatusOK, provider.ToResponseProvider(*p))
}
