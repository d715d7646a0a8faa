package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"servija-api/internal/application/ports"
	domain "servija-api/internal/domain/request"
	"servija-api/internal/interface/api/rest/dto/request"
	"servija-api/internal/interface/api/rest/middleware"
	"servija-api/internal/interface/api/rest/validator"
)

// RequestController serves service requests. Every route needs a signed-in
// account; visibility is decided by the service.
type RequestController struct {
	requestService ports.RequestService
	logger         *zap.Logger
}

func NewRequestController(
	r *gin.Engine,
	requestService ports.RequestService,
	logger *zap.Logger,
	guard Guard,
) *RequestController {
	rc := &RequestController{
		requestService: requestService,
		logger:         logger,
	}

	r.GET(RouteRequests, guard.SignedIn(rc.GetRequestsHandler)...)
	r.POST(RouteRequests, guard.SignedIn(rc.CreateRequestHandler)...)
	r.GET(RouteRequest, guard.SignedIn(rc.GetRequestHandler)...)
	r.PATCH(RouteRequest, guard.SignedIn(rc.UpdateRequestHandler)...)

	return rc
}

func (rc *RequestController) GetRequestsHandler(c *gin.Context) {
	f := domain.Filter{
		ClientEmail:   validator.QueryString(c.Query("cliente_email")),
		ProviderEmail: validator.QueryString(c.Query("prestador_email")),
	}
	if s := validator.QueryString(c.Query("status")); s != nil {
		status := domain.Status(*s)
		f.Status = &status
	}

	rs, err := rc.requestService.FindRequests(c.Request.Context(), middleware.CurrentUser(c), f)
	if err != nil {
		respondError(c, rc.logger, "FindRequests()", err, "failed to get requests")
		return
	}

	c.JSON(http.StatusOK, request.ResponseItems{
		Items: request.ToResponseRequests(rs),
	})
}

func (rc *RequestController) GetRequestHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("request_id"))
	if !ok {
		invalidParam(c, "request_id")
		return
	}

	r, err := rc.requestService.FindRequestByID(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondError(c, rc.logger, "FindRequestByID()", err, "failed to get a request")
		return
	}

	c.JSON(http.StatusOK, request.ToResponseRequest(*r))
}

func (rc *RequestController) CreateRequestHandler(c *gin.Context) {
	var req request.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}
	if strings.TrimSpace(req.PrestadorID) == "" || strings.TrimSpace(req.Descricao) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provider and description are required"})
		return
	}
	ok, providerID := validator.IsUUID(strings.TrimSpace(req.PrestadorID))
	if !ok {
		invalidParam(c, "prestador_id")
		return
	}

	created, err := rc.requestService.CreateRequest(
		c.Request.Context(),
		middleware.CurrentUser(c),
		request.ToDomainDraft(req, providerID),
	)
	if err != nil {
		respondError(c, rc.logger, "CreateRequest()", err, "failed to create a request")
		return
	}

	c.JSON(http.StatusCreated, request.ToResponseRequest(*created))
}

func (rc *RequestController) UpdateRequestHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("request_id"))
	if !ok {
		invalidParam(c, "request_id")
		return
	}

	var req request.PatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	updated, err := rc.requestService.UpdateRequest(
		c.Request.Context(),
		middleware.CurrentUser(c),
		id,
		request.ToDomainPatch(req),
	)
	if err != nil {
		respondError(c, rc.logger, "UpdateRequest()", err, "failed to update a request")
		return
	}

	c.JSON(http.StatusOK, request.ToResponseRequest(*updated))
}
