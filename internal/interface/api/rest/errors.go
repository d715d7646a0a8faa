package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"servija-api/internal/application/apperr"
)

var kindStatus = map[apperr.Kind]int{
	apperr.KindValidation:   http.StatusBadRequest,
	apperr.KindUnauthorized: http.StatusUnauthorized,
	apperr.KindForbidden:    http.StatusForbidden,
	apperr.KindNotFound:     http.StatusNotFound,
	apperr.KindConflict:     http.StatusConflict,
}

// respondError answers typed service errors with their status. Anything else
// is logged under op and answered 500 with the fallback message.
func respondError(c *gin.Context, logger *zap.Logger, op string, err error, fallback string) {
	if e, ok := apperr.As(err); ok {
		if status, known := kindStatus[e.Kind]; known {
			body := gin.H{"error": e.Message}
			if len(e.Details) > 0 {
				body["details"] = e.Details
			}
			c.JSON(status, body)
			return
		}
	}

	logger.Error(op+" error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

func invalidBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid request body",
		"details": err.Error(),
	})
}

func invalidParam(c *gin.Context, name string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a valid UUID"})
}
