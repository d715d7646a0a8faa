package rest

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"servija-api/internal/application/apperr"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
		wantLog  bool
	}{
		{name: "validation", err: apperr.Validation("bad"), wantCode: http.StatusBadRequest, wantMsg: "bad"},
		{name: "unauthorized", err: apperr.Unauthorized("who"), wantCode: http.StatusUnauthorized, wantMsg: "who"},
		{name: "forbidden", err: apperr.Forbidden("no"), wantCode: http.StatusForbidden, wantMsg: "no"},
		{name: "not found", err: apperr.NotFound("gone"), wantCode: http.StatusNotFound, wantMsg: "gone"},
		{name: "conflict", err: apperr.Conflict("taken", errors.New("23505")), wantCode: http.StatusConflict, wantMsg: "taken"},
		{
			name:     "wrapped typed error",
			err:      fmt.Errorf("merge: %w", apperr.NotFound("gone")),
			wantCode: http.StatusNotFound,
			wantMsg:  "gone",
		},
		{name: "internal", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantMsg: "fallback", wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.ErrorLevel)
			rr := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rr)

			respondError(c, zap.New(core), "Op()", tt.err, "fallback")

			require.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantMsg, decode(t, rr)["error"])
			assert.Equal(t, tt.wantLog, logs.Len() == 1)
		})
	}
}
