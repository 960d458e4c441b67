package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"teamboard/internal/adapter/http/middleware"
	"teamboard/internal/core/domain"
	"teamboard/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// errorMessages names the translation keys a handler answers with when a
// service call fails.
type errorMessages struct {
	invalid   string
	duplicate string
	failure   string
}

func writeError(c *gin.Context, code int, msgKey string) {
	c.JSON(code, apierrors.CreateError(code, msgKey, middleware.GetLang(c)).WithRequestID(middleware.GetRequestID(c)))
}

// writeServiceError maps domain errors to HTTP statuses. Anything it does not
// recognise is logged and answered with 500.
func writeServiceError(c *gin.Context, err error, msgs errorMessages, logMsg string, fields ...zap.Field) {
	switch {
	case domain.IsValidationError(err):
		writeError(c, http.StatusBadRequest, msgs.invalid)
	case errors.Is(err, domain.ErrTaskNotFound):
		writeError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
	case errors.Is(err, domain.ErrUserNotFound):
		writeError(c, http.StatusNotFound, apierrors.MsgUserNotFound)
	case errors.Is(err, domain.ErrShopNotFound):
		writeError(c, http.StatusNotFound, apierrors.MsgShopNotFound)
	case errors.Is(err, domain.ErrChannelNotFound):
		writeError(c, http.StatusNotFound, apierrors.MsgChannelNotFound)
	case errors.Is(err, domain.ErrDuplicate) && msgs.duplicate != "":
		writeError(c, http.StatusConflict, msgs.duplicate)
	default:
		zap.L().Error(logMsg, append(fields, zap.Error(err), zap.String("request_id", middleware.GetRequestID(c)))...)
		writeError(c, http.StatusInternalServerError, msgs.failure)
	}
}

func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// bindJSONWithRaw binds the body into req and also returns its top-level
// fields, so callers can tell an explicit null from an absent field.
func bindJSONWithRaw(c *gin.Context, req any) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if err := binding.JSON.BindBody(body, req); err != nil {
		return nil, err
	}
	return raw, nil
}
