package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/guard/errors"
	"github.com/kbukum/guard/invariant"
	"github.com/kbukum/guard/logger"
	"github.com/kbukum/guard/resilience"
	"github.com/kbukum/guard/validation"
)

// DataResponse is the standard success envelope.
type DataResponse struct {
	Data any `json:"data"`
}

// AppErrorFor maps err to the AppError a client should see. The second
// result reports whether err is the client's fault. An invariant violation
// is always a server fault, whatever it wraps.
func AppErrorFor(err error) (*apperrors.AppError, bool) {
	if errors.Is(err, invariant.ErrViolation) {
		return apperrors.Internal(err), false
	}
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr, appErr.HTTPStatus < http.StatusInternalServerError
	}
	if resilience.IsNonRetryable(err) {
		if appErr, ok := validation.FromFailure(err); ok {
			return appErr, true
		}
	}
	return apperrors.Internal(err), false
}

// RespondWithError aborts the request with the status and body derived from
// err. Server-side errors are logged at error level when log is not nil.
func RespondWithError(c *gin.Context, log *logger.Logger, err error) {
	appErr, clientFault := AppErrorFor(err)
	if !clientFault && log != nil {
		log.WithError(err).Error("request failed", logger.Fields(
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		))
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}

// RespondOK sends a 200 response wrapping data.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// RespondCreated sends a 201 response wrapping data.
func RespondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, DataResponse{Data: data})
}
