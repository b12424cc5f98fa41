package server

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/guard/logger"
)

// Recovery returns a Gin middleware that recovers from panics. A panic
// carrying an error, such as one raised by check.Must, is rendered like
// RespondWithError would; any other value becomes a 500.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("server")

	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", r)
			}

			appErr, clientFault := AppErrorFor(err)
			if !clientFault {
				log.WithError(err).Error("panic recovered", logger.Fields(
					logger.FieldStack, string(debug.Stack()),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				))
			}
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
		}()
		c.Next()
	}
}
