package middleware

import (
	"fmt"
	"runtime"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/voicedoc/clinic-api/internal/httperr"
)

// Recovery turns panics into 500 responses, logging the stack and reporting
// the panic to Sentry when a client is configured.
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				var stack [4096]byte
				n := runtime.Stack(stack[:], false)

				logger.Error().
					Str("request_id", c.GetString(ContextRequestID)).
					Str("panic", fmt.Sprintf("%v", r)).
					Str("stack", string(stack[:n])).
					Msg("panic recovered")

				hub := sentry.CurrentHub().Clone()
				hub.Scope().SetRequest(c.Request)
				hub.Scope().SetTag("request_id", c.GetString(ContextRequestID))
				hub.Recover(r)

				c.Abort()
				httperr.Internal(c, "internal_error", "internal server error")
			}
		}()
		c.Next()
	}
}
