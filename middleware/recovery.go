package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ariebrainware/dentist-api/util"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Recovery turns panics into 500 responses and reports server errors to
// Sentry when a client is configured.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		hub := sentry.CurrentHub().Clone()
		hub.Scope().SetRequest(c.Request)
		if id := GetRequestID(c); id != "" {
			hub.Scope().SetTag("request_id", id)
		}

		defer func() {
			if r := recover(); r != nil {
				if err, ok := r.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(r)
				}
				log.Error().
					Str("path", c.Request.URL.Path).
					Str("request_id", GetRequestID(c)).
					Interface("panic", r).
					Msg("recovered from panic")
				if hub.Client() != nil {
					hub.RecoverWithContext(c.Request.Context(), r)
				}
				util.CallServerError(c, util.APIErrorParams{Err: fmt.Errorf("panic: %v", r)})
			}
		}()

		c.Next()

		if c.Writer.Status() >= http.StatusInternalServerError && len(c.Errors) > 0 {
			log.Error().
				Str("path", c.Request.URL.Path).
				Str("request_id", GetRequestID(c)).
				Str("errors", c.Errors.String()).
				Msg("server error")
			if hub.Client() != nil {
				for _, e := range c.Errors {
					hub.CaptureException(e.Err)
				}
			}
		}
	}
}
