package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestLogger attaches a request-scoped logger to the request context,
// logs one line per request and recovers from panics.
func RequestLogger(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := requestID(c)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header("X-Request-ID", reqID)

		l := base.With().Str("request_id", reqID).Logger()
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))

		defer func() {
			if recovered := recover(); recovered != nil {
				l.Error().
					Err(fmt.Errorf("%v", recovered)).
					Str("stack", string(debug.Stack())).
					Msg("panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal Server Error",
				})
			}
			logRequest(c, l, start)
		}()

		c.Next()
	}
}

func logRequest(c *gin.Context, l zerolog.Logger, start time.Time) {
	status := c.Writer.Status()

	var ev *zerolog.Event
	switch {
	case status >= http.StatusInternalServerError:
		ev = l.Error()
	case status >= http.StatusBadRequest:
		ev = l.Warn()
	default:
		ev = l.Info()
	}

	if len(c.Errors) > 0 {
		errs := make([]error, 0, len(c.Errors))
		for _, e := range c.Errors {
			errs = append(errs, e.Err)
		}
		ev = ev.Errs("errors", errs)
	}

	ev.Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("query", c.Request.URL.RawQuery).
		Int("status", status).
		Int("size", c.Writer.Size()).
		Str("client_ip", c.ClientIP()).
		Dur("latency", time.Since(start)).
		Msg("request")
}

func requestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = c.GetHeader("X-Request-Id")
	}
	return requestID
}
