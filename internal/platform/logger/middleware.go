package logger

import (
	"crypto/rand"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

const (
	RequestIDHeader = "X-Request-ID"
	ctxLoggerKey    = "logger"
)

const maxRequestIDLen = 64

// validRequestID accepts up to 64 characters of [A-Za-z0-9-].
func validRequestID(s string) bool {
	if s == "" || len(s) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9', ch == '-':
		default:
			return false
		}
	}
	return true
}

func newRequestID(t time.Time) string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// RequestLogger stamps each request with a ULID and writes one access line
// per request. Handlers reach the request-scoped logger through FromContext.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// 1. reuse the caller's id when it is well-formed, otherwise mint one
		rid := c.GetHeader(RequestIDHeader)
		if !validRequestID(rid) {
			rid = newRequestID(start)
		}
		c.Header(RequestIDHeader, rid)

		// 2. request-scoped logger for the handlers
		l := defaultLogger.With().Str("request_id", rid).Logger()
		c.Set(ctxLoggerKey, l)

		c.Next()

		// 3. one access line, level by status
		status := c.Writer.Status()
		var ev *zerolog.Event
		switch {
		case status >= 500:
			ev = l.Error()
		case status >= 400:
			ev = l.Warn()
		default:
			ev = l.Info()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// FromContext falls back to the package logger outside of RequestLogger.
func FromContext(c *gin.Context) zerolog.Logger {
	if v, ok := c.Get(ctxLoggerKey); ok {
		if l, ok := v.(zerolog.Logger); ok {
			return l
		}
	}
	return defaultLogger
}
