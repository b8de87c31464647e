package logger

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HeaderRequestID carries the request correlation identifier.
const HeaderRequestID = "X-Request-Id"

// MiddlewareConfig tunes the request logging middleware.
type MiddlewareConfig struct {
	// SkipPaths lists routes that are never logged (health probes).
	SkipPaths []string
}

// GinMiddleware assigns a request ID, echoes it on the response, and logs one
// line per request with masked headers at debug level.
func GinMiddleware(cfg MiddlewareConfig) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skip[path] = struct{}{}
	}

	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set(HeaderRequestID, requestID)
		c.Set("request_id", requestID)

		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		log := FromContext(c.Request.Context()).With(
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
		if ce := log.Check(zap.DebugLevel, "http request"); ce != nil {
			ce.Write(zap.Any("headers", MaskHeaders(c.Request.Header)))
			return
		}
		log.Info("http request")
	}
}
