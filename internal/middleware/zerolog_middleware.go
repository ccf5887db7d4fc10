package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Routes polled by infrastructure, logged at debug so they do not drown out
// the waitlist traffic
var quietRoutes = map[string]bool{
	"GET /api/health":  true,
	"HEAD /api/health": true,
}

type ZerologMiddleware struct{}

func NewZerologMiddleware() *ZerologMiddleware {
	return &ZerologMiddleware{}
}

func (m *ZerologMiddleware) Init() error {
	return nil
}

func (m *ZerologMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		method := c.Request.Method
		path := c.Request.URL.Path

		var event *zerolog.Event

		switch {
		case quietRoutes[method+" "+path]:
			event = log.Debug()
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}

		event.Str("method", method).Str("path", path).Str("clientIp", c.ClientIP()).Int("status", status).Dur("latency", time.Since(start)).Msg("Request")
	}
}
