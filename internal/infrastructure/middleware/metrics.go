package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/observability"
)

const unmatchedRoute = "unmatched"

// Metrics records request count and latency per route template, so ids in
// paths never become label values.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.ObserveRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
