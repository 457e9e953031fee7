package config

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SlowRequestThreshold marks requests logged as slow.
const SlowRequestThreshold = 200 * time.Millisecond

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dashboard_http_request_duration_seconds",
	Help:    "HTTP request latency by route and status.",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route", "status"})

func PerformanceLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// Process request
		c.Next()

		latency := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		requestDuration.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Observe(latency.Seconds())

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", latency,
		}
		if latency > SlowRequestThreshold {
			logger.Warn("slow request", attrs...)
			return
		}
		logger.Info("request", attrs...)
	}
}
