// Package metrics wires Prometheus instrumentation for the HTTP surface.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the instrument set served at /metrics.
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New builds a fresh registry with the service's instruments. Each test
// gets its own registry, so there are no global registration conflicts.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	auto := promauto.With(reg)
	return &Metrics{
		registry: reg,
		requests: auto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "football_stats_http_requests_total",
				Help: "HTTP requests processed, labeled by method, table and status.",
			},
			[]string{"method", "table", "status"},
		),
		duration: auto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "football_stats_http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "table"},
		),
	}
}

// Middleware records count and latency for every request. The "table"
// query parameter is the routing key of the API, so it stands in for a
// route label; it is a small closed set, no cardinality risk.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		table := c.Query("table")
		if table == "" {
			table = "none"
		}
		c.Next()
		m.requests.WithLabelValues(c.Request.Method, table, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(c.Request.Method, table).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
