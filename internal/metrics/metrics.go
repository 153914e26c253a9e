// Package metrics exposes Prometheus collectors for the signup lifecycle and HTTP layer.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "churchserve"

var (
	SignupsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "signups",
		Name:      "created_total",
		Help:      "The total number of volunteer signups created",
	})

	SignupsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "signups",
		Name:      "cancelled_total",
		Help:      "The total number of volunteer signups cancelled (deleted)",
	})

	SignupStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "signups",
		Name:      "status_changes_total",
		Help:      "The total number of signup status updates",
	}, []string{"from", "to"})

	CounterDrift = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "opportunities",
		Name:      "counter_drift_total",
		Help:      "Decrements of current_volunteers blocked at zero",
	})

	CountersRepaired = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "opportunities",
		Name:      "counters_repaired_total",
		Help:      "Opportunities whose current_volunteers was rewritten by reconciliation",
	})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Middleware records request latency keyed by the gin route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestDuration.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Server serves /metrics on its own listener.
type Server struct {
	server *http.Server
}

// NewServer returns a metrics server bound to addr.
func NewServer(addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
		},
	}
}

// ListenAndServe starts the metrics server.
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the metrics server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
