// Package metrics exposes Prometheus instrumentation for the HTTP surface.
//
// Wire it up once in cmd/app/main.go:
//
//	e.Use(metrics.Middleware())
//	e.GET("/metrics", metrics.Handler())
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "space_store",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	requestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "space_store",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	requestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "space_store",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})
)

func init() {
	prometheus.MustRegister(requestDuration, requestTotal, requestInFlight)
}

// Middleware records duration, count and in-flight gauge per request,
// labelled by the registered route path so ids don't explode cardinality.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestInFlight.Inc()
			start := time.Now()

			err := next(c)

			requestInFlight.Dec()
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			labels := []string{c.Request().Method, c.Path(), strconv.Itoa(status)}
			requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			requestTotal.WithLabelValues(labels...).Inc()
			return err
		}
	}
}

// Handler serves the /metrics scrape endpoint.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
