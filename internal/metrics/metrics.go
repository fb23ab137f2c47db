package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCounter counts all HTTP requests with labels
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDuration records request duration in seconds
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	BookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total number of bookings created, by offer category",
		},
		[]string{"category"},
	)

	BookingTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_transitions_total",
			Help: "Booking status transitions applied by providers",
		},
		[]string{"to"},
	)

	PaymentsSettled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payments_settled_total",
			Help: "Simulated payments settled",
		},
	)

	AuthAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Login and registration attempts by outcome",
		},
		[]string{"action", "outcome"},
	)

	TaskRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scheduled_task_runs_total",
			Help: "Scheduled task executions by task and status",
		},
		[]string{"task", "status"},
	)
)

var registerOnce sync.Once

// Register registers the collectors with the default registry. Safe to call
// more than once.
func Register(namespace string) {
	registerOnce.Do(func() {
		reg := prometheus.WrapRegistererWithPrefix(namespace+"_", prometheus.DefaultRegisterer)
		reg.MustRegister(
			RequestCounter,
			RequestDuration,
			BookingsCreated,
			BookingTransitions,
			PaymentsSettled,
			AuthAttempts,
			TaskRuns,
		)
	})
}

// Middleware records request count and latency per route
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			statusStr := strconv.Itoa(status)
			method := c.Request().Method
			path := c.Path()

			RequestCounter.WithLabelValues(method, path, statusStr).Inc()
			RequestDuration.WithLabelValues(method, path, statusStr).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Handler exposes the registered metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
