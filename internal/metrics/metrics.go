// Package metrics provides Prometheus metrics collection for the waitlist service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// SeatingPlansTotal tracks seating plan runs by outcome.
	SeatingPlansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seating_plans_total",
			Help: "Total number of seating plans computed",
		},
		[]string{"status"},
	)

	// SeatingPlanDuration tracks how long a planning run takes.
	SeatingPlanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seating_plan_duration_seconds",
			Help:    "Seating plan duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// SeatingWastedSeats tracks wasted seats per successful plan.
	SeatingWastedSeats = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seating_wasted_seats",
			Help:    "Wasted seats per seating plan",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
		},
	)

	// NotifierSubscribers tracks live real-time subscribers.
	NotifierSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notifier_subscribers",
			Help: "Current number of queue change subscribers",
		},
	)

	// NotifierEventsPublished tracks published change events by kind.
	NotifierEventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_events_published_total",
			Help: "Total number of queue change events published",
		},
		[]string{"event"},
	)

	// NotifierDeliveries tracks per-subscriber delivery attempts.
	NotifierDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_deliveries_total",
			Help: "Total number of event deliveries by result",
		},
		[]string{"result"},
	)

	// NotifierPruned tracks subscribers removed by the notifier.
	NotifierPruned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_subscribers_pruned_total",
			Help: "Total number of subscribers pruned",
		},
		[]string{"reason"},
	)

	// CircuitBreakerState exposes breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 open, 2 half-open",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordSeatingPlan records metrics for a seating plan run.
// wasted is ignored unless status is "success".
func RecordSeatingPlan(duration time.Duration, status string, wasted int) {
	SeatingPlanDuration.Observe(duration.Seconds())
	SeatingPlansTotal.WithLabelValues(status).Inc()
	if status == "success" {
		SeatingWastedSeats.Observe(float64(wasted))
	}
}

// RecordPublish records a published change event and the outcome of each delivery.
func RecordPublish(event string, delivered, dropped int) {
	NotifierEventsPublished.WithLabelValues(event).Inc()
	if delivered > 0 {
		NotifierDeliveries.WithLabelValues("delivered").Add(float64(delivered))
	}
	if dropped > 0 {
		NotifierDeliveries.WithLabelValues("dropped").Add(float64(dropped))
	}
}

// RecordPrune records a subscriber removed for the given reason.
func RecordPrune(reason string) {
	NotifierPruned.WithLabelValues(reason).Inc()
}

// SetSubscribers updates the live subscriber gauge.
func SetSubscribers(n int) {
	NotifierSubscribers.Set(float64(n))
}

// SetCircuitBreakerState updates the breaker state gauge.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
