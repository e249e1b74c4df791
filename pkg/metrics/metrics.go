package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Result labels for TotalsCalculations
const (
	ResultOK      = "ok"
	ResultInvalid = "invalid"
	ResultZero    = "zero"
	ResultError   = "error"
)

var (
	// TotalsCalculations counts calculator runs per document type and outcome.
	TotalsCalculations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "erp",
			Name:      "totals_calculations_total",
			Help:      "Number of order total calculations by document type and result.",
		},
		[]string{"document", "result"},
	)

	// OrderLockWait observes how long a recalculation waited for the per-order lock.
	OrderLockWait = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "erp",
			Name:      "order_lock_wait_seconds",
			Help:      "Time spent waiting for the per-order recalculation lock.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"document"},
	)

	// EventsPublished counts totals events handed to the broker.
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "erp",
			Name:      "events_published_total",
			Help:      "Number of totals events published by document type and result.",
		},
		[]string{"document", "result"},
	)

	// HTTPRequestDuration observes API latency per route.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "erp",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Register adds all collectors to the given registerer.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{TotalsCalculations, OrderLockWait, EventsPublished, HTTPRequestDuration} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}
