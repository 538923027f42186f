package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Payment related metrics
	PaymentsRecorded prometheus.Counter
	PaymentFailures  *prometheus.CounterVec
	PaymentAmount    prometheus.Histogram

	// Appointment / tracker metrics
	AppointmentUpdates prometheus.Counter
	TrackerLinkages    prometheus.Counter
	TrackerSkipped     *prometheus.CounterVec

	// Outbound sync metrics
	SyncPushes  *prometheus.CounterVec
	SyncLatency prometheus.Histogram
}

// NewMetrics creates and registers all application metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		PaymentsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_recorded_total",
			Help:      "Total number of patient payments recorded",
		}),
		PaymentFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_failures_total",
			Help:      "Total number of rejected or failed payment requests",
		}, []string{"kind"}),
		PaymentAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "payment_amount",
			Help:      "Distribution of recorded payment amounts",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		AppointmentUpdates: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointment_updates_total",
			Help:      "Total number of successful appointment updates",
		}),
		TrackerLinkages: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tracker_linkages_total",
			Help:      "Total number of appointment-to-encounter linkages created",
		}),
		TrackerSkipped: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tracker_linkages_skipped_total",
			Help:      "Linkage attempts skipped or degraded, by reason",
		}, []string{"reason"}),
		SyncPushes: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_pushes_total",
			Help:      "Outbound patient sync pushes, by operation and outcome",
		}, []string{"operation", "outcome"}),
		SyncLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_push_duration_seconds",
			Help:      "Time spent pushing patient data to the sync endpoint",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}),
	}
}
