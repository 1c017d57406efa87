package controller

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

// Reconcile results.
const (
	resultSuccess = "success"
	resultError   = "error"
	resultSkipped = "skipped"
)

// Status patch outcomes.
const (
	patchWritten    = "written"
	patchSuppressed = "suppressed"
)

var (
	// Reconciliation metrics
	reconcileTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netbox_operator",
			Subsystem: "controller",
			Name:      "reconcile_total",
			Help:      "Total number of reconciliations by kind and result",
		},
		[]string{"kind", "result"},
	)

	reconcileDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "netbox_operator",
			Subsystem: "controller",
			Name:      "reconcile_duration_seconds",
			Help:      "Duration of reconciliation in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~10s
		},
		[]string{"kind"},
	)

	statusPatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netbox_operator",
			Subsystem: "controller",
			Name:      "status_patches_total",
			Help:      "Status transitions by kind, written or suppressed as unchanged",
		},
		[]string{"kind", "outcome"},
	)

	driftDetectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netbox_operator",
			Subsystem: "controller",
			Name:      "drift_detected_total",
			Help:      "NetBox records found deleted behind a Created resource",
		},
		[]string{"kind"},
	)

	backoffErrors = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "netbox_operator",
			Subsystem: "controller",
			Name:      "backoff_errors",
			Help:      "Number of resources of a kind currently failing",
		},
		[]string{"kind"},
	)

	// NetBox API metrics
	netboxAPICallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netbox_operator",
			Subsystem: "netbox",
			Name:      "api_calls_total",
			Help:      "Total number of NetBox API calls by operation and result",
		},
		[]string{"operation", "result"},
	)

	netboxAPILatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "netbox_operator",
			Subsystem: "netbox",
			Name:      "api_latency_seconds",
			Help:      "Latency of NetBox API calls in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~20s
		},
		[]string{"operation"},
	)
)

func init() {
	// Register metrics with controller-runtime's registry
	metrics.Registry.MustRegister(
		reconcileTotal,
		reconcileDuration,
		statusPatchesTotal,
		driftDetectedTotal,
		backoffErrors,
		netboxAPICallsTotal,
		netboxAPILatency,
	)
}

// recordReconcileMetric records a reconciliation result.
func recordReconcileMetric(kind, result string, duration float64) {
	reconcileTotal.WithLabelValues(kind, result).Inc()
	reconcileDuration.WithLabelValues(kind).Observe(duration)
}

// recordStatusPatchMetric records whether a status transition was written.
func recordStatusPatchMetric(kind string, written bool) {
	outcome := patchSuppressed
	if written {
		outcome = patchWritten
	}
	statusPatchesTotal.WithLabelValues(kind, outcome).Inc()
}

func recordDriftMetric(kind string) {
	driftDetectedTotal.WithLabelValues(kind).Inc()
}

func recordBackoffMetric(kind string, failing int) {
	backoffErrors.WithLabelValues(kind).Set(float64(failing))
}

// ObserveNetBoxCall records a NetBox API call. It matches netbox.Observer so
// it can be handed to netbox.WithObserver.
func ObserveNetBoxCall(operation, result string, latency time.Duration) {
	netboxAPICallsTotal.WithLabelValues(operation, result).Inc()
	netboxAPILatency.WithLabelValues(operation).Observe(latency.Seconds())
}

// Metrics helper methods that check enableMetrics before recording.

func (r *Reconciler) recordReconcile(result string, started time.Time) {
	if r.enableMetrics {
		recordReconcileMetric(r.kind, result, time.Since(started).Seconds())
	}
}

func (r *Reconciler) recordStatusPatch(written bool) {
	if r.enableMetrics {
		recordStatusPatchMetric(r.kind, written)
	}
}

func (r *Reconciler) recordDrift() {
	if r.enableMetrics {
		recordDriftMetric(r.kind)
	}
}

func (r *Reconciler) recordBackoff() {
	if r.enableMetrics {
		recordBackoffMetric(r.kind, r.tracker.Len())
	}
}
