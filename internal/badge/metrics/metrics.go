package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the badge registry.
type Metrics struct {
	// Mint outcomes by path ("self"/"admin") and result (rejection code or "ok")
	MintOutcome *prometheus.CounterVec

	// Administrator mints issued below the self-service floor
	BelowFloorMints prometheus.Counter

	// Rejected transfer/approval attempts by operation
	SoulboundRejections *prometheus.CounterVec

	// Registry operation latency by operation
	OperationLatency *prometheus.HistogramVec
}

// New creates a Metrics instance with all badge registry metrics registered.
func New() *Metrics {
	return &Metrics{
		MintOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "merit_badge_mints_total",
			Help: "Total mint attempts by path and result",
		}, []string{"path", "result"}),

		BelowFloorMints: promauto.NewCounter(prometheus.CounterOpts{
			Name: "merit_badge_below_floor_mints_total",
			Help: "Administrator mints issued below the self-service score floor",
		}),

		SoulboundRejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "merit_badge_soulbound_rejections_total",
			Help: "Rejected transfer and approval attempts by operation",
		}, []string{"operation"}),

		OperationLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "merit_badge_operation_duration_seconds",
			Help:    "Duration of registry operations",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
	}
}

// IncrementMintOutcome records a mint attempt result.
func (m *Metrics) IncrementMintOutcome(path, result string) {
	if m != nil {
		m.MintOutcome.WithLabelValues(path, result).Inc()
	}
}

// IncrementBelowFloorMint records an administrator attestation mint under the
// floor.
func (m *Metrics) IncrementBelowFloorMint() {
	if m != nil {
		m.BelowFloorMints.Inc()
	}
}

// IncrementSoulboundRejection records a rejected transfer or approval.
func (m *Metrics) IncrementSoulboundRejection(operation string) {
	if m != nil {
		m.SoulboundRejections.WithLabelValues(operation).Inc()
	}
}

// ObserveOperationLatency records the duration of a registry operation.
func (m *Metrics) ObserveOperationLatency(operation string, d time.Duration) {
	if m != nil {
		m.OperationLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}
