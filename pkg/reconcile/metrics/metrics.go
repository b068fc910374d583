package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the reconciliation module.
type Metrics struct {
	// Successful conversions, corrected or not
	Conversions prometheus.Counter

	// Corrections applied before agreement, by stage
	Corrections *prometheus.CounterVec

	// Conversions abandoned, by reason
	Failures *prometheus.CounterVec

	// Calibration measurements actually taken, by unit
	CalibrationMeasurements *prometheus.CounterVec

	// Overall conversion latency
	ConvertLatency prometheus.Histogram
}

// New creates a new Metrics instance with all reconciliation metrics registered.
func New() *Metrics {
	return &Metrics{
		Conversions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tempus_reconcile_conversions_total",
			Help: "Total reconciled conversions that produced a timestamp",
		}),

		Corrections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tempus_reconcile_corrections_total",
			Help: "Total corrections applied during reconciliation by stage",
		}, []string{"stage"}), // stage: "offset", "probe_forward", "probe_backward"

		Failures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tempus_reconcile_failures_total",
			Help: "Total conversions abandoned by reason",
		}, []string{"reason"}), // reason: "invalid", "engine_fault", "unreconcilable"

		CalibrationMeasurements: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tempus_calibrate_measurements_total",
			Help: "Total unit calibration measurements taken against the platform",
		}, []string{"unit"}), // unit: "day", "hour", "second"

		ConvertLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tempus_reconcile_convert_duration_seconds",
			Help:    "Duration of reconciled conversions including corrections",
			Buckets: []float64{0.000005, 0.00001, 0.000025, 0.00005, 0.0001, 0.00025, 0.0005, 0.001},
		}),
	}
}

// IncrementConversions records a conversion that reached agreement.
func (m *Metrics) IncrementConversions() {
	if m != nil {
		m.Conversions.Inc()
	}
}

// IncrementCorrection records one correction attempt at the named stage.
func (m *Metrics) IncrementCorrection(stage string) {
	if m != nil {
		m.Corrections.WithLabelValues(stage).Inc()
	}
}

// IncrementFailure records an abandoned conversion.
func (m *Metrics) IncrementFailure(reason string) {
	if m != nil {
		m.Failures.WithLabelValues(reason).Inc()
	}
}

// IncrementCalibrationMeasurement records a calibration pass for a unit.
func (m *Metrics) IncrementCalibrationMeasurement(unit string) {
	if m != nil {
		m.CalibrationMeasurements.WithLabelValues(unit).Inc()
	}
}

// ObserveConvertLatency records the total reconciled conversion duration.
func (m *Metrics) ObserveConvertLatency(d time.Duration) {
	if m != nil {
		m.ConvertLatency.Observe(d.Seconds())
	}
}
