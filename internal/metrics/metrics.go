// Package metrics counts and times process evaluations on a private
// Prometheus registry.
package metrics

import (
	"errors"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"moist_air_calc/internal/humidair"
	"moist_air_calc/internal/solver"
)

// error_type label values
const (
	ErrorInvalidArgument      = "invalid_argument"
	ErrorPhysicallyImpossible = "physically_impossible"
	ErrorNotConverged         = "not_converged"
	ErrorOther                = "other"
)

// Collector provides the metrics of one command run.
type Collector struct {
	registry *prometheus.Registry

	EvaluationsTotal   *prometheus.CounterVec
	EvaluationDuration *prometheus.HistogramVec
	ErrorsTotal        *prometheus.CounterVec

	BatchRowsTotal prometheus.Counter
	BatchDuration  prometheus.Histogram
}

// NewCollector creates a collector with its own registry.
func NewCollector(namespace string) *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		EvaluationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evaluations_total",
				Help:      "Total number of evaluations by operation and status",
			},
			[]string{"operation", "status"},
		),

		EvaluationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "evaluation_duration_seconds",
				Help:      "Evaluation duration in seconds by operation",
				Buckets:   []float64{1e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3, 5e-3, 0.01, 0.1},
			},
			[]string{"operation"},
		),

		ErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total number of failed evaluations by operation and error type",
			},
			[]string{"operation", "error_type"},
		),

		BatchRowsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "batch_rows_processed_total",
				Help:      "Total number of table rows evaluated",
			},
		),

		BatchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "batch_duration_seconds",
				Help:      "Duration of table evaluations in seconds",
				Buckets:   []float64{0.001, 0.01, 0.1, 1, 10, 60},
			},
		),
	}
}

// Registry returns the registry holding the collector metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Timer provides timing functionality for operations
type Timer struct {
	start    time.Time
	observer prometheus.Observer
}

// NewTimer creates a new timer
func (c *Collector) NewTimer(histogram prometheus.Observer) *Timer {
	return &Timer{
		start:    time.Now(),
		observer: histogram,
	}
}

// ObserveDuration records the elapsed time since timer creation
func (t *Timer) ObserveDuration() time.Duration {
	duration := time.Since(t.start)
	if t.observer != nil {
		t.observer.Observe(duration.Seconds())
	}
	return duration
}

// Observe runs fn as the named operation, timing it and counting its
// outcome. The error of fn is returned unchanged.
func (c *Collector) Observe(operation string, fn func() error) error {
	timer := c.NewTimer(c.EvaluationDuration.WithLabelValues(operation))
	err := fn()
	timer.ObserveDuration()

	if err != nil {
		c.EvaluationsTotal.WithLabelValues(operation, "error").Inc()
		c.ErrorsTotal.WithLabelValues(operation, ErrorType(err)).Inc()
		return err
	}
	c.EvaluationsTotal.WithLabelValues(operation, "ok").Inc()
	return nil
}

// RecordBatch counts the rows of a table evaluation.
func (c *Collector) RecordBatch(rows int, duration time.Duration) {
	c.BatchRowsTotal.Add(float64(rows))
	c.BatchDuration.Observe(duration.Seconds())
}

// ErrorType classifies err for the error_type label.
func ErrorType(err error) string {
	switch {
	case errors.Is(err, humidair.ErrInvalidArgument):
		return ErrorInvalidArgument
	case errors.Is(err, humidair.ErrPhysicallyImpossible):
		return ErrorPhysicallyImpossible
	case errors.Is(err, solver.ErrNotConverged):
		return ErrorNotConverged
	default:
		return ErrorOther
	}
}

// WriteText writes every gathered metric family in the text exposition
// format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
