// Package metrics records run preparation outcomes with Prometheus collectors.
//
// A CLI invocation is short-lived, so instead of serving /metrics the collectors are flushed
// to a file in the node exporter textfile format.
package metrics

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/runargs"
	"github.com/aretw0/runargs/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Failure reasons used as the "reason" label.
const (
	ReasonConfiguration = "configuration"
	ReasonIO            = "io"
	ReasonCanceled      = "canceled"
)

// Recorder owns a private registry so tests and concurrent users do not share state.
type Recorder struct {
	registry  *prometheus.Registry
	prepared  *prometheus.CounterVec
	failures  *prometheus.CounterVec
	arguments *prometheus.GaugeVec
	duration  prometheus.Histogram
}

// New creates a Recorder with its collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		prepared: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "runargs_runs_prepared_total",
				Help: "Total number of runs whose argument files were written",
			},
			[]string{"run_type", "variant"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "runargs_run_failures_total",
				Help: "Total number of run preparations that failed",
			},
			[]string{"reason"},
		),
		arguments: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "runargs_arguments",
				Help: "Number of arguments written by the last preparation of a run type",
			},
			[]string{"run_type", "kind"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "runargs_prepare_duration_seconds",
				Help:    "Duration of a full prepare invocation",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
			},
		),
	}
	r.registry.MustRegister(r.prepared, r.failures, r.arguments, r.duration)
	return r
}

// Hooks returns writer hooks that feed this recorder.
func (r *Recorder) Hooks() runargs.Hooks {
	return runargs.Hooks{
		OnPrepared: func(_ context.Context, res *runargs.Result) {
			r.prepared.WithLabelValues(res.RunType, res.Variant).Inc()
			r.arguments.WithLabelValues(res.RunType, "jvm").Set(float64(res.JVMArguments))
			r.arguments.WithLabelValues(res.RunType, "program").Set(float64(res.ProgramArguments))
		},
		OnFailed: func(_ context.Context, _ *runargs.Request, err error) {
			r.failures.WithLabelValues(Reason(err)).Inc()
		},
	}
}

// StartTimer starts timing an invocation; call the returned func when it ends.
func (r *Recorder) StartTimer() func() {
	timer := prometheus.NewTimer(r.duration)
	return func() { timer.ObserveDuration() }
}

// Gatherer exposes the registry, mainly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes every collector to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}

// Reason classifies err for the failures counter.
func Reason(err error) string {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ReasonCanceled
	case domain.IsConfigurationError(err):
		return ReasonConfiguration
	default:
		return ReasonIO
	}
}
