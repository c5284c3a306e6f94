// Package metrics records configurator transactions as Prometheus metrics.
// A one-shot CLI has no scrape endpoint, so the registry is written to a
// node_exporter textfile on demand.
package metrics

import (
	"fmt"
	"time"

	"darwin-nic/internal/types"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "darwin_nic"

// Recorder holds the transaction metrics. A nil *Recorder discards everything.
type Recorder struct {
	registry *prometheus.Registry

	Transactions  *prometheus.CounterVec
	StepDuration  *prometheus.HistogramVec
	ProbeFailures *prometheus.CounterVec
	Rollbacks     prometheus.Counter
	Candidates    prometheus.Gauge
	LastRun       prometheus.Gauge
}

// NewRecorder creates a recorder backed by its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		Transactions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_total",
			Help:      "Configuration transactions by final state.",
		}, []string{"state", "dry_run"}),
		StepDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Time spent in each transaction state.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		}, []string{"state"}),
		ProbeFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "probe_failures_total",
			Help:      "Failed reachability probes by kind.",
		}, []string{"kind"}),
		Rollbacks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rollbacks_total",
			Help:      "Transactions that entered the rolling back state.",
		}),
		Candidates: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "usb_candidates",
			Help:      "Eligible USB interfaces found by the last detection pass.",
		}),
		LastRun: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last transaction finished.",
		}),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveStep records the time spent in a state.
func (r *Recorder) ObserveStep(state types.State, d time.Duration) {
	if r == nil {
		return
	}
	r.StepDuration.WithLabelValues(string(state)).Observe(d.Seconds())
}

// ObserveProbe counts a failed probe.
func (r *Recorder) ObserveProbe(kind string, ok bool) {
	if r == nil || ok {
		return
	}
	r.ProbeFailures.WithLabelValues(kind).Inc()
}

// ObserveTransaction records the final outcome of a run.
func (r *Recorder) ObserveTransaction(result *types.TransactionResult) {
	if r == nil || result == nil {
		return
	}
	r.Transactions.WithLabelValues(string(result.State), fmt.Sprintf("%t", result.DryRun)).Inc()
	r.Candidates.Set(float64(len(result.Candidates)))
	if result.Rollback.Performed {
		r.Rollbacks.Inc()
	}
	r.LastRun.Set(float64(result.FinishedAt.Unix()))
}

// WriteTextfile writes every metric in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}
