// Package metrics exposes generation counts in Prometheus form. A batch tool
// has no scrape endpoint, so the registry is written to a node_exporter
// textfile collector file after each run.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dashmock"

// Recorder holds the metrics of the most recent run on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	records     *prometheus.GaugeVec
	bytes       *prometheus.GaugeVec
	runs        prometheus.Counter
	lastSuccess prometheus.Gauge
	duration    prometheus.Gauge
}

// NewRecorder registers the run metrics on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records_generated",
			Help:      "Records generated per dataset in the last run.",
		}, []string{"dataset"}),
		bytes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "output_bytes",
			Help:      "Serialized size per dataset in the last run.",
		}, []string{"dataset"}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed generation runs since process start.",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last completed run.",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_duration_seconds",
			Help:      "Wall time of the last completed run.",
		}),
	}
	r.registry.MustRegister(r.records, r.bytes, r.runs, r.lastSuccess, r.duration)
	return r
}

// ObserveDataset records the size of one written dataset.
func (r *Recorder) ObserveDataset(name string, records int, size int64) {
	r.records.WithLabelValues(name).Set(float64(records))
	r.bytes.WithLabelValues(name).Set(float64(size))
}

// ObserveRun marks a run as completed.
func (r *Recorder) ObserveRun(finished time.Time, took time.Duration) {
	r.runs.Inc()
	r.lastSuccess.Set(float64(finished.Unix()))
	r.duration.Set(took.Seconds())
}

// Registry returns the registry metrics are registered on.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile atomically writes the registry in text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
