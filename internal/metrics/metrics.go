// Package metrics records batch-run metrics for export to node_exporter's
// textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Stage labels.
const (
	StageSynthesize = "synthesize"
	StageEncode     = "encode"
	StageWrite      = "write"
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Recorder holds the metrics for one run on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	StageDuration      *prometheus.GaugeVec
	FramesSynthesized  prometheus.Gauge
	OutputBytes        prometheus.Gauge
	RunsTotal          *prometheus.CounterVec
	LastSuccessSeconds prometheus.Gauge
}

// NewRecorder creates a Recorder with all metrics registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		StageDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "wavgen_stage_duration_seconds",
			Help: "Wall time of the last run by stage",
		}, []string{"stage"}),
		FramesSynthesized: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wavgen_frames_synthesized",
			Help: "Stereo frames synthesized by the last run",
		}),
		OutputBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wavgen_output_bytes",
			Help: "Size of the last written WAV file in bytes",
		}),
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wavgen_runs_total",
			Help: "Runs by outcome",
		}, []string{"outcome"}),
		LastSuccessSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wavgen_last_success_timestamp_seconds",
			Help: "Unix time of the last successful run",
		}),
	}

	r.registry.MustRegister(
		r.StageDuration,
		r.FramesSynthesized,
		r.OutputBytes,
		r.RunsTotal,
		r.LastSuccessSeconds,
	)
	return r
}

// ObserveStage records how long a stage took, measured from start.
func (r *Recorder) ObserveStage(stage string, start time.Time) {
	r.StageDuration.WithLabelValues(stage).Set(time.Since(start).Seconds())
}

// Succeeded records a successful run.
func (r *Recorder) Succeeded(frames, bytes int) {
	r.FramesSynthesized.Set(float64(frames))
	r.OutputBytes.Set(float64(bytes))
	r.RunsTotal.WithLabelValues(OutcomeSuccess).Inc()
	r.LastSuccessSeconds.SetToCurrentTime()
}

// Failed records a failed run.
func (r *Recorder) Failed() {
	r.RunsTotal.WithLabelValues(OutcomeFailure).Inc()
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is written atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
