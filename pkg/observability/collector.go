package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/wishbone/pkg/domain"
)

// Collector exposes pipeline run metrics: completed runs by status, total run
// duration and per-stage duration. It implements prometheus.Collector.
type Collector struct {
	runs     *prometheus.CounterVec
	duration prometheus.Histogram
	stages   *prometheus.HistogramVec
}

// NewCollector creates an unregistered collector.
func NewCollector() *Collector {
	return &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wishbone",
			Name:      "runs_total",
			Help:      "Completed pipeline runs by status.",
		}, []string{"status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wishbone",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of whole pipeline runs.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 14),
		}),
		stages: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wishbone",
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual run stages.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14),
		}, []string{"stage"}),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.runs.Describe(ch)
	c.duration.Describe(ch)
	c.stages.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.runs.Collect(ch)
	c.duration.Collect(ch)
	c.stages.Collect(ch)
}

// Hooks returns lifecycle hooks that feed the collector. Pass the result to
// wishbone.WithHooks.
func (c *Collector) Hooks() domain.Hooks {
	return domain.Hooks{
		OnStageEnd: func(_ context.Context, ev *domain.RunEvent) {
			c.stages.WithLabelValues(string(ev.Stage)).Observe(ev.Duration.Seconds())
		},
		OnRunEnd: func(_ context.Context, ev *domain.RunEvent) {
			status := "ok"
			if ev.Err != nil {
				status = "error"
			}
			c.runs.WithLabelValues(status).Inc()
			c.duration.Observe(ev.Duration.Seconds())
		},
	}
}
