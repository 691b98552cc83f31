package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/weft/pkg/domain"
)

// Metrics records render activity as Prometheus metrics via the engine's
// lifecycle hooks.
type Metrics struct {
	renders        *prometheus.CounterVec
	renderDuration prometheus.Histogram
	renderBytes    prometheus.Histogram
	tagRenders     *prometheus.CounterVec
	tagDuration    *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weft_renders_total",
				Help: "Total number of renders by outcome",
			},
			[]string{"outcome"},
		),
		renderDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "weft_render_duration_seconds",
				Help: "Duration of complete renders",
			},
		),
		renderBytes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "weft_render_output_bytes",
				Help:    "Size of rendered output",
				Buckets: prometheus.ExponentialBuckets(64, 4, 8),
			},
		),
		tagRenders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weft_tag_renders_total",
				Help: "Total number of tag renders by tag name and outcome",
			},
			[]string{"tag", "outcome"},
		),
		tagDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "weft_tag_render_duration_seconds",
				Help: "Duration of tag renders by tag name",
			},
			[]string{"tag"},
		),
	}
	reg.MustRegister(m.renders, m.renderDuration, m.renderBytes, m.tagRenders, m.tagDuration)
	return m
}

// Hooks returns the lifecycle hooks feeding these collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRender: func(ctx context.Context, e *domain.RenderEvent) {
			m.renders.WithLabelValues(outcome(e.Err)).Inc()
			m.renderDuration.Observe(e.Duration.Seconds())
			if e.Err == nil {
				m.renderBytes.Observe(float64(e.Bytes))
			}
		},
		OnTagRender: func(ctx context.Context, e *domain.TagEvent) {
			m.tagRenders.WithLabelValues(e.Name, outcome(e.Err)).Inc()
			m.tagDuration.WithLabelValues(e.Name).Observe(e.Duration.Seconds())
		},
	}
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
