package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

type metrics struct {
	registry  *prometheus.Registry
	samples   prometheus.Counter
	skipped   prometheus.Counter
	evictions prometheus.Counter
	retained  prometheus.Gauge
	mean      prometheus.Gauge
	stddev    prometheus.Gauge
	min       prometheus.Gauge
	max       prometheus.Gauge
}

func newMetrics() *metrics {
	// create metrics
	m := &metrics{
		registry: prometheus.NewRegistry(),
		samples: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "streamplot_samples_total",
			Help: "Total samples ingested.",
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "streamplot_skipped_lines_total",
			Help: "Total input lines skipped because they did not parse as two numbers.",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "streamplot_evictions_total",
			Help: "Total samples evicted from the chart.",
		}),
		retained: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "streamplot_retained_samples",
			Help: "Samples currently retained by the chart.",
		}),
		mean: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "streamplot_y_mean",
			Help: "Mean of the retained y values.",
		}),
		stddev: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "streamplot_y_stddev",
			Help: "Standard deviation of the retained y values.",
		}),
		min: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "streamplot_y_min",
			Help: "Minimum of the retained y values.",
		}),
		max: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "streamplot_y_max",
			Help: "Maximum of the retained y values.",
		}),
	}

	// register metrics
	m.registry.MustRegister(m.samples, m.skipped, m.evictions, m.retained, m.mean, m.stddev, m.min, m.max)

	return m
}

// observe updates the gauges from the current model state.
func (m *metrics) observe(mdl *model) {
	// set length
	m.retained.Set(float64(mdl.len()))

	// reset statistics of empty models
	_, yb, ok := mdl.bounds()
	if !ok {
		m.mean.Set(0)
		m.stddev.Set(0)
		m.min.Set(0)
		m.max.Set(0)
		return
	}

	// set statistics
	m.mean.Set(mdl.mean())
	m.stddev.Set(mdl.std())
	m.min.Set(yb.min.value)
	m.max.Set(yb.max.value)
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// dump writes all metrics in the text exposition format.
func (m *metrics) dump(w io.Writer) error {
	// gather families
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	// encode families
	for _, family := range families {
		_, err = expfmt.MetricFamilyToText(w, family)
		if err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}

	return nil
}
