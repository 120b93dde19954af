package main

import (
	"bytes"
	"net/http/httptest"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gaugeValue(t *testing.T, mtr *metrics, name string) float64 {
	families, err := mtr.registry.Gather()
	require.NoError(t, err)

	family, ok := lo.Find(families, func(f *dto.MetricFamily) bool {
		return f.GetName() == name
	})
	require.True(t, ok, name)
	require.Len(t, family.Metric, 1)

	if family.GetType() == dto.MetricType_COUNTER {
		return family.Metric[0].GetCounter().GetValue()
	}

	return family.Metric[0].GetGauge().GetValue()
}

func TestMetricsObserve(t *testing.T) {
	mtr := newMetrics()
	mdl := newModel(2, false)

	mdl.push(0, 1)
	mdl.push(1, 3)
	mtr.observe(mdl)

	assert.Equal(t, 2.0, gaugeValue(t, mtr, "streamplot_retained_samples"))
	assert.Equal(t, 2.0, gaugeValue(t, mtr, "streamplot_y_mean"))
	assert.Equal(t, 1.0, gaugeValue(t, mtr, "streamplot_y_stddev"))
	assert.Equal(t, 1.0, gaugeValue(t, mtr, "streamplot_y_min"))
	assert.Equal(t, 3.0, gaugeValue(t, mtr, "streamplot_y_max"))

	mdl.clear()
	mtr.observe(mdl)
	assert.Equal(t, 0.0, gaugeValue(t, mtr, "streamplot_retained_samples"))
	assert.Equal(t, 0.0, gaugeValue(t, mtr, "streamplot_y_mean"))
}

func TestMetricsDump(t *testing.T) {
	mtr := newMetrics()
	mtr.samples.Add(3)

	var buf bytes.Buffer
	require.NoError(t, mtr.dump(&buf))
	assert.Contains(t, buf.String(), "# TYPE streamplot_samples_total counter")
	assert.Contains(t, buf.String(), "streamplot_samples_total 3")
}

func TestMetricsHandler(t *testing.T) {
	mtr := newMetrics()
	mtr.skipped.Inc()

	rec := httptest.NewRecorder()
	mtr.handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "streamplot_skipped_lines_total 1")
}
