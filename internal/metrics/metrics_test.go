package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveReply(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := MustNewMetrics(reg)

	m.ObserveReply("memorize", 2*time.Millisecond)
	m.ObserveReply("memorize", time.Millisecond)
	m.ObserveReply("fallback", time.Millisecond)
	m.IncFailure()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.replies.WithLabelValues("memorize")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.replies.WithLabelValues("fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures))

	families, err := reg.Gather()
	require.NoError(t, err)

	var samples uint64
	for _, mf := range families {
		if mf.GetName() != "bodai_reply_duration_seconds" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			samples += metric.GetHistogram().GetSampleCount()
		}
	}
	assert.Equal(t, uint64(3), samples)
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		MustNewMetrics(prometheus.NewRegistry())
		MustNewMetrics(prometheus.NewRegistry())
	})
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveReply("fallback", time.Millisecond)
		m.IncFailure()
	})
}
