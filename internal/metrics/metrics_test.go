package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	scan := New(reg)

	scan.IncSessionsCreated()
	scan.IncSessionsCreated()
	scan.AddSessionsSwept(3)
	scan.AddSessionsSwept(0)
	scan.IncBatches(OutcomeClean)
	scan.IncBatches(OutcomeIssues)
	scan.IncBatches(OutcomeIssues)
	scan.IncStopRequests()
	scan.ObserveLinterDuration(2 * time.Second)

	assert.InDelta(t, 2, testutil.ToFloat64(scan.SessionsCreated), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(scan.SessionsSwept), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(scan.Batches.WithLabelValues(OutcomeClean)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(scan.Batches.WithLabelValues(OutcomeIssues)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(scan.StopRequests), 0)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}

	assert.Contains(t, names, "phpcompat_linter_duration_seconds")
}

func TestNoop_DoesNotPanic(t *testing.T) {
	var m ScanMetrics = Noop{}

	assert.NotPanics(t, func() {
		m.IncSessionsCreated()
		m.AddSessionsSwept(1)
		m.IncBatches(OutcomeFailed)
		m.ObserveLinterDuration(time.Millisecond)
		m.IncStopRequests()
	})
}
