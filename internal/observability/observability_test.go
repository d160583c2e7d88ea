package observability

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerFormatByEnv(t *testing.T) {
	var buf bytes.Buffer
	newLogger("production", &buf).Info("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	newLogger("local", &buf).Info("hello", "k", "v")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveEligibility(true, "personal")
	m.ObserveEligibility(false, "personal")
	m.ObserveEligibility(false, "personal")
	m.ObserveLoanApplication("home")
	m.ObserveOutboxJob("loan_submitted", "done")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EligibilityDecisions.WithLabelValues("eligible", "personal")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EligibilityDecisions.WithLabelValues("ineligible", "personal")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoanApplications.WithLabelValues("home")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OutboxJobs.WithLabelValues("loan_submitted", "done")))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	m.ObserveEligibility(true, "car")
	m.ObserveLoanApplication("car")
	m.ObserveOutboxJob("x", "y")
}
