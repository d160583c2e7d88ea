package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors exposed on /metrics.
type Metrics struct {
	HTTPRequests         *prometheus.CounterVec
	HTTPLatency          *prometheus.HistogramVec
	EligibilityDecisions *prometheus.CounterVec
	LoanApplications     *prometheus.CounterVec
	RateLimited          *prometheus.CounterVec
	OutboxJobs           *prometheus.CounterVec
}

// NewMetrics registers collectors on reg. Pass prometheus.DefaultRegisterer in
// binaries and a fresh prometheus.NewRegistry() in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nidhisakhi_http_requests_total",
			Help: "Total HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		HTTPLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nidhisakhi_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		EligibilityDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nidhisakhi_eligibility_decisions_total",
			Help: "Eligibility checks by verdict and loan type",
		}, []string{"verdict", "loan_type"}),
		LoanApplications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nidhisakhi_loan_applications_total",
			Help: "Loan applications submitted by loan type",
		}, []string{"loan_type"}),
		RateLimited: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nidhisakhi_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		}, []string{"route"}),
		OutboxJobs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nidhisakhi_outbox_jobs_total",
			Help: "Outbox jobs processed by topic and outcome",
		}, []string{"topic", "outcome"}),
	}
}

func (m *Metrics) ObserveEligibility(eligible bool, loanType string) {
	if m == nil {
		return
	}
	verdict := "ineligible"
	if eligible {
		verdict = "eligible"
	}
	m.EligibilityDecisions.WithLabelValues(verdict, loanType).Inc()
}

func (m *Metrics) ObserveLoanApplication(loanType string) {
	if m == nil {
		return
	}
	m.LoanApplications.WithLabelValues(loanType).Inc()
}

func (m *Metrics) ObserveOutboxJob(topic, outcome string) {
	if m == nil {
		return
	}
	m.OutboxJobs.WithLabelValues(topic, outcome).Inc()
}
