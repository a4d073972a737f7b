package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/km-arc/go-registration/app/registration"
)

// Metrics provides observability for the registration form.
type Metrics struct {
	FieldValidations *prometheus.CounterVec
	Submissions      *prometheus.CounterVec
	SessionsActive   prometheus.Gauge
	SubmitDuration   prometheus.Histogram
}

// New registers all registration metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		FieldValidations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "registration_field_validations_total",
			Help: "Field rule evaluations by field and outcome",
		}, []string{"field", "result"}),
		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "registration_submissions_total",
			Help: "Submit attempts by outcome (accepted, blocked)",
		}, []string{"result"}),
		SessionsActive: f.NewGauge(prometheus.GaugeOpts{
			Name: "registration_sessions_active",
			Help: "Live form sessions",
		}),
		SubmitDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "registration_submit_duration_seconds",
			Help:    "Duration of submit handling",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}

// ObserveField records one rule evaluation. Its signature matches
// registration.Observer.
func (m *Metrics) ObserveField(key registration.Key, valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.FieldValidations.WithLabelValues(string(key), result).Inc()
}

// IncrementSubmission records a submit attempt.
func (m *Metrics) IncrementSubmission(accepted bool) {
	result := "blocked"
	if accepted {
		result = "accepted"
	}
	m.Submissions.WithLabelValues(result).Inc()
}

// SetActiveSessions records the live session count.
func (m *Metrics) SetActiveSessions(n int) {
	m.SessionsActive.Set(float64(n))
}

// ObserveSubmit records the duration of a submit.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveSubmit(start time.Time) {
	m.SubmitDuration.Observe(time.Since(start).Seconds())
}
