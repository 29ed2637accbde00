package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// EvaluatorMetrics tracks rule evaluation and reload activity.
//
// Metrics:
//   - verdict_rule_evaluations_total: evaluations by rule name and outcome
//   - verdict_rule_evaluation_duration_seconds: evaluation duration by rule name
//   - verdict_ruleset_reloads_total: rule set reloads by status
type EvaluatorMetrics struct {
	evaluationsTotal   *prometheus.CounterVec
	evaluationDuration *prometheus.HistogramVec
	reloadsTotal       *prometheus.CounterVec
}

// NewEvaluatorMetrics creates and registers evaluator metrics with the
// provided registry.
func NewEvaluatorMetrics(registry *prometheus.Registry) *EvaluatorMetrics {
	m := &EvaluatorMetrics{
		evaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "verdict",
				Name:      "rule_evaluations_total",
				Help:      "Total number of rule evaluations",
			},
			[]string{"rule", "outcome"},
		),

		evaluationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "verdict",
				Name:      "rule_evaluation_duration_seconds",
				Help:      "Duration of rule evaluation in seconds",
				// Evaluations are in-memory tree walks; sub-millisecond is the norm.
				Buckets: prometheus.ExponentialBuckets(0.000001, 2, 15), // 1µs to 16ms
			},
			[]string{"rule"},
		),

		reloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "verdict",
				Name:      "ruleset_reloads_total",
				Help:      "Total number of rule set reloads",
			},
			[]string{"status"},
		),
	}

	registry.MustRegister(
		m.evaluationsTotal,
		m.evaluationDuration,
		m.reloadsTotal,
	)

	return m
}

// RecordEvaluation records one rule evaluation.
func (m *EvaluatorMetrics) RecordEvaluation(ruleName string, outcome bool, duration time.Duration) {
	label := "false"
	if outcome {
		label = "true"
	}
	m.evaluationsTotal.WithLabelValues(ruleName, label).Inc()
	m.evaluationDuration.WithLabelValues(ruleName).Observe(duration.Seconds())
}

// RecordReload records a rule set reload attempt.
func (m *EvaluatorMetrics) RecordReload(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.reloadsTotal.WithLabelValues(status).Inc()
}
