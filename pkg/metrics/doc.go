// Package metrics exposes prometheus instrumentation for rule evaluation
// and rule set reloads.
//
// Metrics register against a caller-provided registry so embedding
// applications keep control of their metrics endpoint:
//
//	registry := prometheus.NewRegistry()
//	m := metrics.NewEvaluatorMetrics(registry)
//	eng := engine.New(engine.WithMetrics(m))
package metrics
