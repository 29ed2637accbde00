package engine

import (
	"log/slog"
	"time"

	"github.com/mgvdev/verdict/pkg/metrics"
	"github.com/mgvdev/verdict/pkg/rule"
)

// Engine evaluates rule trees against caller-supplied contexts. The zero
// configuration is usable; options attach logging and metrics.
type Engine struct {
	logger  *slog.Logger
	metrics *metrics.EvaluatorMetrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger used for debug-level evaluation
// logs.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics attaches prometheus evaluation metrics.
func WithMetrics(m *metrics.EvaluatorMetrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// New creates an evaluation engine.
func New(opts ...Option) *Engine {
	e := &Engine{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate evaluates a rule tree against a context and returns the
// boolean outcome. A nil context defaults to an empty record. Evaluation
// raises no errors: a panic escaping the tree is absorbed and yields
// false.
func (e *Engine) Evaluate(root rule.Node, ctx any) bool {
	return e.EvaluateNamed("", root, ctx)
}

// EvaluateNamed evaluates like Evaluate and labels logs and metrics with
// a rule name.
func (e *Engine) EvaluateNamed(name string, root rule.Node, ctx any) bool {
	if root == nil {
		return false
	}
	if ctx == nil {
		ctx = map[string]any{}
	}

	start := time.Now()
	outcome := safeEvaluate(root, ctx)
	elapsed := time.Since(start)

	e.logger.Debug("rule evaluated",
		"rule", name,
		"outcome", outcome,
		"duration_us", elapsed.Microseconds(),
	)

	if e.metrics != nil {
		e.metrics.RecordEvaluation(name, outcome, elapsed)
	}

	return outcome
}

// safeEvaluate runs the tree and converts any escaping panic to false.
func safeEvaluate(root rule.Node, ctx any) (outcome bool) {
	defer func() {
		if recover() != nil {
			outcome = false
		}
	}()
	return root.Evaluate(ctx)
}
