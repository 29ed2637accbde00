// Package rule provides the operator tree that rule evaluation runs on.
//
// A rule is a tree of operator nodes built programmatically from the
// constructors in this package and evaluated against a context, an
// arbitrary nested data record supplied by the caller:
//
//	r := rule.And(
//	    rule.Eq("user.status", "active"),
//	    rule.Gt("user.age", 18),
//	)
//	r.Evaluate(map[string]any{
//	    "user": map[string]any{"status": "active", "age": 25},
//	}) // true
//
// # Operands
//
// Node operands are polymorphic. A string operand is first resolved as a
// dotted path against the context and falls back to its literal value when
// the path does not resolve. A nested node evaluates recursively against
// the same context. The Self sentinel resolves to the context itself,
// which lets array quantifiers test primitive elements directly:
//
//	rule.Any("user.tags", rule.Eq(rule.Self, "admin"))
//
// Any other operand is used as a literal.
//
// # Evaluation guarantees
//
// Nodes are immutable after construction and safe for concurrent
// evaluation. Evaluation is lenient: missing paths, type mismatches and
// non-array quantifier targets degrade to a well-defined boolean per
// operator instead of raising errors.
//
// Every node also serializes to a Document, the canonical JSON-compatible
// form; see the codec subpackage for round-tripping.
package rule
