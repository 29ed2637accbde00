// Package compare implements the type-aware value comparison used by rule
// operators.
//
// Comparison is lenient by design: it never returns an error. Ordering
// relations between values of mismatched or non-orderable kinds simply
// yield false, so a malformed context degrades to a deterministic boolean
// instead of failing an evaluation.
//
// Date-like values are normalized before comparison so that mixed
// representations of the same instant compare correctly: a time.Time, an
// ISO-8601 string ("2023-01-16" or "2023-01-16T00:00:00Z"), and an epoch
// millisecond timestamp are all reduced to the same instant. Strings that
// do not match the ISO pattern are never treated chronologically.
package compare
