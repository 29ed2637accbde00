// Verdict evaluates declarative boolean rules against nested data records.
//
// Rules are JSON or YAML documents built from a small set of operators
// (logical combinators, comparisons, membership tests, array quantifiers)
// and evaluated against arbitrary JSON contexts.
//
// Usage:
//
//	# Evaluate a rule against a context file
//	verdict eval --rule rule.json --context ctx.json
//
//	# Validate rule files
//	verdict lint rules/
//
//	# Show version information
//	verdict version
package main

func main() {
	Execute()
}
