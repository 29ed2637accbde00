package rule

import (
	"github.com/mgvdev/verdict/pkg/fieldpath"
)

// quantifierKind selects the matching policy of a QuantifierNode.
type quantifierKind string

const (
	quantifierAny  quantifierKind = "any"
	quantifierAll  quantifierKind = "all"
	quantifierNone quantifierKind = "none"
)

// QuantifierNode evaluates a child condition once per element of an array
// resolved from the context. Each element becomes the root context for its
// own child evaluation; the element replaces the whole context rather than
// being merged into it.
type QuantifierNode struct {
	kind      quantifierKind
	arrayPath any
	cond      Node
}

// Any builds a quantifier that is true when the condition holds for at
// least one element of the array at arrayPath. An empty, missing or
// non-array target yields false. Matching short-circuits on the first
// hit.
func Any(arrayPath any, cond Node) *QuantifierNode {
	return &QuantifierNode{kind: quantifierAny, arrayPath: arrayPath, cond: cond}
}

// All builds a quantifier that is true when the condition holds for every
// element of the array at arrayPath. An empty or missing array is
// vacuously true; a target that resolves to a non-array value yields
// false. Matching short-circuits on the first miss.
func All(arrayPath any, cond Node) *QuantifierNode {
	return &QuantifierNode{kind: quantifierAll, arrayPath: arrayPath, cond: cond}
}

// None builds a quantifier that is true when the condition holds for no
// element of the array at arrayPath. An empty, missing or non-array
// target yields true: no elements can match. Matching short-circuits on
// the first hit.
func None(arrayPath any, cond Node) *QuantifierNode {
	return &QuantifierNode{kind: quantifierNone, arrayPath: arrayPath, cond: cond}
}

// Evaluate implements Node.
func (n *QuantifierNode) Evaluate(ctx any) bool {
	target, defined := n.resolveTarget(ctx)
	if !defined {
		// Absent path: no elements exist, so ALL is vacuously true.
		return n.kind != quantifierAny
	}

	elements, ok := listElements(target)
	if !ok {
		// Defined but not an array: nothing can match, and ALL has no
		// array to be vacuous over.
		return n.kind == quantifierNone
	}

	switch n.kind {
	case quantifierAny:
		for _, element := range elements {
			if n.elementMatches(element) {
				return true
			}
		}
		return false

	case quantifierAll:
		for _, element := range elements {
			if !n.elementMatches(element) {
				return false
			}
		}
		return true

	default: // quantifierNone
		for _, element := range elements {
			if n.elementMatches(element) {
				return false
			}
		}
		return true
	}
}

// resolveTarget resolves the arrayPath operand. Unlike ordinary operand
// resolution, a string that fails path resolution reports "absent"
// instead of falling back to its literal value.
func (n *QuantifierNode) resolveTarget(ctx any) (any, bool) {
	switch v := n.arrayPath.(type) {
	case selfSentinel:
		return ctx, ctx != nil

	case string:
		if ctx == nil {
			return nil, false
		}
		return fieldpath.Resolve(ctx, v)
	}

	return n.arrayPath, n.arrayPath != nil
}

// elementMatches evaluates the child condition with a single element as
// the root context. A panic inside the child condition counts as
// "condition not satisfied" for that element instead of propagating.
func (n *QuantifierNode) elementMatches(element any) (matched bool) {
	defer func() {
		if recover() != nil {
			matched = false
		}
	}()
	return n.cond.Evaluate(element)
}

// Document implements Node.
func (n *QuantifierNode) Document() *Document {
	return &Document{
		Operator: string(n.kind),
		Args:     []any{operandArg(n.arrayPath), n.cond.Document()},
	}
}
