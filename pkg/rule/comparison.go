package rule

import (
	"github.com/mgvdev/verdict/pkg/compare"
)

// ComparisonNode compares two resolved operands under a single relation.
type ComparisonNode struct {
	rel   compare.Relation
	left  any
	right any
}

// Eq builds an equality comparison between two operands.
func Eq(left, right any) *ComparisonNode {
	return &ComparisonNode{rel: compare.Eq, left: left, right: right}
}

// Ne builds an inequality comparison between two operands.
func Ne(left, right any) *ComparisonNode {
	return &ComparisonNode{rel: compare.Ne, left: left, right: right}
}

// Gt builds a greater-than comparison between two operands.
func Gt(left, right any) *ComparisonNode {
	return &ComparisonNode{rel: compare.Gt, left: left, right: right}
}

// Gte builds a greater-or-equal comparison between two operands.
func Gte(left, right any) *ComparisonNode {
	return &ComparisonNode{rel: compare.Gte, left: left, right: right}
}

// Lt builds a less-than comparison between two operands.
func Lt(left, right any) *ComparisonNode {
	return &ComparisonNode{rel: compare.Lt, left: left, right: right}
}

// Lte builds a less-or-equal comparison between two operands.
func Lte(left, right any) *ComparisonNode {
	return &ComparisonNode{rel: compare.Lte, left: left, right: right}
}

// Evaluate implements Node. Both operands are resolved against the context
// before delegating to the value comparator; ordering comparisons between
// non-orderable kinds yield false rather than failing.
func (n *ComparisonNode) Evaluate(ctx any) bool {
	left := resolveOperand(n.left, ctx)
	right := resolveOperand(n.right, ctx)
	return compare.Compare(n.rel, left, right)
}

// Document implements Node.
func (n *ComparisonNode) Document() *Document {
	return &Document{
		Operator: string(n.rel),
		Args:     []any{operandArg(n.left), operandArg(n.right)},
	}
}
