package rule

import (
	"reflect"

	"github.com/mgvdev/verdict/pkg/compare"
)

// MembershipNode tests whether a resolved value is present in a literal
// list.
type MembershipNode struct {
	value  any
	list   any
	negate bool
}

// In builds a membership test: true when the resolved value equals an
// element of list. When list is not an array the test is false.
func In(value, list any) *MembershipNode {
	return &MembershipNode{value: value, list: list}
}

// NotIn builds a negated membership test: true when the resolved value
// equals no element of list. When list is not an array the test is true.
func NotIn(value, list any) *MembershipNode {
	return &MembershipNode{value: value, list: list, negate: true}
}

// Evaluate implements Node. The value operand is resolved against the
// context; the list operand is a fixed literal and is not resolved.
func (n *MembershipNode) Evaluate(ctx any) bool {
	return n.contains(ctx) != n.negate
}

func (n *MembershipNode) contains(ctx any) bool {
	elements, ok := listElements(n.list)
	if !ok {
		return false
	}

	value := resolveOperand(n.value, ctx)
	for _, element := range elements {
		if compare.Compare(compare.Eq, value, element) {
			return true
		}
	}
	return false
}

// Document implements Node. The list serializes as a raw array.
func (n *MembershipNode) Document() *Document {
	operator := "in"
	if n.negate {
		operator = "notIn"
	}
	return &Document{Operator: operator, Args: []any{operandArg(n.value), n.list}}
}

// listElements normalizes any slice or array to []any.
func listElements(list any) ([]any, bool) {
	if list == nil {
		return nil, false
	}
	if s, ok := list.([]any); ok {
		return s, true
	}

	v := reflect.ValueOf(list)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = v.Index(i).Interface()
	}
	return out, true
}
