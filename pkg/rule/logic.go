package rule

// AndNode evaluates to true when every operand resolves truthy.
type AndNode struct {
	operands []any
}

// And builds a variadic logical conjunction. Operands are resolved left to
// right with short-circuit semantics: the first falsy operand decides the
// result and later operands are not evaluated.
func And(operands ...any) *AndNode {
	return &AndNode{operands: cloneOperands(operands)}
}

// Evaluate implements Node.
func (n *AndNode) Evaluate(ctx any) bool {
	for _, operand := range n.operands {
		if !Truthy(resolveOperand(operand, ctx)) {
			return false
		}
	}
	return true
}

// Document implements Node.
func (n *AndNode) Document() *Document {
	return &Document{Operator: "and", Args: operandArgs(n.operands)}
}

// OrNode evaluates to true when at least one operand resolves truthy.
type OrNode struct {
	operands []any
}

// Or builds a variadic logical disjunction. Operands are resolved left to
// right with short-circuit semantics: the first truthy operand decides the
// result and later operands are not evaluated.
func Or(operands ...any) *OrNode {
	return &OrNode{operands: cloneOperands(operands)}
}

// Evaluate implements Node.
func (n *OrNode) Evaluate(ctx any) bool {
	for _, operand := range n.operands {
		if Truthy(resolveOperand(operand, ctx)) {
			return true
		}
	}
	return false
}

// Document implements Node.
func (n *OrNode) Document() *Document {
	return &Document{Operator: "or", Args: operandArgs(n.operands)}
}

// NotNode negates the truthiness of its single operand.
type NotNode struct {
	operand any
}

// Not builds a logical negation of a single operand.
func Not(operand any) *NotNode {
	return &NotNode{operand: operand}
}

// Evaluate implements Node.
func (n *NotNode) Evaluate(ctx any) bool {
	return !Truthy(resolveOperand(n.operand, ctx))
}

// Document implements Node.
func (n *NotNode) Document() *Document {
	return &Document{Operator: "not", Args: []any{operandArg(n.operand)}}
}
