package rule

// Node is an executable unit of a rule tree. Implementations are immutable
// after construction and safe to evaluate repeatedly and concurrently.
type Node interface {
	// Evaluate evaluates the node against a context and returns the
	// boolean outcome. It never returns an error; resolution failures
	// degrade to a well-defined boolean per operator.
	Evaluate(ctx any) bool

	// Document returns the canonical serialized form of the node.
	Document() *Document
}

// Document is the canonical JSON-compatible form of an operator node:
// an operator name and its positional arguments. Arguments are literals,
// nested Documents, raw arrays (membership lists), or the SelfToken
// string.
type Document struct {
	Operator string `json:"operator"`
	Args     []any  `json:"args"`
}

// SelfToken is the reserved string that represents the Self sentinel in a
// serialized Document. It must not be used as an ordinary string literal
// operand; deserialization always maps it back to Self.
const SelfToken = "#$self$#"

// selfSentinel is the dedicated operand type behind Self. Being its own
// type, it can never collide with a legitimate string or literal operand.
type selfSentinel struct{}

// Self is the self-reference sentinel operand. During evaluation it
// resolves to the current context itself. It has no JSON representation;
// serialization replaces it with SelfToken.
var Self = selfSentinel{}

// cloneOperands copies a constructor's operand slice so nodes do not alias
// caller-owned storage.
func cloneOperands(operands []any) []any {
	out := make([]any, len(operands))
	copy(out, operands)
	return out
}

// operandArg converts a single in-memory operand to its Document argument
// form.
func operandArg(operand any) any {
	switch v := operand.(type) {
	case selfSentinel:
		return SelfToken
	case Node:
		return v.Document()
	}
	return operand
}

// operandArgs converts a list of operands to Document argument form.
func operandArgs(operands []any) []any {
	args := make([]any, len(operands))
	for i, operand := range operands {
		args[i] = operandArg(operand)
	}
	return args
}
