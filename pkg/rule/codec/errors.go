package codec

import "fmt"

// UnknownOperatorError indicates a document references an operator name
// absent from the registry. It is not recoverable by the engine; the
// caller must catch and report it.
type UnknownOperatorError struct {
	Operator string
}

// Error returns the error message.
func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator: %q", e.Operator)
}

// DocumentError indicates a value that does not have the rule document
// shape (an object with an "operator" name and positional "args").
type DocumentError struct {
	Message string
}

// Error returns the error message.
func (e *DocumentError) Error() string {
	return fmt.Sprintf("malformed rule document: %s", e.Message)
}
