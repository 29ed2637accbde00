package rule

import (
	"reflect"

	"github.com/mgvdev/verdict/pkg/fieldpath"
)

// resolveOperand resolves an operand to its value for the given context.
//
// The Self sentinel resolves to the context itself. A nested node
// evaluates recursively against the same context. A string operand is
// resolved as a path when a context is present; if the path does not
// resolve, the string falls back to its literal value. Anything else is a
// literal.
func resolveOperand(operand any, ctx any) any {
	switch v := operand.(type) {
	case selfSentinel:
		return ctx

	case Node:
		return v.Evaluate(ctx)

	case string:
		if ctx == nil {
			return v
		}
		if value, ok := fieldpath.Resolve(ctx, v); ok {
			return value
		}
		return v
	}

	return operand
}

// Truthy reports standard boolean coercion of an arbitrary value: nil,
// false, numeric zero and the empty string are falsy; everything else,
// including empty arrays and objects, is truthy.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	}

	return true
}
