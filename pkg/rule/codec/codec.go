package codec

import (
	"encoding/json"
	"fmt"

	"github.com/mgvdev/verdict/pkg/rule"
)

// defaultRegistry backs the package-level Decode and Unmarshal helpers.
var defaultRegistry = NewRegistry()

// Encode returns the canonical document form of a rule tree.
func Encode(node rule.Node) *rule.Document {
	return node.Document()
}

// Marshal serializes a rule tree to its JSON wire form.
func Marshal(node rule.Node) ([]byte, error) {
	return json.Marshal(node.Document())
}

// Decode reconstructs an executable rule tree from a document using the
// default registry. See Registry.Decode.
func Decode(doc any) (rule.Node, error) {
	return defaultRegistry.Decode(doc)
}

// Unmarshal parses JSON wire form and reconstructs an executable rule
// tree using the default registry.
func Unmarshal(data []byte) (rule.Node, error) {
	return defaultRegistry.Unmarshal(data)
}

// Decode reconstructs an executable rule tree from a document. The
// document may be a *rule.Document (as produced by Encode) or a
// map[string]any (as produced by a generic JSON or YAML decode).
//
// Each argument is recursively decoded when it is itself document-shaped
// (an object with an "operator" key), replaced with rule.Self when it
// equals the reserved self token, and passed through unchanged otherwise.
// An operator name absent from the registry fails with
// *UnknownOperatorError.
func (r *Registry) Decode(doc any) (rule.Node, error) {
	operator, args, err := documentParts(doc)
	if err != nil {
		return nil, err
	}

	ctor, ok := r.lookup(operator)
	if !ok {
		return nil, &UnknownOperatorError{Operator: operator}
	}

	resolved := make([]any, len(args))
	for i, arg := range args {
		value, err := r.decodeArg(arg)
		if err != nil {
			return nil, fmt.Errorf("operator %q: arg %d: %w", operator, i, err)
		}
		resolved[i] = value
	}

	return ctor(resolved)
}

// Unmarshal parses JSON wire form and reconstructs an executable rule
// tree.
func (r *Registry) Unmarshal(data []byte) (rule.Node, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse rule document: %w", err)
	}
	return r.Decode(doc)
}

// decodeArg resolves a single document argument to its in-memory operand
// form.
func (r *Registry) decodeArg(arg any) (any, error) {
	switch v := arg.(type) {
	case *rule.Document:
		return r.Decode(v)

	case rule.Document:
		return r.Decode(&v)

	case map[string]any:
		if _, ok := v["operator"]; ok {
			return r.Decode(v)
		}
		return v, nil

	case string:
		if v == rule.SelfToken {
			return rule.Self, nil
		}
		return v, nil
	}

	return arg, nil
}

// documentParts extracts the operator name and argument list from either
// document representation.
func documentParts(doc any) (string, []any, error) {
	switch v := doc.(type) {
	case *rule.Document:
		if v == nil {
			return "", nil, &DocumentError{Message: "document is nil"}
		}
		return v.Operator, v.Args, nil

	case rule.Document:
		return v.Operator, v.Args, nil

	case map[string]any:
		rawOperator, ok := v["operator"]
		if !ok {
			return "", nil, &DocumentError{Message: `missing "operator" key`}
		}
		operator, ok := rawOperator.(string)
		if !ok {
			return "", nil, &DocumentError{Message: fmt.Sprintf(`"operator" must be a string, got %T`, rawOperator)}
		}

		rawArgs, ok := v["args"]
		if !ok || rawArgs == nil {
			return operator, nil, nil
		}
		args, ok := rawArgs.([]any)
		if !ok {
			return "", nil, &DocumentError{Message: fmt.Sprintf(`"args" must be an array, got %T`, rawArgs)}
		}
		return operator, args, nil
	}

	return "", nil, &DocumentError{Message: fmt.Sprintf("unsupported document type %T", doc)}
}
