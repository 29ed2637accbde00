package codec

import (
	"fmt"
	"sync"

	"github.com/mgvdev/verdict/pkg/rule"
)

// Constructor builds an operator node from its decoded positional
// arguments. Arguments that were nested documents arrive as already
// constructed nodes, and the serialized self token arrives as rule.Self.
type Constructor func(args []any) (rule.Node, error)

// Registry maps operator names to node constructors. Operator names are
// case-sensitive. The zero value is not usable; create registries with
// NewRegistry.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewRegistry returns a registry pre-populated with the built-in
// operators.
func NewRegistry() *Registry {
	r := &Registry{constructors: make(map[string]Constructor)}

	r.Register("and", func(args []any) (rule.Node, error) {
		return rule.And(args...), nil
	})
	r.Register("or", func(args []any) (rule.Node, error) {
		return rule.Or(args...), nil
	})
	r.Register("not", func(args []any) (rule.Node, error) {
		if err := wantArgs("not", args, 1); err != nil {
			return nil, err
		}
		return rule.Not(args[0]), nil
	})

	r.Register("eq", binary("eq", rule.Eq))
	r.Register("ne", binary("ne", rule.Ne))
	r.Register("gt", binary("gt", rule.Gt))
	r.Register("gte", binary("gte", rule.Gte))
	r.Register("lt", binary("lt", rule.Lt))
	r.Register("lte", binary("lte", rule.Lte))

	r.Register("in", func(args []any) (rule.Node, error) {
		if err := wantArgs("in", args, 2); err != nil {
			return nil, err
		}
		return rule.In(args[0], args[1]), nil
	})
	r.Register("notIn", func(args []any) (rule.Node, error) {
		if err := wantArgs("notIn", args, 2); err != nil {
			return nil, err
		}
		return rule.NotIn(args[0], args[1]), nil
	})

	r.Register("any", quantifier("any", rule.Any))
	r.Register("all", quantifier("all", rule.All))
	r.Register("none", quantifier("none", rule.None))

	return r
}

// Register adds or replaces a constructor for an operator name.
func (r *Registry) Register(name string, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[name] = ctor
}

// lookup returns the constructor for an operator name.
func (r *Registry) lookup(name string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.constructors[name]
	return ctor, ok
}

// binary adapts a two-operand node constructor.
func binary(name string, build func(left, right any) *rule.ComparisonNode) Constructor {
	return func(args []any) (rule.Node, error) {
		if err := wantArgs(name, args, 2); err != nil {
			return nil, err
		}
		return build(args[0], args[1]), nil
	}
}

// quantifier adapts an array-quantifier node constructor. The second
// argument must have decoded to an operator node.
func quantifier(name string, build func(arrayPath any, cond rule.Node) *rule.QuantifierNode) Constructor {
	return func(args []any) (rule.Node, error) {
		if err := wantArgs(name, args, 2); err != nil {
			return nil, err
		}
		cond, ok := args[1].(rule.Node)
		if !ok {
			return nil, fmt.Errorf("operator %q: condition argument must be an operator document, got %T", name, args[1])
		}
		return build(args[0], cond), nil
	}
}

func wantArgs(name string, args []any, want int) error {
	if len(args) != want {
		return fmt.Errorf("operator %q: expected %d args, got %d", name, want, len(args))
	}
	return nil
}
