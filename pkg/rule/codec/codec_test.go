package codec

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/mgvdev/verdict/pkg/rule"
)

func TestUnmarshal_EvaluatesDecodedTree(t *testing.T) {
	wire := []byte(`{
		"operator": "and",
		"args": [
			{"operator": "eq", "args": ["user.status", "active"]},
			{"operator": "gt", "args": ["user.age", 18]}
		]
	}`)

	node, err := Unmarshal(wire)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	ctx := map[string]any{
		"user": map[string]any{"status": "active", "age": 25},
	}
	if !node.Evaluate(ctx) {
		t.Error("decoded tree should evaluate to true")
	}

	ctx["user"].(map[string]any)["age"] = 16
	if node.Evaluate(ctx) {
		t.Error("decoded tree should evaluate to false for an underage user")
	}
}

func TestRoundTrip_Bytes(t *testing.T) {
	trees := []struct {
		name string
		node rule.Node
	}{
		{
			name: "logic over comparisons",
			node: rule.And(
				rule.Eq("user.status", "active"),
				rule.Or(rule.Gt("user.age", 18), rule.Lte("user.score", 3.5)),
			),
		},
		{
			name: "negation",
			node: rule.Not(rule.Ne("user.plan", "free")),
		},
		{
			name: "membership list",
			node: rule.In("user.role", []any{"admin", "editor"}),
		},
		{
			name: "quantifier with self",
			node: rule.Any("user.tags", rule.Eq(rule.Self, "beta")),
		},
		{
			name: "quantifier over objects",
			node: rule.All("user.roles", rule.NotIn("name", []any{"root"})),
		},
		{
			name: "literal operands",
			node: rule.And(true, 1, "enabled"),
		},
		{
			name: "empty conjunction",
			node: rule.And(),
		},
	}

	for _, tt := range trees {
		t.Run(tt.name, func(t *testing.T) {
			first, err := Marshal(tt.node)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}

			decoded, err := Unmarshal(first)
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}

			second, err := Marshal(decoded)
			if err != nil {
				t.Fatalf("Marshal() after round trip error = %v", err)
			}

			if !bytes.Equal(first, second) {
				t.Errorf("round trip changed wire form:\n first = %s\nsecond = %s", first, second)
			}
		})
	}
}

func TestRoundTrip_PreservesBehavior(t *testing.T) {
	node := rule.Or(
		rule.All("user.roles", rule.Ne("name", "root")),
		rule.Eq("user.status", "suspended"),
	)

	wire, err := Marshal(node)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	decoded, err := Unmarshal(wire)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	contexts := []any{
		map[string]any{"user": map[string]any{"roles": []any{map[string]any{"name": "admin"}}}},
		map[string]any{"user": map[string]any{"roles": []any{map[string]any{"name": "root"}}}},
		map[string]any{"user": map[string]any{"status": "suspended"}},
		map[string]any{},
		nil,
	}
	for i, ctx := range contexts {
		if got, want := decoded.Evaluate(ctx), node.Evaluate(ctx); got != want {
			t.Errorf("context %d: decoded tree = %v, original = %v", i, got, want)
		}
	}
}

func TestEncode_StructuralForm(t *testing.T) {
	node := rule.Any("user.tags", rule.Eq(rule.Self, "beta"))

	want := &rule.Document{
		Operator: "any",
		Args: []any{
			"user.tags",
			&rule.Document{Operator: "eq", Args: []any{rule.SelfToken, "beta"}},
		},
	}
	if got := Encode(node); !reflect.DeepEqual(got, want) {
		t.Errorf("Encode() = %#v, want %#v", got, want)
	}
}

func TestDecode_SelfToken(t *testing.T) {
	node, err := Unmarshal([]byte(`{
		"operator": "any",
		"args": ["user.tags", {"operator": "eq", "args": ["#$self$#", "beta"]}]
	}`))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	ctx := map[string]any{
		"user": map[string]any{"tags": []any{"staff", "beta"}},
	}
	if !node.Evaluate(ctx) {
		t.Error("self token should compare elements themselves")
	}
}

func TestDecode_UnknownOperator(t *testing.T) {
	tests := []struct {
		name string
		wire string
	}{
		{
			name: "top level",
			wire: `{"operator": "xor", "args": [true, false]}`,
		},
		{
			name: "nested",
			wire: `{"operator": "and", "args": [{"operator": "between", "args": ["user.age", 1, 9]}]}`,
		},
		{
			name: "unknown operator with bad arity",
			wire: `{"operator": "xor", "args": [true]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.wire))
			var unknownErr *UnknownOperatorError
			if !errors.As(err, &unknownErr) {
				t.Fatalf("Unmarshal() error = %v, want *UnknownOperatorError", err)
			}
		})
	}
}

func TestDecode_MalformedDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  any
	}{
		{name: "missing operator key", doc: map[string]any{"args": []any{}}},
		{name: "operator not a string", doc: map[string]any{"operator": 7}},
		{name: "args not an array", doc: map[string]any{"operator": "and", "args": "nope"}},
		{name: "unsupported document type", doc: 42},
		{name: "nil typed document", doc: (*rule.Document)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.doc)
			var docErr *DocumentError
			if !errors.As(err, &docErr) {
				t.Fatalf("Decode() error = %v, want *DocumentError", err)
			}
		})
	}
}

func TestDecode_ArityErrors(t *testing.T) {
	tests := []struct {
		name string
		wire string
	}{
		{name: "not with two args", wire: `{"operator": "not", "args": [true, false]}`},
		{name: "eq with one arg", wire: `{"operator": "eq", "args": ["user.age"]}`},
		{name: "gt with no args", wire: `{"operator": "gt"}`},
		{name: "in with three args", wire: `{"operator": "in", "args": ["a", ["a"], "extra"]}`},
		{name: "any with one arg", wire: `{"operator": "any", "args": ["user.tags"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(tt.wire)); err == nil {
				t.Error("Unmarshal() should reject wrong arity")
			}
		})
	}
}

func TestDecode_QuantifierConditionMustBeOperator(t *testing.T) {
	_, err := Unmarshal([]byte(`{"operator": "any", "args": ["user.tags", "beta"]}`))
	if err == nil {
		t.Fatal("Unmarshal() should reject a non-operator quantifier condition")
	}
	if !strings.Contains(err.Error(), "condition argument") {
		t.Errorf("error = %v, want condition argument complaint", err)
	}
}

func TestDecode_MembershipListStaysRaw(t *testing.T) {
	// The membership list is a plain array operand, not a document, even
	// though its elements could look like anything.
	node, err := Unmarshal([]byte(`{"operator": "in", "args": ["user.role", ["admin", "editor"]]}`))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	ctx := map[string]any{"user": map[string]any{"role": "editor"}}
	if !node.Evaluate(ctx) {
		t.Error("membership over decoded list should match")
	}
}

func TestRegistry_CustomOperator(t *testing.T) {
	registry := NewRegistry()
	registry.Register("alwaysTrue", func(args []any) (rule.Node, error) {
		return rule.And(), nil
	})

	node, err := registry.Decode(map[string]any{"operator": "alwaysTrue"})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !node.Evaluate(nil) {
		t.Error("custom operator should evaluate to true")
	}

	// The default registry must not see registrations made on another
	// instance.
	if _, err := Decode(map[string]any{"operator": "alwaysTrue"}); err == nil {
		t.Error("default registry should not know the custom operator")
	}
}

func TestDecode_TypedDocument(t *testing.T) {
	doc := &rule.Document{
		Operator: "eq",
		Args:     []any{"user.status", "active"},
	}

	node, err := Decode(doc)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	ctx := map[string]any{"user": map[string]any{"status": "active"}}
	if !node.Evaluate(ctx) {
		t.Error("tree decoded from a typed document should evaluate")
	}
}
