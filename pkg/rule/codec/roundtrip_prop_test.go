package codec

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/mgvdev/verdict/pkg/rule"
)

func TestRoundTrip_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	roundTrips := func(node rule.Node) bool {
		first, err := Marshal(node)
		if err != nil {
			return false
		}
		decoded, err := Unmarshal(first)
		if err != nil {
			return false
		}
		second, err := Marshal(decoded)
		if err != nil {
			return false
		}
		return bytes.Equal(first, second)
	}

	properties.Property("comparison trees survive the wire", prop.ForAll(
		func(threshold int, flip bool) bool {
			node := rule.And(
				rule.Gt("user.age", threshold),
				rule.Eq("user.active", flip),
			)
			return roundTrips(node)
		},
		gen.IntRange(-1000, 1000),
		gen.Bool(),
	))

	properties.Property("quantifier trees survive the wire", prop.ForAll(
		func(path string, needle string) bool {
			node := rule.Any(path, rule.Eq(rule.Self, needle))
			return roundTrips(node)
		},
		gen.Identifier(),
		gen.AlphaString(),
	))

	properties.Property("membership trees survive the wire", prop.ForAll(
		func(values []int) bool {
			list := make([]any, len(values))
			for i, v := range values {
				list[i] = v
			}
			return roundTrips(rule.NotIn("user.id", list))
		},
		gen.SliceOf(gen.IntRange(0, 100)),
	))

	properties.Property("decoded trees evaluate like the originals", prop.ForAll(
		func(age int, threshold int) bool {
			node := rule.Or(
				rule.Gte("user.age", threshold),
				rule.Not(rule.Lt("user.age", threshold)),
			)
			wire, err := Marshal(node)
			if err != nil {
				return false
			}
			decoded, err := Unmarshal(wire)
			if err != nil {
				return false
			}
			ctx := map[string]any{"user": map[string]any{"age": age}}
			return decoded.Evaluate(ctx) == node.Evaluate(ctx)
		},
		gen.IntRange(0, 120),
		gen.IntRange(0, 120),
	))

	properties.TestingRun(t)
}
