// Package codec round-trips rule trees to and from their canonical JSON
// wire form.
//
// Serialization delegates to each node's Document form; deserialization
// reconstructs an executable tree through a registry keyed by operator
// name. The default registry covers the built-in operators (and, or, not,
// eq, ne, gt, gte, lt, lte, in, notIn, any, all, none); custom operators
// can be added to a dedicated registry with Register.
//
//	data, err := codec.Marshal(rule.And(
//	    rule.Eq("user.status", "active"),
//	    rule.Gt("user.age", 18),
//	))
//
//	tree, err := codec.Unmarshal(data)
//	tree.Evaluate(ctx)
//
// Round-tripping is a hard contract: serialize(deserialize(doc)) is
// structurally equal to doc for well-formed documents, and
// deserialize(serialize(tree)) evaluates identically to tree on any
// context, including trees that use the rule.Self sentinel.
package codec
