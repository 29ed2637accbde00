// Package fieldpath resolves dot-separated path expressions against
// arbitrary nested data.
//
// Paths address values inside JSON-like structures: map keys and struct
// fields by name, array elements by numeric index, and all elements of an
// array with the `*` wildcard. Resolution never fails with an error; a
// missing segment at any depth yields a single "not found" outcome.
//
// # Examples
//
//	fieldpath.Resolve(ctx, "user.name")           // map key access
//	fieldpath.Resolve(ctx, "user.roles.0.name")   // array index
//	fieldpath.Resolve(ctx, "users.*.roles.*.name") // wildcard fan-out
//
// Wildcard segments fan out over every element of the current array and
// collect one result per element. Nested wildcards flatten into a single
// list, so "users.*.roles.*.name" yields a flat list of role names across
// all users.
package fieldpath
