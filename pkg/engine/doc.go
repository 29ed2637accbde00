// Package engine provides the evaluation façade over rule trees.
//
// The engine is a thin layer: it defaults a missing context to an empty
// record, absorbs any panic raised inside a tree so evaluation never
// crashes a caller request path, and optionally records structured logs
// and prometheus metrics around each evaluation.
//
//	eng := engine.New(engine.WithLogger(logger))
//	allowed := eng.Evaluate(root, ctx)
package engine
