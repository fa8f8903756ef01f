// Package trace records what a verification run does, span by span.
//
// quadcheck wires it to its --trace flags:
//
//	quadcheck --trace=- --trace-level=detail
//	quadcheck --trace=run.ndjson --trace-level=debug
//	quadcheck --trace-mode=ring --trace-level=error   # dump on failure
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelError: only the ring dump written after a failed run
//   - LevelPhase: the run itself
//   - LevelDetail: one span per category, the I/O checks included
//   - LevelDebug: one event per check
//
// # Scopes
//
// Events carry one of three scopes, coarsest first: ScopeRun, ScopeCategory
// and ScopeCheck. A level admits every scope at or above its granularity.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeCategory, "real-unary", parentID)
//	defer span.End("")
package trace
