// Package trace provides the tracing subsystem of solcfmt.
//
// Tracing records what the formatter did with a log: when a run started and
// finished, how each line was classified and which diagnostics fell back to
// the degraded layout. It is the tool's own logging; nothing in here touches
// the formatted output stream.
//
// # Usage
//
//	solcfmt --trace=- --trace-level=detail build/solcstd
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelPhase: Command and run boundaries
//   - LevelDetail: Per-line events as well
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeRun, "format", 0)
//	defer span.End("")
package trace
