// Package trace is the checker's leveled event log.
//
// A tracer is built once by the CLI from --trace / --trace-level (or the
// [trace] section of yaplc.toml) and flows down through context:
//
//	ctx = trace.WithTracer(ctx, tr)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "check", 0)
//	defer span.End("")
//
// Levels gate scopes: phase shows driver and pass boundaries, detail adds
// per-file events, debug adds per-declaration events.
package trace
