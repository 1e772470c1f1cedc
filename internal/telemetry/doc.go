// Package telemetry wraps the solver's two tracing points — one bounded
// A* iteration (astar.expand) and one IDA* cost-limit raise
// (ida.iteration) — in go.opentelemetry.io/otel spans. The solver core
// never imports an exporter: it accepts an optional trace.Tracer and
// calls Start/End through this package, so cmd/sokolve-bench can supply
// a tracer (from a bare SDK provider, with no exporter registered) while
// solve, astar, and ida stay exporter-agnostic.
package telemetry
