// Package observe provides observability primitives for the access layer.
//
// It is a pure instrumentation library: no execution, no transport, no I/O
// beyond exporter setup. The request executor records spans, metrics and
// structured logs through the interfaces defined here; everything defaults
// to a no-op so instrumentation is strictly opt-in.
package observe
