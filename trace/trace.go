package trace

import "github.com/npillmayer/schuko/tracing"

// Parser traces with key 'derp.parser'. Used by parser.Parse, when run
// with WithTracing, for per-token derive-step and result-count
// diagnostics.
func Parser() tracing.Trace {
	return tracing.Select("derp.parser")
}

// AST traces with key 'derp.ast'. Used by package ast for tree-walk,
// visitor and printer diagnostics.
func AST() tracing.Trace {
	return tracing.Select("derp.ast")
}
