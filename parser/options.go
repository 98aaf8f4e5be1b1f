package parser

// Option configures a parse run, following the same functional-option
// style github.com/npillmayer/gorgo's earley package uses for its Parser
// (earley.StoreTokens, earley.GenerateTree).
type Option func(*runConfig)

type runConfig struct {
	trace bool
}

// WithTracing makes one Parse call emit a debug-level trace line (via
// package trace) for every derive step and for the result count. The lines
// go through the tracer's Debugf, so they appear only if that tracer's
// level admits debug output. Defaults to off.
func WithTracing(on bool) Option {
	return func(c *runConfig) {
		c.trace = on
	}
}

func newRunConfig(opts []Option) *runConfig {
	c := &runConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
