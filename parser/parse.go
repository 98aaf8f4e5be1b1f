package parser

import (
	"github.com/npillmayer/derp"
	"github.com/npillmayer/derp/set"
	"github.com/npillmayer/derp/trace"
)

// Parse folds root's derivative across tokens, one at a time, and returns
// the set of parse results accepted by the resulting parser on the empty
// remainder — i.e. derive_null() of the fully-derived graph. An empty
// result set means tokens is not in the language; Parse itself never
// reports that as an error, since "no results" is a perfectly ordinary
// parse outcome, not a failure of the driver.
func Parse[K comparable](root Node[K], tokens []derp.Token[K], opts ...Option) (*set.Set[any], error) {
	cfg := newRunConfig(opts)
	cur := root
	for i, tok := range tokens {
		span := derp.Span{uint64(i), uint64(i + 1)}
		if cfg.trace {
			trace.Parser().Debugf("derive %s: %s on %s", span, cur, tok)
		}
		cur = cur.Derive(tok)
	}
	results := DeriveNull(cur)
	if cfg.trace {
		trace.Parser().Debugf("parse done: %d result(s)", results.Size())
	}
	return results, nil
}

// ParseValues is Parse for callers at a dynamic boundary — e.g. a scanner
// yielding []any rather than a statically typed []derp.Token[K]. Each
// element of values must be a derp.Token[K]; the first one that is not
// reported as an *ErrInvalidToken, and parsing stops there.
func ParseValues[K comparable](root Node[K], values []any, opts ...Option) (*set.Set[any], error) {
	tokens := make([]derp.Token[K], len(values))
	for i, v := range values {
		tok, ok := v.(derp.Token[K])
		if !ok {
			return nil, &ErrInvalidToken{Value: v, Span: derp.Span{uint64(i), uint64(i + 1)}}
		}
		tokens[i] = tok
	}
	return Parse(root, tokens, opts...)
}
