package parser

import (
	"github.com/cnf/structhash"
	"github.com/npillmayer/derp"
)

// tokenKey computes a stable memoization key for a token, so that
// Derive(t) hits the per-node cache whenever t is structurally equal to a
// previously seen token, not merely identical. Grounded on the same
// technique github.com/npillmayer/gorgo's earley package uses to key its
// backlink table (earley.hash), just applied to tokens instead of items.
func tokenKey[K comparable](t derp.Token[K]) string {
	h, err := structhash.Hash(t, 1)
	if err != nil {
		// Token.Value holding something unhashable (a func, a chan) is a
		// programmer error on the client's part, not a condition package
		// parser can recover from.
		panic("parser: token is not hashable: " + err.Error())
	}
	return h
}
