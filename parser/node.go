package parser

import (
	"github.com/npillmayer/derp"
	"github.com/npillmayer/derp/set"
)

// Node is the closed family of parser variants: Empty, Epsilon, Terminal,
// Alternate, Concatenate, Reduce, Delta, Recurrence and Delayed. All are
// immutable once constructed except Recurrence, whose target is assigned
// exactly once during grammar construction, and Delayed, which forces (and
// thereafter caches) its wrapped derivative on first use.
//
// Node is sealed: client code consumes it through the combinator
// constructors in combinators.go and the GrammarBuilder in grammar.go, and
// never implements the interface itself.
type Node[K comparable] interface {
	// Derive returns the parser recognizing the suffix language after
	// consuming one token of kind t.Kind. Alternate, Concatenate and Reduce
	// MUST return a Delayed wrapper rather than eagerly constructing the
	// result — see delayed.go. Recurrence returns its target's derivative
	// and Delayed returns its forced value's derivative.
	Derive(t derp.Token[K]) Node[K]

	// operands returns this node's immediate graph children, used by the
	// nullability fixed-point engine to discover the reachable node set.
	// Calling operands on a Delayed node forces it.
	operands() []Node[K]

	// nullRule computes this node's nullability from its operands' current
	// (possibly still-converging) cached null sets, via eng so that cyclic
	// references resolve to the optimistic, currently-cached value instead
	// of recursing forever.
	nullRule(eng *fixedPointEngine[K]) *set.Set[any]

	// cachedNull and setCachedNull expose the per-node memo slot the
	// fixed-point engine iterates on.
	cachedNull() *set.Set[any]
	setCachedNull(*set.Set[any])

	String() string
}

// memo is the per-node memoization and state fabric embedded by every
// concrete Node implementation. It holds the derive(t) cache (keyed by a
// structural hash of the token, see memo.go) and the derive_null() cache
// the fixed-point engine mutates in place.
type memo[K comparable] struct {
	deriveCache map[string]Node[K]
	nullCache   *set.Set[any]
}

func newMemo[K comparable]() memo[K] {
	return memo[K]{
		deriveCache: make(map[string]Node[K]),
		nullCache:   set.New[any](),
	}
}

func (m *memo[K]) cachedNull() *set.Set[any] {
	return m.nullCache
}

func (m *memo[K]) setCachedNull(s *set.Set[any]) {
	m.nullCache = s
}

// memoizedDerive returns a previously computed derivative for key, if any.
func (m *memo[K]) memoizedDerive(key string) (Node[K], bool) {
	n, ok := m.deriveCache[key]
	return n, ok
}

// rememberDerive stores the derivative computed for key.
func (m *memo[K]) rememberDerive(key string, n Node[K]) {
	m.deriveCache[key] = n
}
