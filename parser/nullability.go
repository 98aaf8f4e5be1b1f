package parser

import "github.com/npillmayer/derp/set"

// fixedPointEngine drives the iterative least-fixed-point computation of
// nullability across a (possibly cyclic) Node graph. One engine instance
// is used per top-level DeriveNull call; it must not be shared across
// concurrent calls, nor re-entered for the same node outside of the
// single-threaded recursion evalNull itself performs.
type fixedPointEngine[K comparable] struct {
	inProgress map[Node[K]]bool
}

// evalNull returns n's nullability, recursing into n's own nullRule unless
// n is already being evaluated further up the call stack — in which case
// the cycle is broken optimistically by returning n's currently cached
// value (initially the empty set, growing monotonically pass over pass).
// This is both the correctness mechanism for cyclic grammars and the
// reason a single Node graph must not be derived from multiple goroutines
// at once: the in-progress marker is engine-local mutable state keyed by
// node identity.
func (eng *fixedPointEngine[K]) evalNull(n Node[K]) *set.Set[any] {
	if eng.inProgress[n] {
		return n.cachedNull()
	}
	eng.inProgress[n] = true
	result := n.nullRule(eng)
	delete(eng.inProgress, n)
	return result
}

// collectReachable returns every node reachable from root via operands,
// in discovery order. Delayed nodes are forced as they are encountered, so
// the returned slice reflects the graph as of a single unfolding — exactly
// the graph the subsequent fixed-point iteration needs to stabilize.
func collectReachable[K comparable](root Node[K]) []Node[K] {
	seen := make(map[Node[K]]bool)
	var order []Node[K]
	var visit func(n Node[K])
	visit = func(n Node[K]) {
		if n == nil || seen[n] {
			return
		}
		seen[n] = true
		order = append(order, n)
		for _, child := range n.operands() {
			visit(child)
		}
	}
	visit(root)
	return order
}

// DeriveNull computes the set of parse results root accepts on the empty
// input ("derive_null()") by running the nodes reachable from
// root to a least fixed point. Each node's cached null set starts at ∅ and
// is recomputed from its variant rule every pass; the loop stops once a
// full pass leaves every node's cache unchanged. Termination is guaranteed
// because each node's null set is bounded by a finite universe (the
// pairwise products and images of its operands' null sets) and every
// update only ever adds elements, never removes them.
func DeriveNull[K comparable](root Node[K]) *set.Set[any] {
	if root == nil {
		return set.New[any]()
	}
	nodes := collectReachable(root)
	eng := &fixedPointEngine[K]{inProgress: make(map[Node[K]]bool, len(nodes))}
	for {
		changed := false
		for _, n := range nodes {
			fresh := eng.evalNull(n)
			if !fresh.Equals(n.cachedNull()) {
				n.setCachedNull(fresh)
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return root.cachedNull()
}
