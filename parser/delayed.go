package parser

import (
	"fmt"

	"github.com/npillmayer/derp"
	"github.com/npillmayer/derp/set"
)

// constructor is implemented by every Node variant whose derivative must
// be deferred (Alternate, Concatenate, Reduce): Alternate distributes over
// both of its operands and Concatenate's rule mentions each of its
// operands twice, so constructing either eagerly on a cyclic grammar
// would expand the graph without bound. construct performs the
// actual one-step derivative rule; it is called exactly once per Delayed,
// on first force.
type constructor[K comparable] interface {
	construct(t derp.Token[K]) Node[K]
	String() string
}

// delayedNode is an unforced derivative: conceptually source.Derive(tok),
// without having been computed yet. It is forced — and the forced value
// cached — the first time anything derives or queries the nullability of
// it.
type delayedNode[K comparable] struct {
	memo[K]
	source constructor[K]
	tok    derp.Token[K]
	forced Node[K] // nil until force() has run
}

// force computes and memoizes source.construct(tok). Forcing is
// idempotent: repeated calls return the same cached Node.
func (d *delayedNode[K]) force() Node[K] {
	if d.forced == nil {
		d.forced = d.source.construct(d.tok)
	}
	return d.forced
}

func (d *delayedNode[K]) Derive(t derp.Token[K]) Node[K] {
	return d.force().Derive(t)
}

func (d *delayedNode[K]) operands() []Node[K] {
	return []Node[K]{d.force()}
}

func (d *delayedNode[K]) nullRule(eng *fixedPointEngine[K]) *set.Set[any] {
	return eng.evalNull(d.force())
}

func (d *delayedNode[K]) String() string {
	if d.forced == nil {
		return fmt.Sprintf("Delayed(%s, %v)", d.source, d.tok)
	}
	return fmt.Sprintf("Delayed(%s)", d.forced)
}
