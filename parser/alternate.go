package parser

import (
	"fmt"

	"github.com/npillmayer/derp"
	"github.com/npillmayer/derp/set"
)

// alternateNode is the union of two languages.
type alternateNode[K comparable] struct {
	memo[K]
	left, right Node[K]
}

// Alternate returns a parser for the union of l's and r's languages.
func Alternate[K comparable](l, r Node[K]) Node[K] {
	return &alternateNode[K]{memo: newMemo[K](), left: l, right: r}
}

// Or is sugar for Alternate(p, q) — "a | b".
func Or[K comparable](p, q Node[K]) Node[K] {
	return Alternate(p, q)
}

func (a *alternateNode[K]) Derive(t derp.Token[K]) Node[K] {
	key := tokenKey(t)
	if cached, ok := a.memoizedDerive(key); ok {
		return cached
	}
	d := &delayedNode[K]{memo: newMemo[K](), source: a, tok: t}
	a.rememberDerive(key, d)
	return d
}

// construct applies the derivative rule eagerly, for use by Delayed.force
// only: (l|r).derive(t) = l.derive(t) | r.derive(t).
func (a *alternateNode[K]) construct(t derp.Token[K]) Node[K] {
	return Alternate(a.left.Derive(t), a.right.Derive(t))
}

func (a *alternateNode[K]) operands() []Node[K] {
	return []Node[K]{a.left, a.right}
}

func (a *alternateNode[K]) nullRule(eng *fixedPointEngine[K]) *set.Set[any] {
	return eng.evalNull(a.left).Copy().Union(eng.evalNull(a.right))
}

func (a *alternateNode[K]) String() string {
	return fmt.Sprintf("Alternate(%s, %s)", a.left, a.right)
}
