package parser

import (
	"fmt"

	"github.com/npillmayer/derp"
	"github.com/npillmayer/derp/set"
)

// reduceNode applies a function to every result of an inner parser.
type reduceNode[K comparable] struct {
	memo[K]
	inner Node[K]
	fn    func(any) any
	name  string // optional, for ast printing only — see Named
}

// Reduce returns a parser yielding f(x) for every x inner accepts.
func Reduce[K comparable](inner Node[K], f func(any) any) Node[K] {
	return &reduceNode[K]{memo: newMemo[K](), inner: inner, fn: f}
}

// Named attaches a display name to a Reduce node, used only by package ast
// when pretty-printing a parse result graph; it has no effect on
// derivation or nullability.
func Named[K comparable](n Node[K], name string) Node[K] {
	if r, ok := n.(*reduceNode[K]); ok {
		r.name = name
	}
	return n
}

func (r *reduceNode[K]) Derive(t derp.Token[K]) Node[K] {
	key := tokenKey(t)
	if cached, ok := r.memoizedDerive(key); ok {
		return cached
	}
	d := &delayedNode[K]{memo: newMemo[K](), source: r, tok: t}
	r.rememberDerive(key, d)
	return d
}

// construct applies the derivative rule eagerly, for Delayed.force only:
// (p >> f).derive(t) = p.derive(t) >> f.
func (r *reduceNode[K]) construct(t derp.Token[K]) Node[K] {
	return &reduceNode[K]{memo: newMemo[K](), inner: r.inner.Derive(t), fn: r.fn, name: r.name}
}

func (r *reduceNode[K]) operands() []Node[K] {
	return []Node[K]{r.inner}
}

func (r *reduceNode[K]) nullRule(eng *fixedPointEngine[K]) *set.Set[any] {
	return eng.evalNull(r.inner).Map(r.fn)
}

func (r *reduceNode[K]) String() string {
	if r.name != "" {
		return fmt.Sprintf("%s(%s)", r.name, r.inner)
	}
	return fmt.Sprintf("Reduce(%s)", r.inner)
}
