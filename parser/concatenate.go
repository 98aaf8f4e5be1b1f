package parser

import (
	"fmt"

	"github.com/npillmayer/derp"
	"github.com/npillmayer/derp/set"
)

// Pair is the result shape produced by Concatenate: a result a from the
// left operand paired with a result b from the right one. Nested
// concatenations build nested Pairs, flattened by UnpackLeft/UnpackRight.
type Pair struct {
	First, Second any
}

func (p Pair) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// concatenateNode is the product of two languages.
type concatenateNode[K comparable] struct {
	memo[K]
	left, right Node[K]
}

// Concatenate returns a parser for the concatenation of l's and r's
// languages, yielding Pair{a, b} for a ∈ l's results, b ∈ r's results.
func Concatenate[K comparable](l, r Node[K]) Node[K] {
	return &concatenateNode[K]{memo: newMemo[K](), left: l, right: r}
}

// Then is sugar for Concatenate(p, q) — "a & b".
func Then[K comparable](p, q Node[K]) Node[K] {
	return Concatenate(p, q)
}

func (c *concatenateNode[K]) Derive(t derp.Token[K]) Node[K] {
	key := tokenKey(t)
	if cached, ok := c.memoizedDerive(key); ok {
		return cached
	}
	d := &delayedNode[K]{memo: newMemo[K](), source: c, tok: t}
	c.rememberDerive(key, d)
	return d
}

// construct applies the derivative rule eagerly, for Delayed.force only:
//
//	(l & r).derive(t) = (l.derive(t) & r)  |  (Delta(l) & r.derive(t))
func (c *concatenateNode[K]) construct(t derp.Token[K]) Node[K] {
	return Alternate(
		Concatenate(c.left.Derive(t), c.right),
		Concatenate(Delta(c.left), c.right.Derive(t)),
	)
}

func (c *concatenateNode[K]) operands() []Node[K] {
	return []Node[K]{c.left, c.right}
}

func (c *concatenateNode[K]) nullRule(eng *fixedPointEngine[K]) *set.Set[any] {
	lefts := eng.evalNull(c.left)
	rights := eng.evalNull(c.right)
	out := set.New[any]()
	for _, a := range lefts.Values() {
		for _, b := range rights.Values() {
			out.Add(Pair{First: a, Second: b})
		}
	}
	return out
}

func (c *concatenateNode[K]) String() string {
	return fmt.Sprintf("Concatenate(%s, %s)", c.left, c.right)
}
