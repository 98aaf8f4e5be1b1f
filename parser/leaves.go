package parser

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/npillmayer/derp"
	"github.com/npillmayer/derp/set"
)

// --- Empty ------------------------------------------------------------

// emptyNode matches no string at all. Empty is its own derivative for
// every token, so a single shared instance per K is constructed lazily and
// reused.
type emptyNode[K comparable] struct {
	memo[K]
}

// emptyInstances holds the shared Empty node of each K, keyed by K's type.
var emptyInstances sync.Map

// Empty returns the parser matching no input whatsoever.
func Empty[K comparable]() Node[K] {
	key := reflect.TypeOf((*K)(nil)).Elem()
	if n, ok := emptyInstances.Load(key); ok {
		return n.(Node[K])
	}
	n, _ := emptyInstances.LoadOrStore(key, Node[K](&emptyNode[K]{memo: newMemo[K]()}))
	return n.(Node[K])
}

func (e *emptyNode[K]) Derive(derp.Token[K]) Node[K]                      { return e }
func (e *emptyNode[K]) operands() []Node[K]                               { return nil }
func (e *emptyNode[K]) nullRule(*fixedPointEngine[K]) *set.Set[any]       { return set.New[any]() }
func (e *emptyNode[K]) String() string                                   { return "Empty" }

// --- Epsilon ------------------------------------------------------------

// epsilonNode matches only the empty string, yielding a single fixed result.
type epsilonNode[K comparable] struct {
	memo[K]
	value any
}

// Epsilon returns a parser matching only the empty string and yielding v.
func Epsilon[K comparable](v any) Node[K] {
	return &epsilonNode[K]{memo: newMemo[K](), value: v}
}

func (e *epsilonNode[K]) Derive(derp.Token[K]) Node[K] {
	return Empty[K]()
}

func (e *epsilonNode[K]) operands() []Node[K] { return nil }

func (e *epsilonNode[K]) nullRule(*fixedPointEngine[K]) *set.Set[any] {
	return set.New[any](e.value)
}

func (e *epsilonNode[K]) String() string {
	return fmt.Sprintf("Epsilon(%v)", e.value)
}

// --- Terminal ------------------------------------------------------------

// terminalNode matches exactly one token of a given kind.
type terminalNode[K comparable] struct {
	memo[K]
	kind K
}

// Terminal returns a parser matching exactly one token whose Kind equals
// kind, yielding that token's Value.
func Terminal[K comparable](kind K) Node[K] {
	return &terminalNode[K]{memo: newMemo[K](), kind: kind}
}

func (t *terminalNode[K]) Derive(tok derp.Token[K]) Node[K] {
	key := tokenKey(tok)
	if cached, ok := t.memoizedDerive(key); ok {
		return cached
	}
	var result Node[K]
	if tok.Kind == t.kind {
		result = Epsilon[K](tok.Value)
	} else {
		result = Empty[K]()
	}
	t.rememberDerive(key, result)
	return result
}

func (t *terminalNode[K]) operands() []Node[K] { return nil }

func (t *terminalNode[K]) nullRule(*fixedPointEngine[K]) *set.Set[any] {
	return set.New[any]()
}

func (t *terminalNode[K]) String() string {
	return fmt.Sprintf("Terminal(%v)", t.kind)
}

// --- Delta ------------------------------------------------------------

// deltaNode matches only the empty string, inheriting its inner parser's
// null set. It exists solely to make Concatenate's derivative rule
// expressible: (l & r).derive(t) needs "l, but only the part of l that
// already accepted the empty string" as an operand, which is exactly
// Delta(l).
type deltaNode[K comparable] struct {
	memo[K]
	inner Node[K]
}

// Delta wraps p so that it matches only the empty string, with the same
// null set as p. Used internally by Concatenate's derivative rule; rarely
// useful to call directly from client code.
func Delta[K comparable](p Node[K]) Node[K] {
	return &deltaNode[K]{memo: newMemo[K](), inner: p}
}

func (d *deltaNode[K]) Derive(derp.Token[K]) Node[K] {
	return Empty[K]()
}

func (d *deltaNode[K]) operands() []Node[K] { return []Node[K]{d.inner} }

func (d *deltaNode[K]) nullRule(eng *fixedPointEngine[K]) *set.Set[any] {
	return eng.evalNull(d.inner)
}

func (d *deltaNode[K]) String() string {
	return fmt.Sprintf("Delta(%s)", d.inner)
}
