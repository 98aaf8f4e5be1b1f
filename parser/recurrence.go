package parser

import (
	"fmt"

	"github.com/npillmayer/derp"
	"github.com/npillmayer/derp/set"
)

// Recurrence is an explicit forward reference, used to close cycles in a
// grammar. It is created with a nil target and bound exactly once — either
// by hand, via Bind, or by GrammarBuilder when a named rule's right-hand
// side is finally assigned.
//
// Every reference to "some other rule" in a cyclic grammar goes through a
// Recurrence rather than a raw pointer to the eventual Node, which keeps
// the rest of the algebra purely functional and makes cyclicity explicit
// in the data model instead of hidden behind mutable fields on arbitrary
// nodes.
type Recurrence[K comparable] struct {
	memo[K]
	name   string
	target Node[K]
	bound  bool
}

// NewRecurrence creates an unbound forward reference named name (used only
// for diagnostics — two Recurrences are equal only by identity regardless
// of name). Call Bind before the grammar is used for parsing.
func NewRecurrence[K comparable](name string) *Recurrence[K] {
	return &Recurrence[K]{memo: newMemo[K](), name: name}
}

// Bind assigns target as r's forward reference. It may be called only once;
// a second call returns an error rather than silently overwriting the
// first binding.
func (r *Recurrence[K]) Bind(target Node[K]) error {
	if r.bound {
		return fmt.Errorf("parser: recurrence %q already bound", r.name)
	}
	r.target = target
	r.bound = true
	return nil
}

// Bound reports whether Bind has been called.
func (r *Recurrence[K]) Bound() bool {
	return r.bound
}

// Name returns the diagnostic name this recurrence was created with.
func (r *Recurrence[K]) Name() string {
	return r.name
}

func (r *Recurrence[K]) Derive(t derp.Token[K]) Node[K] {
	if !r.bound {
		panic(ErrUnboundRecurrence)
	}
	return r.target.Derive(t)
}

func (r *Recurrence[K]) operands() []Node[K] {
	if !r.bound {
		panic(ErrUnboundRecurrence)
	}
	return []Node[K]{r.target}
}

func (r *Recurrence[K]) nullRule(eng *fixedPointEngine[K]) *set.Set[any] {
	if !r.bound {
		panic(ErrUnboundRecurrence)
	}
	return eng.evalNull(r.target)
}

func (r *Recurrence[K]) String() string {
	return fmt.Sprintf("Recurrence(%s)", r.name)
}
