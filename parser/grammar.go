package parser

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// GrammarBuilder is a named-binding container permitting forward
// references among rules, resolved to Recurrence placeholders: a rule
// referenced before it is defined gets a placeholder that is filled in
// once the rule is finally bound, closing the cycle.
//
// Rule names are kept in a sorted set (github.com/emirpasic/gods's
// treeset, the same container github.com/npillmayer/gorgo's lr package
// uses to keep CFSM states ordered) purely so that Validate reports the
// first unbound rule in a deterministic order instead of map iteration
// order.
type GrammarBuilder[K comparable] struct {
	name  string
	rules map[string]Node[K]
	bound map[string]bool
	order *treeset.Set
}

// NewGrammarBuilder creates an empty grammar builder named name (used only
// for diagnostics).
func NewGrammarBuilder[K comparable](name string) *GrammarBuilder[K] {
	return &GrammarBuilder[K]{
		name:  name,
		rules: make(map[string]Node[K]),
		bound: make(map[string]bool),
		order: treeset.NewWith(utils.StringComparator),
	}
}

// Rule returns the Node bound to name, or — if name has not been bound
// yet — a freshly minted Recurrence placeholder remembered under name.
// This is how a rule under construction references another rule that
// comes later in program order: the reference is resolved once the
// referenced rule is eventually Bind'ed.
func (b *GrammarBuilder[K]) Rule(name string) Node[K] {
	if n, ok := b.rules[name]; ok {
		return n
	}
	r := NewRecurrence[K](name)
	b.rules[name] = r
	b.order.Add(name)
	return r
}

// Bind assigns rhs as the definition of name. If name was previously
// referenced via Rule before being defined, the pending Recurrence
// placeholder is resolved to rhs in place, so that every node already
// holding onto the placeholder sees the new definition. Binding the same
// name twice is an error.
func (b *GrammarBuilder[K]) Bind(name string, rhs Node[K]) error {
	b.order.Add(name)
	if b.bound[name] {
		return fmt.Errorf("parser: grammar rule %q already bound", name)
	}
	if existing, ok := b.rules[name]; ok {
		if rec, isRecurrence := existing.(*Recurrence[K]); isRecurrence {
			if err := rec.Bind(rhs); err != nil {
				return err
			}
			b.bound[name] = true
			return nil
		}
	}
	b.rules[name] = rhs
	b.bound[name] = true
	return nil
}

// Validate reports the first (in sorted order) rule name that was
// referenced via Rule but never Bind'ed. A grammar must validate cleanly
// before it is handed to Parse.
func (b *GrammarBuilder[K]) Validate() error {
	it := b.order.Iterator()
	for it.Next() {
		name := it.Value().(string)
		if !b.bound[name] {
			return &ErrUnboundGrammarRule{Name: name}
		}
	}
	return nil
}

// Root validates the grammar and returns the Node bound to name, suitable
// for passing to Parse as the start symbol.
func (b *GrammarBuilder[K]) Root(name string) (Node[K], error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	n, ok := b.rules[name]
	if !ok {
		return nil, &ErrUnboundGrammarRule{Name: name}
	}
	return n, nil
}

// Name returns the grammar's diagnostic name.
func (b *GrammarBuilder[K]) Name() string {
	return b.name
}
