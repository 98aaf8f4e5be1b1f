package parser

import (
	"fmt"

	"github.com/npillmayer/derp"
)

// ErrUnboundRecurrence is panicked by a Recurrence whose target has not
// been bound yet — deriving or querying it before GrammarBuilder.Bind (or
// Recurrence.Bind) has run is a construction-time programmer error.
// GrammarBuilder.Validate turns this into an ordinary returned error before
// a grammar is ever handed to Parse.
var ErrUnboundRecurrence = fmt.Errorf("parser: recurrence accessed before its target was bound")

// ErrUnboundGrammarRule is returned by GrammarBuilder.Validate and
// GrammarBuilder.Root when one of the grammar's rules still has an
// unresolved forward reference. Parse itself does not check for it.
type ErrUnboundGrammarRule struct {
	Name string
}

func (e *ErrUnboundGrammarRule) Error() string {
	return fmt.Sprintf("parser: grammar rule %q is referenced but never assigned", e.Name)
}

// ErrInvalidToken is returned by ParseValues when an input element is not
// a derp.Token[K]. Parse itself cannot produce this error, since its input
// is statically typed — ParseValues exists for callers at a dynamic
// boundary (e.g. a generic scanner yielding []any) that cannot make that
// guarantee at compile time. Span pinpoints the offending element's
// position in the input, [i, i+1), for callers reporting the error back
// to a user.
type ErrInvalidToken struct {
	Value any
	Span  derp.Span
}

func (e *ErrInvalidToken) Error() string {
	return fmt.Sprintf("parser: expected a Token at %s, got %T (%v)", e.Span, e.Value, e.Value)
}
