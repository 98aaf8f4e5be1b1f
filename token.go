package derp

import "fmt"

// Token is an opaque input record, produced by a scanner and fed to a
// parser one at a time. The core never interprets Value — it is carried
// through Terminal's derivative unchanged and surfaces in parse results.
//
// An example would be a token for a floating point number:
//
//	Kind  = Float      // category, application-specific
//	Value = 3.1416      // the payload, surfaced in results
type Token[K comparable] struct {
	Kind  K
	Value any
}

// String is a debug Stringer for tokens.
func (t Token[K]) String() string {
	return fmt.Sprintf("token(%v, %v)", t.Kind, t.Value)
}

// --- Spans -------------------------------------------------------------

// Span captures a length of input the parse driver has consumed so far. It
// denotes a start position and the position just behind the end, i.e. a
// half-open interval [from, to). Spans are used only for diagnostics; no
// part of the derivative algebra depends on them.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y).
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull returns true for a zero-value span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend widens s so that it also covers other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
