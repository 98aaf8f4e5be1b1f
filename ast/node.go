package ast

import (
	"fmt"

	"github.com/npillmayer/derp"
	"github.com/npillmayer/derp/parser"
)

// Field is one named child exposed by a compound value during a walk,
// visit, transform or print.
type Field struct {
	Name  string
	Value any
}

// Inspectable is implemented by domain result types — typically the
// output of a Reduce function — that want to expose their own structure
// to Walk/Accept, Fields/Children and Sprint/Printer beyond the two shapes
// understood natively (parser.Pair and []any). Transform does not descend
// into Inspectable values.
type Inspectable interface {
	Fields() []Field
}

// Spanner is implemented by a parse result that carries its own source
// position — typically a Reduce function closing over the derp.Span the
// parse driver observed while building the value. Printer uses it to
// annotate a node's rendered text with its provenance.
type Spanner interface {
	Span() derp.Span
}

// Slice is a three-part slicing result, "a[first:second:third]", with any
// of the three parts possibly nil for the omitted-bound case.
type Slice struct {
	First, Second, Third any
}

// Fields implements Inspectable.
func (s Slice) Fields() []Field {
	return []Field{
		{Name: "first", Value: s.First},
		{Name: "second", Value: s.Second},
		{Name: "third", Value: s.Third},
	}
}

// Fields returns v's children, understanding Inspectable, parser.Pair and
// []any; anything else has no fields and is a leaf. This is the field
// iteration primitive Walk and Printer build on; call it
// directly to inspect one value's immediate structure without walking.
func Fields(v any) []Field {
	switch x := v.(type) {
	case Inspectable:
		return x.Fields()
	case parser.Pair:
		return []Field{
			{Name: "first", Value: x.First},
			{Name: "second", Value: x.Second},
		}
	case []any:
		out := make([]Field, len(x))
		for i, e := range x {
			out[i] = Field{Name: fmt.Sprintf("%d", i), Value: e}
		}
		return out
	default:
		return nil
	}
}

// Children returns just the child values of v, in the same order as
// Fields, discarding field names — the child iteration primitive for
// callers that only care about structure, not which role each child
// plays.
func Children(v any) []any {
	flds := Fields(v)
	if len(flds) == 0 {
		return nil
	}
	out := make([]any, len(flds))
	for i, f := range flds {
		out[i] = f.Value
	}
	return out
}

// headerLabel names a compound value for printing — the part before "(" —
// and doubles as the variant name a Dispatcher keys its handlers on.
func headerLabel(v any) string {
	switch v.(type) {
	case parser.Pair:
		return "Pair"
	case []any:
		return "Seq"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// leafText renders a value with no fields, preferring its own String()
// where available.
func leafText(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}
