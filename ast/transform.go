package ast

import "github.com/npillmayer/derp/parser"

// deleted is a private sentinel; Deleted is the only value comparable to
// it, so callers can only ever produce it by returning Deleted itself.
type deleted struct{}

// Deleted, returned by a TransformFunc, splices the current value out of
// its parent's parser.Pair chain or []any slice entirely, rather than
// merely replacing it with nil. Deleting one side of a Pair collapses the
// chain to the surviving side; deleting both removes the Pair itself from
// its own parent in turn. This is term-rewriting's "splicing", applied to
// parse result values instead of terex s-expressions.
var Deleted any = &deleted{}

// TransformFunc rewrites a single already-rebuilt value. Returning
// Deleted removes it from its parent; any other return value replaces it.
type TransformFunc func(v any) any

// Transform rewrites root bottom-up: a parser.Pair's or []any's children
// are transformed first and the container rebuilt around the survivors,
// then f is applied to the rebuilt value. Values with no recognized
// container shape (Inspectable values included — they are left for f to
// rebuild itself, if it wants to) are passed to f unchanged.
func Transform(root any, f TransformFunc) any {
	switch x := root.(type) {
	case parser.Pair:
		first := Transform(x.First, f)
		second := Transform(x.Second, f)
		switch {
		case first == Deleted && second == Deleted:
			return Deleted
		case first == Deleted:
			return f(second)
		case second == Deleted:
			return f(first)
		default:
			return f(parser.Pair{First: first, Second: second})
		}
	case []any:
		out := make([]any, 0, len(x))
		for _, e := range x {
			if te := Transform(e, f); te != Deleted {
				out = append(out, te)
			}
		}
		return f(any(out))
	default:
		return f(root)
	}
}
