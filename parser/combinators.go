package parser

// OneOrMore returns a parser matching one or more repetitions of a,
// yielding a left-leaning chain of Pairs — ((nil, a1), a2), a3) for three
// repetitions, the leading nil standing for zero prior repetitions —
// flattened in order by UnpackLeft.
//
// This is not flat sugar over Alternate/Concatenate: it mints a fresh
// Recurrence bound to itself (r = ε | (r & a)), the recurrence as the
// LEFT operand of Concatenate, the same left-recursive construction a
// hand-written "S ::= S a | ε" grammar rule would use, and returns r & a
// so that at least one a is required. This keeps the
// repeat combinator exercising exactly the same cyclic machinery as
// user-authored left recursion, rather than being a special case the
// fixed-point engine never sees.
func OneOrMore[K comparable](a Node[K]) Node[K] {
	r := NewRecurrence[K]("<one-or-more>")
	body := Alternate[K](Epsilon[K](nil), Concatenate[K](r, a))
	if err := r.Bind(body); err != nil {
		panic(err) // r is freshly minted and unbound; Bind cannot fail here
	}
	return Concatenate[K](r, a)
}

// Optional returns a parser matching zero or one occurrence of a —
// "~a" — yielding nil for the zero case.
func Optional[K comparable](a Node[K]) Node[K] {
	return Alternate[K](Epsilon[K](nil), a)
}

// UnpackRight flattens a right-leaning chain of Pairs produced by nested
// Concatenate calls into an ordered slice. It stops at the first non-Pair
// value; a nil final value is dropped rather than appended.
func UnpackRight(v any) []any {
	var out []any
	for {
		p, ok := v.(Pair)
		if !ok {
			if v != nil {
				out = append(out, v)
			}
			return out
		}
		out = append(out, p.First)
		v = p.Second
	}
}

// UnpackLeft flattens a left-leaning chain of Pairs — ((a, b), c) for
// three elements — into an ordered slice. A nil innermost value (as
// produced by OneOrMore's base case) is dropped rather than prepended.
func UnpackLeft(v any) []any {
	var rev []any
	for {
		p, ok := v.(Pair)
		if !ok {
			if v != nil {
				rev = append(rev, v)
			}
			break
		}
		rev = append(rev, p.Second)
		v = p.First
	}
	out := make([]any, len(rev))
	for i, x := range rev {
		out[len(rev)-1-i] = x
	}
	return out
}
