package parser

import (
	"testing"

	"github.com/npillmayer/derp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type tkind int

const (
	tA tkind = iota
	tB
	tPlus
	tNum
)

func tok(k tkind, v any) derp.Token[tkind] {
	return derp.Token[tkind]{Kind: k, Value: v}
}

// A single terminal matches exactly one token of its kind.
func TestTerminalSingleToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derp.parser")
	defer teardown()

	p := Terminal[tkind](tA)
	results, err := Parse(p, []derp.Token[tkind]{tok(tA, "x")})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if results.Size() != 1 {
		t.Fatalf("expected 1 result, got %d", results.Size())
	}
	if got := results.Values()[0]; got != "x" {
		t.Errorf("expected value %q, got %v", "x", got)
	}

	if empty, _ := Parse(p, nil); !empty.Empty() {
		t.Errorf("terminal should reject the empty input, got %v", empty.Values())
	}
	if wrong, _ := Parse(p, []derp.Token[tkind]{tok(tB, "y")}); !wrong.Empty() {
		t.Errorf("terminal should reject a token of the wrong kind")
	}
}

// Alternate accepts either branch.
func TestAlternateEitherBranch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derp.parser")
	defer teardown()

	p := Or[tkind](Terminal[tkind](tA), Terminal[tkind](tB))
	for _, k := range []tkind{tA, tB} {
		results, _ := Parse(p, []derp.Token[tkind]{tok(k, "v")})
		if results.Size() != 1 {
			t.Errorf("kind %v: expected 1 result, got %d", k, results.Size())
		}
	}
	if results, _ := Parse(p, []derp.Token[tkind]{tok(tPlus, "v")}); !results.Empty() {
		t.Errorf("neither branch should match tPlus")
	}
}

// Concatenate pairs up results from both operands, in order.
func TestConcatenatePairsResults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derp.parser")
	defer teardown()

	p := Then[tkind](Terminal[tkind](tA), Terminal[tkind](tB))
	results, err := Parse(p, []derp.Token[tkind]{tok(tA, 1), tok(tB, 2)})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if results.Size() != 1 {
		t.Fatalf("expected 1 result, got %d", results.Size())
	}
	pair, ok := results.Values()[0].(Pair)
	if !ok {
		t.Fatalf("expected a Pair, got %T", results.Values()[0])
	}
	if pair.First != 1 || pair.Second != 2 {
		t.Errorf("expected Pair{1, 2}, got %v", pair)
	}
}

// Reduce transforms every accepted result.
func TestReduceTransformsResults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derp.parser")
	defer teardown()

	double := Reduce[tkind](Terminal[tkind](tNum), func(v any) any {
		return v.(int) * 2
	})
	results, _ := Parse(double, []derp.Token[tkind]{tok(tNum, 21)})
	if results.Size() != 1 || results.Values()[0] != 42 {
		t.Fatalf("expected [42], got %v", results.Values())
	}
}

// A bare Epsilon accepts only the empty input.
func TestEpsilonOnlyAcceptsEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derp.parser")
	defer teardown()

	p := Epsilon[tkind]("done")
	if results, _ := Parse(p, nil); results.Size() != 1 || results.Values()[0] != "done" {
		t.Fatalf("expected [done] on empty input, got %v", results.Values())
	}
	if results, _ := Parse(p, []derp.Token[tkind]{tok(tA, "x")}); !results.Empty() {
		t.Fatalf("epsilon should reject any non-empty input")
	}
}

// OneOrMore accepts one or more repetitions and rejects zero.
func TestOneOrMoreRepeats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derp.parser")
	defer teardown()

	p := OneOrMore[tkind](Terminal[tkind](tA))

	if results, _ := Parse(p, nil); !results.Empty() {
		t.Errorf("one-or-more should reject zero repetitions")
	}

	results, err := Parse(p, []derp.Token[tkind]{tok(tA, 1), tok(tA, 2), tok(tA, 3)})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if results.Size() != 1 {
		t.Fatalf("expected exactly 1 result, got %d: %v", results.Size(), results.Values())
	}
	got := UnpackLeft(results.Values()[0])
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("expected [1 2 3], got %v", got)
	}
}

// An ambiguous grammar (E ::= E '+' E | number) yields more than one
// parse result for an input with more than one valid bracketing.
func TestAmbiguousGrammarYieldsMultipleResults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "derp.parser")
	defer teardown()

	g := NewGrammarBuilder[tkind]("ambiguous-sum")
	// Each bracketing is kept as its own ("+", left, right) tree: reducing
	// straight to an int would collapse both bracketings into the single
	// result 6, since a result set holds equal values only once.
	lhs := Reduce[tkind](
		Then[tkind](g.Rule("E"), Then[tkind](Terminal[tkind](tPlus), g.Rule("E"))),
		func(v any) any {
			parts := UnpackRight(v)
			return []any{"+", parts[0], parts[2]}
		},
	)
	sum := Or[tkind](lhs, Terminal[tkind](tNum))
	if err := g.Bind("E", sum); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	root, err := g.Root("E")
	if err != nil {
		t.Fatalf("Root: %v", err)
	}

	tokens := []derp.Token[tkind]{
		tok(tNum, 1), tok(tPlus, nil), tok(tNum, 2), tok(tPlus, nil), tok(tNum, 3),
	}
	results, err := Parse(root, tokens)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if results.Size() < 2 {
		t.Fatalf("expected at least 2 distinct bracketings, got %d: %v", results.Size(), results.Values())
	}
	var eval func(v any) int
	eval = func(v any) int {
		if tree, ok := v.([]any); ok {
			return eval(tree[1]) + eval(tree[2])
		}
		return v.(int)
	}
	for _, v := range results.Values() {
		if eval(v) != 6 {
			t.Errorf("every bracketing of 1+2+3 should reduce to 6, got %v", v)
		}
	}
}

// GrammarBuilder.Validate reports an unbound forward reference.
func TestGrammarBuilderValidateCatchesUnboundRule(t *testing.T) {
	g := NewGrammarBuilder[tkind]("broken")
	_ = g.Rule("Never-bound")
	err := g.Validate()
	if err == nil {
		t.Fatal("expected an error for an unbound rule")
	}
	unbound, ok := err.(*ErrUnboundGrammarRule)
	if !ok {
		t.Fatalf("expected *ErrUnboundGrammarRule, got %T", err)
	}
	if unbound.Name != "Never-bound" {
		t.Errorf("expected name %q, got %q", "Never-bound", unbound.Name)
	}
}

// ParseValues rejects a non-Token element instead of panicking.
func TestParseValuesRejectsInvalidElement(t *testing.T) {
	p := Terminal[tkind](tA)
	_, err := ParseValues[tkind](p, []any{"not a token"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*ErrInvalidToken); !ok {
		t.Fatalf("expected *ErrInvalidToken, got %T", err)
	}
}
