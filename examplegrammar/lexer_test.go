package examplegrammar

import "testing"

func TestTokenizeArithmeticExpression(t *testing.T) {
	tokens, err := Tokenize("12 + 3 * (4)")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []struct {
		kind  Kind
		value any
	}{
		{Num, 12}, {Plus, "+"}, {Num, 3}, {Star, "*"}, {LParen, "("}, {Num, 4}, {RParen, ")"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind || tokens[i].Value != w.value {
			t.Errorf("token %d: expected %v/%v, got %v/%v", i, w.kind, w.value, tokens[i].Kind, tokens[i].Value)
		}
	}
}

func TestTokenizeHandlesMinusAndSlash(t *testing.T) {
	tokens, err := Tokenize("(1*3)/4")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []struct {
		kind  Kind
		value any
	}{
		{LParen, "("}, {Num, 1}, {Star, "*"}, {Num, 3}, {RParen, ")"}, {Slash, "/"}, {Num, 4},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind || tokens[i].Value != w.value {
			t.Errorf("token %d: expected %v/%v, got %v/%v", i, w.kind, w.value, tokens[i].Kind, tokens[i].Value)
		}
	}

	minusOnly, err := Tokenize("5 - 2")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(minusOnly) != 3 || minusOnly[1].Kind != Minus {
		t.Fatalf("expected a Minus token in the middle, got %v", minusOnly)
	}
}

func TestTokenizeSkipsWhitespace(t *testing.T) {
	tokens, err := Tokenize("   7   ")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Value != 7 {
		t.Fatalf("expected a single Num(7) token, got %v", tokens)
	}
}
