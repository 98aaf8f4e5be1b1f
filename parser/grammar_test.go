package parser

import "testing"

func TestGrammarBuilderForwardReferenceResolves(t *testing.T) {
	g := NewGrammarBuilder[tkind]("digits")
	// "Digits" is referenced before it is defined.
	ref := g.Rule("Digits")
	if _, ok := ref.(*Recurrence[tkind]); !ok {
		t.Fatalf("expected a Recurrence placeholder, got %T", ref)
	}

	body := Alternate[tkind](Epsilon[tkind](nil), Then[tkind](Terminal[tkind](tNum), g.Rule("Digits")))
	if err := g.Bind("Digits", body); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	root, err := g.Root("Digits")
	if err != nil {
		t.Fatalf("Root: %v", err)
	}
	if root != ref {
		t.Errorf("Root should return the same placeholder identity every caller saw")
	}
}

func TestGrammarBuilderBindTwiceFails(t *testing.T) {
	g := NewGrammarBuilder[tkind]("dup")
	if err := g.Bind("X", Terminal[tkind](tA)); err != nil {
		t.Fatalf("first Bind: %v", err)
	}
	if err := g.Bind("X", Terminal[tkind](tB)); err == nil {
		t.Fatal("expected an error re-binding an already-bound rule")
	}
}

func TestGrammarBuilderRootFailsValidationFirst(t *testing.T) {
	g := NewGrammarBuilder[tkind]("incomplete")
	g.Rule("Other")
	if err := g.Bind("Start", Terminal[tkind](tA)); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if _, err := g.Root("Start"); err == nil {
		t.Fatal("expected Root to fail because Other is unbound")
	}
}
