package examplegrammar

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/derp"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Kind enumerates the token categories of the arithmetic seed grammar:
// non-negative integers and the six symbols '+', '-', '*', '/', '(', ')'.
type Kind int

const (
	Num Kind = iota
	Plus
	Minus
	Star
	Slash
	LParen
	RParen
)

func (k Kind) String() string {
	switch k {
	case Num:
		return "Num"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	case LParen:
		return "("
	case RParen:
		return ")"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var lexer = newLexer()

func newLexer() *lexmachine.Lexer {
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`[0-9]+`), numberAction)
	lx.Add([]byte(`\+`), literalAction(Plus))
	lx.Add([]byte(`\-`), literalAction(Minus))
	lx.Add([]byte(`\*`), literalAction(Star))
	lx.Add([]byte(`\/`), literalAction(Slash))
	lx.Add([]byte(`\(`), literalAction(LParen))
	lx.Add([]byte(`\)`), literalAction(RParen))
	lx.Add([]byte(`( |\t|\n)+`), skipAction)
	if err := lx.Compile(); err != nil {
		// A fixed, hand-written DFA failing to compile is a bug in this
		// package, not a runtime condition callers can act on.
		panic("examplegrammar: lexer DFA failed to compile: " + err.Error())
	}
	return lx
}

func numberAction(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	n, err := strconv.Atoi(string(m.Bytes))
	if err != nil {
		return nil, err
	}
	return derp.Token[Kind]{Kind: Num, Value: n}, nil
}

func literalAction(kind Kind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return derp.Token[Kind]{Kind: kind, Value: string(m.Bytes)}, nil
	}
}

func skipAction(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// Tokenize lexes input into a stream of derp.Token[Kind], ready to feed
// directly to parser.Parse or parser.ParseValues.
func Tokenize(input string) ([]derp.Token[Kind], error) {
	scan, err := lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var tokens []derp.Token[Kind]
	for {
		raw, err, eof := scan.Next()
		if err != nil {
			return nil, err
		}
		if eof {
			break
		}
		tokens = append(tokens, raw.(derp.Token[Kind]))
	}
	return tokens, nil
}
