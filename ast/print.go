package ast

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/npillmayer/derp/trace"
	"github.com/pterm/pterm"
)

// printMaxDepth bounds recursion the same way maxWalkDepth does; beyond it
// the printer renders the value's label followed by "(...)", e.g.
// "Pair(...)", instead of descending further.
const printMaxDepth = 64

// ColorHook post-processes a node's already-rendered text — node is the
// value being printed, depth its depth in the tree, text its header label
// (for a compound value) or leaf text, already including any Spanner
// provenance suffix. A nil hook disables coloring. Receiving text lets a
// hook do content-based formatting (e.g. highlight a value) in addition
// to cosmetic styling.
type ColorHook func(node any, depth int, text string) string

// DefaultColorHook alternates pterm's cyan foreground styles by depth —
// cosmetic only, swappable via Printer.Color.
func DefaultColorHook(node any, depth int, text string) string {
	if depth%2 == 0 {
		return pterm.NewStyle(pterm.FgCyan).Sprint(text)
	}
	return pterm.NewStyle(pterm.FgLightCyan).Sprint(text)
}

// Printer renders a parse result tree as indented text. The zero value
// disables coloring and behaves exactly like Sprint.
type Printer struct {
	Color ColorHook
}

// Sprint renders root with no coloring.
func Sprint(root any) string {
	return (&Printer{}).Sprint(root)
}

// Sprint renders root using p's configured ColorHook.
func (p *Printer) Sprint(root any) string {
	trace.AST().Debugf("print: rendering %T", root)
	var b strings.Builder
	p.print(&b, root, 0, make(map[any]bool))
	return b.String()
}

// pointerKey returns a map key usable for cycle detection if v is a
// pointer-kind value, and false otherwise. Only pointer-kind values can
// actually participate in a cycle — a plain struct or slice of values has
// no indirection to cycle through — so value types skip this check
// entirely and rely on printMaxDepth as their only backstop.
func pointerKey(v any) (any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return v, true
	}
	return nil, false
}

// provenance returns a trailing " (from…to)" suffix for any v carrying a
// Spanner-reported derp.Span, and "" otherwise.
func provenance(v any) string {
	sp, ok := v.(Spanner)
	if !ok {
		return ""
	}
	return " " + sp.Span().String()
}

func (p *Printer) print(b *strings.Builder, v any, depth int, onPath map[any]bool) {
	if depth > printMaxDepth {
		fmt.Fprintf(b, "%s(...)", headerLabel(v))
		return
	}
	if key, isPtr := pointerKey(v); isPtr {
		if onPath[key] {
			fmt.Fprintf(b, "%s(...)", headerLabel(v))
			return
		}
		onPath[key] = true
		defer delete(onPath, key)
	}

	flds := Fields(v)
	if len(flds) == 0 {
		text := leafText(v) + provenance(v)
		if p.Color != nil {
			text = p.Color(v, depth, text)
		}
		b.WriteString(text)
		return
	}

	label := headerLabel(v) + provenance(v)
	if p.Color != nil {
		label = p.Color(v, depth, label)
	}
	b.WriteString(label)
	b.WriteString("(\n")
	indent := strings.Repeat("  ", depth+1)
	for i, f := range flds {
		b.WriteString(indent)
		b.WriteString(f.Name)
		b.WriteString(": ")
		p.print(b, f.Value, depth+1, onPath)
		if i != len(flds)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(")")
}
