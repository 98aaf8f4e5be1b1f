package ast

// Visitor receives a callback for every value reached by Accept. Visit
// returns true to descend into v's children, false to skip them — the
// same dispatch shape lr/sppf's Cursor/Pruner pair uses for parse-forest
// traversal, simplified here to a single callback since result values
// carry no ambiguity of their own by the time they reach ast.
type Visitor interface {
	Visit(v any) bool
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(v any) bool

// Visit implements Visitor.
func (f VisitorFunc) Visit(v any) bool { return f(v) }

// Dispatcher is a Visitor that dispatches on a value's variant name —
// "Pair", "Seq", or a Go type name (headerLabel's own labeling scheme) —
// to a handler registered with On, falling back to a default handler for
// any variant without one. The zero-value Dispatcher's fallback always
// recurses, i.e. behaves exactly like Walk on its own.
type Dispatcher struct {
	handlers map[string]func(v any) bool
	fallback func(v any) bool
}

// NewDispatcher returns an empty Dispatcher; every variant falls through
// to Fallback (or the default recurse-into-children behavior) until
// registered with On.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]func(v any) bool)}
}

// On registers handler for values whose variant name is variant, as
// reported by headerLabel (e.g. "Pair", "Seq", or a Reduce result's own
// %T). Returns d for chaining.
func (d *Dispatcher) On(variant string, handler func(v any) bool) *Dispatcher {
	d.handlers[variant] = handler
	return d
}

// Fallback sets the handler used for any variant with no registered
// handler. Returns d for chaining.
func (d *Dispatcher) Fallback(handler func(v any) bool) *Dispatcher {
	d.fallback = handler
	return d
}

// Visit implements Visitor, dispatching on headerLabel(v).
func (d *Dispatcher) Visit(v any) bool {
	if h, ok := d.handlers[headerLabel(v)]; ok {
		return h(v)
	}
	if d.fallback != nil {
		return d.fallback(v)
	}
	return true
}

// Accept walks root, dispatching every reached value to vis.
func Accept(root any, vis Visitor) {
	Walk(root, vis.Visit)
}
