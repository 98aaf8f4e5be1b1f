/*
Package parser implements a combinator algebra for context-free grammars
based on Brzozowski derivatives.

A grammar is a graph of Node values — Empty, Epsilon, Terminal, Alternate,
Concatenate, Reduce, Delta and Recurrence — built bottom-up, except where
cycles are required: a Recurrence is created with a nil target and later
bound once the referenced rule is known, exactly the way a forward label is
resolved in a one-pass assembler.

Differentiating a Node with respect to a Token yields a new Node
recognizing the suffix language; differentiating with respect to the empty
string ("nullability") yields the set of parse results the Node already
accepts. Because the graph may be cyclic, nullability cannot be computed by
naive recursion — it requires the iterative least-fixed-point implemented
in nullability.go.

To keep a cyclic grammar's derivative from expanding without bound,
Alternate, Concatenate and Reduce never construct their derivative
eagerly. They return a Delayed thunk instead, forced only when something
actually inspects it (delayed.go). A Recurrence builds no derivative of its
own: it passes Derive on to its target.

Use NewGrammarBuilder to assemble a grammar with forward references, and
Parse to fold a token stream across a root Node and collect the resulting
parse set.

A Node graph is not safe for concurrent derivation from multiple
goroutines: Derive and DeriveNull mutate per-node memo tables in place. If a
grammar must be shared across goroutines, build an independent graph per
goroutine or serialize access externally.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser
