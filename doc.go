/*
Package derp implements a context-free parser built on Brzozowski
derivatives of parser combinators ("derivative parsing").

Rather than generating tables from a grammar up front, derp represents a
grammar as a graph of parser combinators and repeatedly differentiates that
graph with respect to the input tokens. Differentiating a parser with
respect to a token t yields a new parser recognizing the suffix language
that remains after t has been consumed. Folding this operation across an
entire token stream and then asking the final parser "what do you accept on
the empty string?" produces the set of parse results — possibly more than
one, since the algebra tolerates ambiguous grammars, and possibly zero if
the input was rejected.

Package structure is as follows:

■ parser: the combinator algebra itself — Empty, Epsilon, Terminal,
Alternate, Concatenate, Reduce, Delta and Recurrence nodes, the
memoization and laziness fabric, the nullability fixed-point engine, a
grammar builder for named/forward-referencing rules, and the parse driver.

■ set: a small generic, hashable set type used for parse-result sets and
the per-node null sets of the fixed-point engine.

■ ast: tree-walking and pretty-printing utilities for the values client
grammars build (field/child iteration, a breadth-first walk, a visitor
dispatching on node shape, a substituting/splicing transformer, and a
cycle-safe indenting printer).

■ trace: a thin wrapper selecting named tracers, in the style used
throughout the rest of the module.

■ examplegrammar: a test-only lexer for a small arithmetic language, used
by package parser's tests; not imported by any non-test code.

The base package (this one) contains data types shared across all of the
above: an opaque Token record and a Span for describing input provenance.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package derp
