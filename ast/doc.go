/*
Package ast walks, transforms and pretty-prints the result values a
derp/parser parse yields — chains of parser.Pair, plain slices, and
whatever Reduce functions build out of them.

There is no fixed node catalogue: a result can be any Go value at all, so
ast understands structure rather than a closed type hierarchy. Three
shapes are recognized out of the box — parser.Pair (Concatenate's natural
result), []any (what parser.UnpackLeft/UnpackRight produce), and any value
implementing Inspectable, which is how a domain-specific Reduce result
(see Slice) opts into structured walking/printing instead of being treated
as an opaque leaf.

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ast
