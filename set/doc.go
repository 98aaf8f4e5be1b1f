/*
Package set implements a small iteratable set container, modeled closely
after github.com/npillmayer/gorgo's lr/iteratable.Set: values are compared
structurally rather than by identity, and set operations mutate the
receiver rather than returning a fresh copy.

Unusually, the operations that grow a set — Add and Union — mutate the
receiver in place rather than returning a fresh copy. Copy, Map and Equals
are non-destructive. The nullability fixed-point engine in package parser
compares each node's freshly computed result set against its cached one
with Equals and replaces the cached set when they differ; Alternate's
null rule Copies a set before it Unions into it, so no cached set is
modified in place.

Because result values produced by a grammar are arbitrary (pairs, structs,
reduced values — anything a client's Reduce function returns), membership
cannot be decided by a comparable constraint alone. Values are keyed by a
structural hash, computed with github.com/cnf/structhash, the same library
github.com/npillmayer/gorgo's earley package uses to key its backlink table.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package set
