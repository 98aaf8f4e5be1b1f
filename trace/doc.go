/*
Package trace selects named tracers for the rest of the module, in the
style of github.com/npillmayer/schuko-based projects: a package that wants
to log calls one accessor here (Parser or AST) rather than reaching for
the standard log package directly.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package trace
