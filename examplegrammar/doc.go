/*
Package examplegrammar is a test-only fixture: a lexmachine-based scanner
for a tiny arithmetic language (digits, '+', '-', '*', '/', '(', ')'), producing
derp.Token[Kind] streams for the seed tests in package parser. It exists
so those tests feed Parse real scanned tokens instead of hand-built
derp.Token literals for every case, the way github.com/npillmayer/gorgo's
own tests drive its Earley parser through lr/scanner's lexmachine adapter.

Nothing in derp/parser or derp/ast imports this package; it is consumed
only from _test.go files.

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package examplegrammar
