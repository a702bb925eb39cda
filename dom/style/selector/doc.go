/*
Package selector models CSS selector paths as sequences of tokens.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

A selector path like

   body > .foo.main #baz:hover

is stored as a flat sequence of tokens: simple selectors (type, class, id,
universal, pseudo-class) interleaved with combinators (descendant or direct
child). Parsing selector text is not part of this package; paths are
constructed by clients, usually a CSS parser outside of this module, or by
hand:

   path := selector.P(
       selector.Type("body"), selector.Child(),
       selector.Class("foo"), selector.Class("main"), selector.Descendant(),
       selector.ID("baz"), selector.PseudoClass(selector.Hover),
   )

Matching a path against a node happens from right to left: the rightmost
group of simple selectors has to match the node itself, groups further left
have to match ancestors. A GroupIterator splits a path into these groups,
starting with the rightmost one.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.selector'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.selector")
}
