/*
Package css decides which CSS selector paths apply to which nodes of a tree.

Selector matching is the part of styling which runs most often: once per
style recalculation, for every node and every rule. This package shields
clients from the details of structural pseudo-classes, combinator chains and
interaction states.

Matching a selector path against a node needs two kinds of information:
live node data (type tag, ids, classes), obtained through interface
dom.Hierarchy, and structural information (position among siblings, being
the last child). The latter is pre-computed for the whole tree into a
CascadeInfoMap:

   info := css.ComputeCascadeInfo(tree)
   m := css.NewMatcher()
   if m.Matches(path, node, tree, info, selector.None) {
       …
   }

A CascadeInfoMap is valid for a tree as long as the hierarchy of the tree is
not changed. Nothing in this package detects stale cascade info; clients have
to re-compute it after every mutation of the hierarchy, otherwise queries
will silently produce wrong results.

Matchers are immutable values and safe for concurrent use, provided the tree
and the cascade info are not mutated concurrently.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/CSS_selectors

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.css'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.css")
}
