/*
Package htmltree creates a node tree for styling from an HTML parse tree.

Overview

This is an adapter from package golang.org/x/net/html to dom.Tree.
Only element nodes are transferred: text, comments and doctype nodes do
not take part in selector matching and would disturb the counting of
sibling positions for :nth-child(…) and friends.

For every element, the type tag is the (lower-case) tag name, the `id`
attribute becomes an id token and the `class` attribute is split at white
space into class tokens.

Clients interested in the HTML node of a styled dom.NodeID (or vice versa)
may use the returned Index.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmltree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.dom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.dom")
}
