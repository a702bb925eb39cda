/*
Package dom provides the node tree the style engine matches selectors against.

Status

Early draft. API may change frequently, please stay patient.

Overview

Styling a document means asking, for every node of a tree and for every rule
of a style sheet, "does this rule's selector path apply to this node?".
The selector engine does not care about where a tree comes from (an HTML parse
tree, a widget hierarchy of a GUI toolkit, a test fixture). It consumes
trees through a narrow, read-only interface, Hierarchy:

   Parent(n)        // parent of a node, if any
   NextSibling(n)   // next sibling of a node, if any
   Children(n)      // children of a node in insertion order
   NodeData(n)      // type tag and id/class tokens of a node

Tree Implementation

Type Tree is the default implementation of Hierarchy. It is an arena: nodes
are identified by a stable NodeID, which is an index into flat slices of
hierarchy links and node data. Other per-node information, like the
structural cascade info computed by package css, is stored in slices indexed
by the same NodeID.

A Tree is built with NewRoot and AppendChild. Once handed over to styling, a
tree must not be mutated; clients are responsible for synchronizing tree
mutations with style queries. After every mutation of the hierarchy, derived
per-node information has to be re-computed.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cascade.dom'
func tracer() tracing.Trace {
	return tracing.Select("cascade.dom")
}
