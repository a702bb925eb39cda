/*
Package cssom provides functionality for CSS styling.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. This package
does not parse CSS itself. CSS handling is de-coupled by introducing
appropriate interfaces StyleSheet and Rule, concrete implementations may be
found in sub-packages (see package douceuradapter).

Rules carry a pre-parsed selector path and a priority. Restyle applies the
rules of a style sheet to every node of a dom.Tree, for each of the
interaction states none, hover, active and focus:

    styling, err := cssom.Restyle(ctx, tree, sheet)
    …
    decls := styling.Declarations(node, selector.Hover)

For every node and state, the result lists the rules matching the node in
priority order, together with their declarations. Rules are not merged and
properties are not inherited: the cascade proper is left to clients, which
know about the semantics of CSS properties.

Restyle is a batch operation. It computes the cascade info for the tree
once and then matches the nodes in parallel, using a group of worker
goroutines. The tree must not be modified while Restyle is running.

A good explanation of styling may be found in

   https://hacks.mozilla.org/2017/08/inside-a-super-fast-css-engine-quantum-css-aka-stylo/

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.cssom")
}
