package dom

import "sort"

// ParentWithDepth is a node which has at least one child, together with
// its depth in the tree.
type ParentWithDepth struct {
	Depth  int
	NodeID NodeID
}

// Action is a function type to operate on tree nodes during a walk.
// If an action returns an error, descending the branch below the node is
// aborted and the error is returned from the walk.
type Action func(n NodeID, parent NodeID, position int, depth int) error

// TopDown traverses a tree starting at (and including) the root nodes.
// The traversal guarantees that parents are always processed before
// their children, and siblings are processed in order.
func TopDown(h Hierarchy, roots []NodeID, action Action) error {
	for i, r := range roots {
		if err := topDown(h, r, NoNode, i, 0, action); err != nil {
			return err
		}
	}
	return nil
}

func topDown(h Hierarchy, n NodeID, parent NodeID, position int, depth int, action Action) error {
	if err := action(n, parent, position, depth); err != nil {
		return err
	}
	for i, ch := range h.Children(n) {
		if err := topDown(h, ch, n, i, depth+1, action); err != nil {
			return err
		}
	}
	return nil
}

// ParentsSortedByDepth returns every node of the tree which has at least one
// child, sorted by ascending depth. Nodes of equal depth are in document order.
func (t *Tree) ParentsSortedByDepth() []ParentWithDepth {
	var parents []ParentWithDepth
	TopDown(t, t.roots, func(n, _ NodeID, _ int, depth int) error {
		if t.hierarchy[n].firstChild != NoNode {
			parents = append(parents, ParentWithDepth{Depth: depth, NodeID: n})
		}
		return nil
	})
	sort.SliceStable(parents, func(i, j int) bool {
		return parents[i].Depth < parents[j].Depth
	})
	tracer().Debugf("tree has %d parent nodes", len(parents))
	return parents
}
