package css

import (
	"fmt"

	"github.com/npillmayer/cascade/dom"
)

// CascadeInfo holds the structural information about a node which selector
// matching needs: the node's 0-based position among its siblings and wether
// it is the last of its siblings.
type CascadeInfo struct {
	IndexInParent uint32
	IsLastChild   bool
}

func (ci CascadeInfo) String() string {
	return fmt.Sprintf("[%d last=%v]", ci.IndexInParent, ci.IsLastChild)
}

// CascadeInfoMap holds cascade info for every node of a tree, indexed by NodeID.
type CascadeInfoMap []CascadeInfo

// Get returns the cascade info for a node.
func (cim CascadeInfoMap) Get(n dom.NodeID) (CascadeInfo, bool) {
	if int(n) >= len(cim) {
		return CascadeInfo{}, false
	}
	return cim[n], true
}

// Equal is a predicate: do two cascade info maps hold identical entries?
func (cim CascadeInfoMap) Equal(other CascadeInfoMap) bool {
	if len(cim) != len(other) {
		return false
	}
	for i := range cim {
		if cim[i] != other[i] {
			return false
		}
	}
	return true
}

// BuildCascadeInfo computes cascade info for the nodes of a tree. parents has
// to list every node with at least one child (see dom.Tree.ParentsSortedByDepth).
//
// For each parent, the entry of the parent itself and the entries of all of
// its children are set. Nodes never visited (isolated roots without children)
// keep a zero entry { 0, false }.
//
// The result reflects the tree's hierarchy at the time of the call and has to
// be re-built whenever the hierarchy changes.
func BuildCascadeInfo(h dom.Hierarchy, parents []dom.ParentWithDepth) CascadeInfoMap {
	info := make(CascadeInfoMap, h.Len())
	for _, parent := range parents {
		p := parent.NodeID
		if int(p) >= len(info) {
			tracer().Errorf("cascade info: parent %s is not part of tree", p)
			continue
		}
		_, hasNext := h.NextSibling(p)
		info[p] = CascadeInfo{
			IndexInParent: precedingSiblings(h, p),
			IsLastChild:   !hasNext, // necessary for :last-child
		}
		for i, ch := range h.Children(p) {
			if int(ch) >= len(info) {
				continue
			}
			_, hasNext := h.NextSibling(ch)
			info[ch] = CascadeInfo{
				IndexInParent: uint32(i),
				IsLastChild:   !hasNext,
			}
		}
	}
	tracer().Debugf("cascade info built for %d nodes from %d parents", len(info), len(parents))
	return info
}

// ComputeCascadeInfo computes cascade info for every node of a tree.
func ComputeCascadeInfo(tree *dom.Tree) CascadeInfoMap {
	return BuildCascadeInfo(tree, tree.ParentsSortedByDepth())
}

type previousSiblings interface {
	PreviousSibling(dom.NodeID) (dom.NodeID, bool)
}

// precedingSiblings counts the siblings before n. A node without preceding
// siblings has index 0. Roots of hierarchies which cannot tell previous
// siblings are treated as first children.
func precedingSiblings(h dom.Hierarchy, n dom.NodeID) uint32 {
	if ps, ok := h.(previousSiblings); ok {
		cnt := uint32(0)
		for s, ok := ps.PreviousSibling(n); ok; s, ok = ps.PreviousSibling(s) {
			cnt++
		}
		return cnt
	}
	p, ok := h.Parent(n)
	if !ok {
		return 0
	}
	for i, ch := range h.Children(p) {
		if ch == n {
			return uint32(i)
		}
	}
	return 0
}
