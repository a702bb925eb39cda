package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// ErrUnknownNode is flagged when a NodeID is not part of a tree. This usually
// means a client kept a node reference across a mutation of the tree.
var ErrUnknownNode = errors.New("node id not found in tree")

// NodeID identifies a node within a tree. NodeIDs are stable for the lifetime
// of a tree and may be used to index per-node slices of derived information.
type NodeID uint32

// NoNode is a sentinel for "no node". It never identifies a valid node.
const NoNode NodeID = ^NodeID(0)

func (id NodeID) String() string {
	if id == NoNode {
		return "#–"
	}
	return fmt.Sprintf("#%d", uint32(id))
}

// Hierarchy is the read-only accessor the style engine uses to navigate a tree.
// Implementations must not change while a style query is running.
type Hierarchy interface {
	Len() int                          // number of nodes, NodeIDs are 0…Len()-1
	Parent(NodeID) (NodeID, bool)      // parent node, false for roots
	NextSibling(NodeID) (NodeID, bool) // next sibling, false for last children
	Children(NodeID) []NodeID          // children in insertion order
	NodeData(NodeID) (*NodeData, bool) // type tag and id/class tokens
}

// hierarchyItem holds the links of a node. Links are NoNode if not present.
type hierarchyItem struct {
	parent, prev, next    NodeID
	firstChild, lastChild NodeID
}

// Tree is an arena of nodes. The zero value is an empty tree, ready to use.
//
// Tree is not safe for concurrent mutation; concurrent read access is fine
// as long as no goroutine is building the tree.
type Tree struct {
	hierarchy []hierarchyItem
	data      []NodeData
	roots     []NodeID
}

// NewTree creates an empty tree with room for n nodes.
func NewTree(n int) *Tree {
	return &Tree{
		hierarchy: make([]hierarchyItem, 0, n),
		data:      make([]NodeData, 0, n),
	}
}

func (t *Tree) newNode(data NodeData) NodeID {
	id := NodeID(len(t.hierarchy))
	t.hierarchy = append(t.hierarchy, hierarchyItem{
		parent: NoNode, prev: NoNode, next: NoNode,
		firstChild: NoNode, lastChild: NoNode,
	})
	t.data = append(t.data, data)
	return id
}

// NewRoot inserts a new root node into the forest. Roots are linked as
// siblings in order of creation.
func (t *Tree) NewRoot(data NodeData) NodeID {
	id := t.newNode(data)
	if l := len(t.roots); l > 0 {
		last := t.roots[l-1]
		t.hierarchy[last].next = id
		t.hierarchy[id].prev = last
	}
	t.roots = append(t.roots, id)
	return id
}

// AppendChild inserts a new node as the last child of parent and returns the
// id of the new node.
func (t *Tree) AppendChild(parent NodeID, data NodeData) (NodeID, error) {
	if !t.contains(parent) {
		return NoNode, fmt.Errorf("cannot append child to %s: %w", parent, ErrUnknownNode)
	}
	id := t.newNode(data)
	item := &t.hierarchy[id]
	item.parent = parent
	if last := t.hierarchy[parent].lastChild; last != NoNode {
		t.hierarchy[last].next = id
		item.prev = last
	} else {
		t.hierarchy[parent].firstChild = id
	}
	t.hierarchy[parent].lastChild = id
	return id, nil
}

// MustAppendChild is like AppendChild, but panics on unknown parents.
// It is intended for building fixtures in tests.
func (t *Tree) MustAppendChild(parent NodeID, data NodeData) NodeID {
	id, err := t.AppendChild(parent, data)
	if err != nil {
		panic(err)
	}
	return id
}

func (t *Tree) contains(n NodeID) bool {
	return t != nil && int(n) < len(t.hierarchy)
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.hierarchy)
}

// Roots returns the root nodes of the forest.
func (t *Tree) Roots() []NodeID {
	if t == nil {
		return nil
	}
	return append([]NodeID(nil), t.roots...)
}

// Parent returns the parent of a node.
func (t *Tree) Parent(n NodeID) (NodeID, bool) {
	if !t.contains(n) {
		return NoNode, false
	}
	p := t.hierarchy[n].parent
	return p, p != NoNode
}

// NextSibling returns the next sibling of a node.
func (t *Tree) NextSibling(n NodeID) (NodeID, bool) {
	if !t.contains(n) {
		return NoNode, false
	}
	s := t.hierarchy[n].next
	return s, s != NoNode
}

// PreviousSibling returns the previous sibling of a node.
func (t *Tree) PreviousSibling(n NodeID) (NodeID, bool) {
	if !t.contains(n) {
		return NoNode, false
	}
	s := t.hierarchy[n].prev
	return s, s != NoNode
}

// ChildCount returns the number of children of a node.
func (t *Tree) ChildCount(n NodeID) int {
	cnt := 0
	if !t.contains(n) {
		return 0
	}
	for ch := t.hierarchy[n].firstChild; ch != NoNode; ch = t.hierarchy[ch].next {
		cnt++
	}
	return cnt
}

// Children returns the children of a node in insertion order.
func (t *Tree) Children(n NodeID) []NodeID {
	if !t.contains(n) {
		return nil
	}
	var children []NodeID
	for ch := t.hierarchy[n].firstChild; ch != NoNode; ch = t.hierarchy[ch].next {
		children = append(children, ch)
	}
	return children
}

// Child returns the i-th child of a node.
func (t *Tree) Child(n NodeID, i int) (NodeID, bool) {
	if i < 0 || !t.contains(n) {
		return NoNode, false
	}
	ch := t.hierarchy[n].firstChild
	for ; ch != NoNode && i > 0; i-- {
		ch = t.hierarchy[ch].next
	}
	return ch, ch != NoNode
}

// NodeData returns the type tag and tokens of a node.
// The returned pointer aliases the tree's storage and must not be modified.
func (t *Tree) NodeData(n NodeID) (*NodeData, bool) {
	if !t.contains(n) {
		return nil, false
	}
	return &t.data[n], true
}

// Depth returns the number of ancestors of a node. Roots have depth 0.
func (t *Tree) Depth(n NodeID) int {
	d := 0
	for p, ok := t.Parent(n); ok; p, ok = t.Parent(p) {
		d++
	}
	return d
}

var _ Hierarchy = &Tree{}
