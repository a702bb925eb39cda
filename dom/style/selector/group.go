package selector

// Group is a run of simple selectors without combinators, e.g. `div.main.foo`.
// A node matches a group if it matches every selector of the group.
type Group []Selector

// IsGlobal is a predicate: is this group exactly the universal selector `*`?
func (g Group) IsGlobal() bool {
	return len(g) == 1 && g[0].Kind == KindGlobal
}

// Contains is a predicate: does the group contain selector s?
func (g Group) Contains(s Selector) bool {
	for _, sel := range g {
		if sel == s {
			return true
		}
	}
	return false
}

func (g Group) String() string {
	return Path(g).String()
}

// SplitReason tells the combinator found to the left of a group.
// It describes the relationship between the group and the next group
// further left in the path.
type SplitReason uint8

// Enum values for type SplitReason
const (
	SplitNone           SplitReason = iota // the group is the leftmost one
	SplitChildren                          // descendant: `.foo .main`
	SplitDirectChildren                    // direct child: `.foo > .main`
)

func (r SplitReason) String() string {
	switch r {
	case SplitChildren:
		return "descendant"
	case SplitDirectChildren:
		return "child"
	}
	return "none"
}

// GroupIterator splits a selector path into groups, scanning from right to
// left:
//
//    "body > .foo.main #baz" ⇒ ("#baz", descendant), (".foo.main", child), ("body", none)
//
// The first group returned matches the subject of the rule, the following
// groups have to match ancestors. Selectors within a group are returned in
// path order.
//
// GroupIterator is a cursor and cannot be restarted. It does not allocate
// except for the returned groups, which are sub-slices of the path.
type GroupIterator struct {
	path  Path
	pos   int // tokens in path[:pos] are not yet consumed
	count int // number of groups returned so far
	done  bool
}

// NewGroupIterator creates an iterator for the groups of a path.
func NewGroupIterator(path Path) *GroupIterator {
	return &GroupIterator{path: path, pos: len(path), done: len(path) == 0}
}

// Next returns the next group to the left, together with the combinator
// which separates it from its left neighbour. ok is false once the path is
// exhausted.
//
// A combinator at the start or end of a path and adjacent combinators produce
// empty groups. Empty groups never match a node.
func (it *GroupIterator) Next() (group Group, reason SplitReason, ok bool) {
	if it.done {
		return nil, SplitNone, false
	}
	end := it.pos
	start := end
	for start > 0 && !it.path[start-1].IsCombinator() {
		start--
	}
	group = Group(it.path[start:end:end])
	it.count++
	if start == 0 {
		it.pos = 0
		it.done = true
		return group, SplitNone, true
	}
	switch it.path[start-1].Kind {
	case KindDirectChildren:
		reason = SplitDirectChildren
	default:
		reason = SplitChildren
	}
	it.pos = start - 1 // skip the combinator itself
	return group, reason, true
}

// IsFirst is a predicate: is the group most recently returned by Next the
// rightmost one of the path?
func (it *GroupIterator) IsFirst() bool {
	return it.count == 1
}

// Groups returns all groups of a path, from right to left, with their split
// reasons. This is mainly meant for diagnostics and testing.
func Groups(path Path) ([]Group, []SplitReason) {
	var groups []Group
	var reasons []SplitReason
	it := NewGroupIterator(path)
	for g, r, ok := it.Next(); ok; g, r, ok = it.Next() {
		groups = append(groups, g)
		reasons = append(reasons, r)
	}
	return groups, reasons
}
