package css

import (
	"fmt"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style/selector"
)

// defaultMatcher is used by the package level matching functions.
var defaultMatcher = Matcher{}

// Match is a shortcut for css.Matcher{}.Match(…).
func Match(path selector.Path, node dom.NodeID, h dom.Hierarchy, info CascadeInfoMap,
	expected selector.Pseudo) (bool, error) {
	//
	return defaultMatcher.Match(path, node, h, info, expected)
}

// Matches is a shortcut for css.Matcher{}.Matches(…).
func Matches(path selector.Path, node dom.NodeID, h dom.Hierarchy, info CascadeInfoMap,
	expected selector.Pseudo) bool {
	//
	return defaultMatcher.Matches(path, node, h, info, expected)
}

// Matches returns true if a selector path applies to a node, i.e. if the
// node should be styled by a rule with this path. It is like Match, but
// treats unknown nodes as "no match".
func (m Matcher) Matches(path selector.Path, node dom.NodeID, h dom.Hierarchy, info CascadeInfoMap,
	expected selector.Pseudo) bool {
	//
	ok, err := m.Match(path, node, h, info, expected)
	return ok && err == nil
}

// Match checks if a selector path applies to a node. expected is the
// interaction state the node is tested for (selector.None, selector.Hover,
// selector.Active or selector.Focus); interaction pseudo-classes of the path
// match only if they equal expected and are part of the rightmost group.
//
// Groups of the path are checked from right to left against the node and its
// ancestors, in a single pass up the tree:
//
// ▪︎ the rightmost group has to match the node itself,
//
// ▪︎ a group left of a child combinator (`A > B`) has to match the parent of
// the node matched by the group to its right,
//
// ▪︎ a group left of a descendant combinator (`A B`) is matched against the
// nearest ancestor it applies to.
//
// There is no backtracking: once a descendant group found its ancestor, this
// decision is final. Walking past the root of the tree, only the universal
// selector `*` is satisfied.
//
// Malformed paths (empty groups, combinators inside groups) do not match.
// An empty path never matches. If node or one of its ancestors is unknown
// to h or info, Match returns dom.ErrUnknownNode.
//
// info has to be computed for the current state of h. This is not checked.
func (m Matcher) Match(path selector.Path, node dom.NodeID, h dom.Hierarchy, info CascadeInfoMap,
	expected selector.Pseudo) (bool, error) {
	//
	if len(path) == 0 {
		return false, nil
	}
	current, pastRoot := node, false
	directChildRequired := true // the rightmost group has to match node itself
	it := selector.NewGroupIterator(path)
	for group, reason, ok := it.Next(); ok; group, reason, ok = it.Next() {
		isLastGroup := it.IsFirst()
		if pastRoot {
			// only a "*" may be satisfied beyond the root of the tree
			if !group.IsGlobal() {
				return false, nil
			}
			continue
		}
		for {
			matched, err := m.matchNode(group, current, h, info, expected, isLastGroup)
			if err != nil {
				return false, err
			}
			if matched {
				break
			}
			if directChildRequired {
				return false, nil
			}
			// descendant: try the next ancestor
			parent, hasParent := h.Parent(current)
			if !hasParent {
				return false, nil
			}
			current = parent
		}
		directChildRequired = reason == selector.SplitDirectChildren
		if parent, hasParent := h.Parent(current); hasParent {
			current = parent
		} else {
			pastRoot = true
		}
	}
	return true, nil
}

func (m Matcher) matchNode(group selector.Group, n dom.NodeID, h dom.Hierarchy, info CascadeInfoMap,
	expected selector.Pseudo, isLastGroup bool) (bool, error) {
	//
	data, ok := h.NodeData(n)
	if !ok {
		tracer().Errorf("selector matching: node %s not found in tree", n)
		return false, fmt.Errorf("matching %s: %w", n, dom.ErrUnknownNode)
	}
	ci, ok := info.Get(n)
	if !ok {
		tracer().Errorf("selector matching: no cascade info for node %s", n)
		return false, fmt.Errorf("matching %s, missing cascade info: %w", n, dom.ErrUnknownNode)
	}
	return m.GroupMatches(group, ci, data, expected, isLastGroup), nil
}

// GroupMatches checks a single group of selectors against a node, given the
// node's cascade info and live data. All selectors of the group have to
// match. Interaction pseudo-classes match only if isLastGroup is set, i.e.
// the group is the rightmost one of its path, and if they equal expected.
//
// Empty groups and groups containing combinators do not match.
func (m Matcher) GroupMatches(group selector.Group, ci CascadeInfo, data *dom.NodeData,
	expected selector.Pseudo, isLastGroup bool) bool {
	//
	if len(group) == 0 {
		return false
	}
	for _, sel := range group {
		switch sel.Kind {
		case selector.KindGlobal:
		case selector.KindType:
			if data == nil || data.Type != sel.Name {
				return false
			}
		case selector.KindClass:
			if !data.HasClass(sel.Name) {
				return false
			}
		case selector.KindID:
			if !data.HasID(sel.Name) {
				return false
			}
		case selector.KindPseudo:
			if !m.pseudoMatches(sel.Pseudo, ci, expected, isLastGroup) {
				return false
			}
		default: // combinators are not allowed within groups
			return false
		}
	}
	return true
}

func (m Matcher) pseudoMatches(p selector.Pseudo, ci CascadeInfo, expected selector.Pseudo,
	isLastGroup bool) bool {
	//
	switch p.Kind {
	case selector.PseudoFirst:
		return ci.IndexInParent == 0
	case selector.PseudoLast:
		return ci.IsLastChild
	case selector.PseudoNthChild:
		return m.nthMatches(p.Nth, uint64(ci.IndexInParent)+1) // nth-child starts at 1
	case selector.PseudoHover, selector.PseudoActive, selector.PseudoFocus:
		// "body > #main:hover" may match, "body:hover > #main" never does
		return isLastGroup && expected == p
	}
	return false
}

func (m Matcher) nthMatches(nth selector.NthChild, position uint64) bool {
	switch nth.Kind {
	case selector.NthNumber:
		return position == uint64(nth.Number)
	case selector.NthEven:
		if m.legacyNthParity {
			return position%2 != 0
		}
		return position%2 == 0
	case selector.NthOdd:
		if m.legacyNthParity {
			return position%2 != 1
		}
		return position%2 == 1
	case selector.NthPattern:
		offset, repeat := uint64(nth.Offset), uint64(nth.Repeat)
		if position < offset {
			return false
		}
		if repeat == 0 {
			return position == offset
		}
		return (position-offset)%repeat == 0
	}
	return false
}

// EndsWith is a quick pre-filter for rules: does a path's rightmost group
// demand the interaction state expected? With expected == selector.None, it
// tests for a rightmost group free of interaction pseudo-classes.
//
// Paths not passing EndsWith will never match a node tested for state expected.
func EndsWith(path selector.Path, expected selector.Pseudo) bool {
	if len(path) == 0 {
		return false
	}
	last := path.LastGroup()
	if expected == selector.None {
		for _, sel := range last {
			if sel.IsInteraction() {
				return false
			}
		}
		return true
	}
	return last.Contains(selector.PseudoClass(expected))
}
