package selector

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// body > .foo.main #baz:hover
func bodyFooMainBaz() Path {
	return P(
		Type("body"), Child(),
		Class("foo"), Class("main"), Descendant(),
		ID("baz"), PseudoClass(Hover),
	)
}

func TestPathString(t *testing.T) {
	p := bodyFooMainBaz()
	if p.String() != "body > .foo.main #baz:hover" {
		t.Errorf("expected path to print as CSS, is %q", p.String())
	}
	nth := P(Type("li"), PseudoClass(Nth(Pattern(3, 1))))
	if nth.String() != "li:nth-child(3n+1)" {
		t.Errorf("expected li:nth-child(3n+1), is %q", nth.String())
	}
}

func TestGroupIteratorRightToLeft(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	groups, reasons := Groups(bodyFooMainBaz())
	assert.Equal(t, []Group{
		{ID("baz"), PseudoClass(Hover)},
		{Class("foo"), Class("main")},
		{Type("body")},
	}, groups)
	assert.Equal(t, []SplitReason{SplitChildren, SplitDirectChildren, SplitNone}, reasons)
}

func TestGroupIteratorSingleGroup(t *testing.T) {
	groups, reasons := Groups(P(Type("div"), Class("x")))
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, have %d", len(groups))
	}
	if reasons[0] != SplitNone {
		t.Errorf("expected single group to have split reason none, is %s", reasons[0])
	}
}

func TestGroupIteratorEmptyPath(t *testing.T) {
	it := NewGroupIterator(nil)
	if _, _, ok := it.Next(); ok {
		t.Error("expected empty path to yield no groups")
	}
}

func TestGroupIteratorIsFirst(t *testing.T) {
	it := NewGroupIterator(P(Type("div"), Child(), Type("p"), Descendant(), Type("span")))
	_, _, _ = it.Next()
	if !it.IsFirst() {
		t.Error("expected first group to be flagged as first")
	}
	_, _, _ = it.Next()
	if it.IsFirst() {
		t.Error("expected second group not to be flagged as first")
	}
}

func TestGroupIteratorIsNotRestartable(t *testing.T) {
	it := NewGroupIterator(P(Type("div")))
	_, _, ok1 := it.Next()
	_, _, ok2 := it.Next()
	_, _, ok3 := it.Next()
	if !ok1 || ok2 || ok3 {
		t.Errorf("expected iterator to yield once and then stay exhausted: %v %v %v", ok1, ok2, ok3)
	}
}

func TestGroupIteratorMalformed(t *testing.T) {
	groups, _ := Groups(P(Child(), Type("div")))
	if len(groups) != 2 || len(groups[1]) != 0 {
		t.Errorf("expected leading combinator to produce an empty leftmost group, have %v", groups)
	}
	groups, _ = Groups(P(Type("div"), Descendant()))
	if len(groups) != 2 || len(groups[0]) != 0 {
		t.Errorf("expected trailing combinator to produce an empty rightmost group, have %v", groups)
	}
	groups, _ = Groups(P(Type("div"), Child(), Descendant(), Type("p")))
	if len(groups) != 3 || len(groups[1]) != 0 {
		t.Errorf("expected adjacent combinators to produce an empty group, have %v", groups)
	}
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	tests := []struct {
		path Path
		err  error
	}{
		{bodyFooMainBaz(), nil},
		{P(), ErrEmptyPath},
		{P(Child(), Type("p")), ErrBoundaryCombinator},
		{P(Type("p"), Descendant()), ErrBoundaryCombinator},
		{P(Type("div"), Child(), Descendant(), Type("p")), ErrAdjacentCombinator},
		{P(PseudoClass(Hover), Child(), Type("span")), ErrMisplacedState},
		{P(Type("li"), PseudoClass(First), Child(), Type("span")), nil},
	}
	for i, test := range tests {
		err := test.path.Validate()
		if test.err == nil && err != nil {
			t.Errorf("test #%d: expected %q to be valid, error is %v", i, test.path, err)
		} else if test.err != nil && !errors.Is(err, test.err) {
			t.Errorf("test #%d: expected error %v for %q, is %v", i, test.err, test.path, err)
		}
	}
}

func TestLastGroupAndContains(t *testing.T) {
	g := bodyFooMainBaz().LastGroup()
	if !g.Contains(PseudoClass(Hover)) {
		t.Errorf("expected last group %q to contain :hover", g)
	}
	if g.Contains(PseudoClass(Focus)) {
		t.Errorf("expected last group %q not to contain :focus", g)
	}
	if !(Group{Global()}).IsGlobal() || (Group{Global(), Class("x")}).IsGlobal() {
		t.Error("expected only the plain universal group to be global")
	}
}
