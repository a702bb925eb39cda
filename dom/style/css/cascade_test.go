package css

import (
	"testing"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// div#main → (p.foo, p.bar)
func mainFooBar() (*dom.Tree, dom.NodeID, dom.NodeID, dom.NodeID) {
	tree := dom.NewTree(3)
	main := tree.NewRoot(dom.Data("div", dom.IDToken("main")))
	foo := tree.MustAppendChild(main, dom.Data("p", dom.ClassToken("foo")))
	bar := tree.MustAppendChild(main, dom.Data("p", dom.ClassToken("bar")))
	return tree, main, foo, bar
}

func TestCascadeInfoScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	defer teardown()
	//
	tree, main, foo, bar := mainFooBar()
	info := ComputeCascadeInfo(tree)
	if len(info) != 3 {
		t.Fatalf("expected cascade info for 3 nodes, have %d", len(info))
	}
	if info[main] != (CascadeInfo{IndexInParent: 0, IsLastChild: true}) {
		t.Errorf("expected root to be first and last, is %v", info[main])
	}
	if info[foo] != (CascadeInfo{IndexInParent: 0, IsLastChild: false}) {
		t.Errorf("expected p.foo to be first and not last, is %v", info[foo])
	}
	if info[bar] != (CascadeInfo{IndexInParent: 1, IsLastChild: true}) {
		t.Errorf("expected p.bar to be second and last, is %v", info[bar])
	}
}

func TestCascadeInfoIsolatedRoot(t *testing.T) {
	tree := &dom.Tree{}
	lonely := tree.NewRoot(dom.Data("window"))
	r := tree.NewRoot(dom.Data("window"))
	ch := tree.MustAppendChild(r, dom.Data("div"))
	info := ComputeCascadeInfo(tree)
	if info[lonely] != (CascadeInfo{}) {
		t.Errorf("expected childless root to keep zero cascade info, is %v", info[lonely])
	}
	if info[r] != (CascadeInfo{IndexInParent: 1, IsLastChild: true}) {
		t.Errorf("expected second root to have index 1 and be last, is %v", info[r])
	}
	if info[ch] != (CascadeInfo{IndexInParent: 0, IsLastChild: true}) {
		t.Errorf("expected single child to be first and last, is %v", info[ch])
	}
}

// hierarchyOnly hides dom.Tree.PreviousSibling.
type hierarchyOnly struct {
	dom.Hierarchy
}

func TestCascadeInfoWithoutPreviousSiblings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	tree := &dom.Tree{}
	root := tree.NewRoot(dom.Data("body"))
	first := tree.MustAppendChild(root, dom.Data("div"))
	second := tree.MustAppendChild(root, dom.Data("div"))
	tree.MustAppendChild(first, dom.Data("span"))
	tree.MustAppendChild(second, dom.Data("span"))
	info := BuildCascadeInfo(hierarchyOnly{tree}, tree.ParentsSortedByDepth())
	want := ComputeCascadeInfo(tree)
	if !info.Equal(want) {
		t.Errorf("expected cascade info not to depend on previous-sibling links:\n%v\n%v", info, want)
	}
	if info[first].IndexInParent != 0 {
		t.Errorf("expected first parent without preceding siblings to have index 0, is %d",
			info[first].IndexInParent)
	}
}

func TestCascadeInfoSiblingInvariants(t *testing.T) {
	tree := &dom.Tree{}
	root := tree.NewRoot(dom.Data("ul"))
	for i := 0; i < 7; i++ {
		li := tree.MustAppendChild(root, dom.Data("li"))
		for j := 0; j < i%3; j++ {
			tree.MustAppendChild(li, dom.Data("span"))
		}
	}
	info := ComputeCascadeInfo(tree)
	for _, p := range tree.ParentsSortedByDepth() {
		children := tree.Children(p.NodeID)
		last := 0
		for i, ch := range children {
			if info[ch].IndexInParent != uint32(i) {
				t.Errorf("expected child %s of %s to have index %d, has %d", ch, p.NodeID, i,
					info[ch].IndexInParent)
			}
			if info[ch].IsLastChild {
				last++
				if i != len(children)-1 {
					t.Errorf("expected only the final sibling to be last, %s is flagged", ch)
				}
			}
		}
		if last != 1 {
			t.Errorf("expected exactly 1 last child for %s, have %d", p.NodeID, last)
		}
	}
}

func TestCascadeInfoIdempotent(t *testing.T) {
	tree, _, _, _ := mainFooBar()
	info1 := ComputeCascadeInfo(tree)
	info2 := ComputeCascadeInfo(tree)
	if !info1.Equal(info2) {
		t.Errorf("expected repeated builds to be identical:\n%v\n%v", info1, info2)
	}
}

func TestCascadeInfoUnknownParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	tree, _, _, _ := mainFooBar()
	parents := append(tree.ParentsSortedByDepth(), dom.ParentWithDepth{Depth: 3, NodeID: 77})
	info := BuildCascadeInfo(tree, parents)
	if !info.Equal(ComputeCascadeInfo(tree)) {
		t.Error("expected unknown parent to be skipped")
	}
	if _, ok := info.Get(77); ok {
		t.Error("expected no cascade info for unknown node")
	}
}
