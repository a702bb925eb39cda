package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style/css"
)

func mainFooBar() *dom.Tree {
	tree := &dom.Tree{}
	main := tree.NewRoot(dom.Data("div", dom.IDToken("main")))
	tree.MustAppendChild(main, dom.Data("p", dom.ClassToken("foo")))
	tree.MustAppendChild(main, dom.Data("p", dom.ClassToken("bar")))
	return tree
}

func TestPrint(t *testing.T) {
	tree := mainFooBar()
	s := Print(tree, css.ComputeCascadeInfo(tree))
	t.Logf("\n%s", s)
	for _, line := range []string{
		"Tree(nodes=3 roots=1)",
		"#0 div#main [0 last=true]",
		"#1 p.foo [0 last=false]",
		"#2 p.bar [1 last=true]",
	} {
		if !strings.Contains(s, line) {
			t.Errorf("expected output to contain %q", line)
		}
	}
	if s := Print(tree, nil); strings.Contains(s, "last=") {
		t.Errorf("expected no cascade info without info map, have\n%s", s)
	}
}

func TestToGraphViz(t *testing.T) {
	tree := mainFooBar()
	var buf bytes.Buffer
	if err := ToGraphViz(tree, css.ComputeCascadeInfo(tree), &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	if !strings.HasPrefix(dot, "digraph g {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("expected a digraph, have\n%s", dot)
	}
	for _, s := range []string{"node00000 -> node00001", "node00000 -> node00002", "node00002ci"} {
		if !strings.Contains(dot, s) {
			t.Errorf("expected DOT output to contain %q", s)
		}
	}
}

func TestDotty(t *testing.T) {
	tree := mainFooBar()
	Dotty(tree, css.ComputeCascadeInfo(tree), t)
}
