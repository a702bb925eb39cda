/*
Package domdbg implements helpers to debug a styled tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"testing"
	"text/template"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style/css"
	tp "github.com/xlab/treeprint"
)

// Print renders a tree as text, one line per node with its type, tokens and
// cascade info. info may be nil.
//
//    Tree(nodes=3 roots=1)
//    .
//    └── #0 div#main [0 last=true]
//        ├── #1 p.foo [0 last=false]
//        └── #2 p.bar [1 last=true]
//
func Print(tree *dom.Tree, info css.CascadeInfoMap) string {
	if tree == nil {
		return "Tree(nil)\n"
	}
	header := fmt.Sprintf("Tree(nodes=%d roots=%d)\n", tree.Len(), len(tree.Roots()))
	p := tp.New()
	for _, r := range tree.Roots() {
		ppt(p, tree, info, r)
	}
	return header + p.String()
}

func ppt(p tp.Tree, tree *dom.Tree, info css.CascadeInfoMap, n dom.NodeID) {
	children := tree.Children(n)
	if len(children) == 0 {
		p.AddNode(label(tree, info, n))
		return
	}
	branch := p.AddBranch(label(tree, info, n))
	for _, ch := range children {
		ppt(branch, tree, info, ch)
	}
}

func label(tree *dom.Tree, info css.CascadeInfoMap, n dom.NodeID) string {
	s := n.String()
	if data, ok := tree.NodeData(n); ok {
		s += " " + data.String()
	}
	if ci, ok := info.Get(n); ok {
		s += " " + ci.String()
	}
	return s
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	InfoTmpl  *template.Template
	IEdgeTmpl *template.Template
}

type node struct {
	Name  string
	Label string
	Info  *css.CascadeInfo
}

type edge struct {
	N1, N2 string
}

// ToGraphViz outputs a diagram for a tree. The diagram is in GraphViz (DOT)
// format. If info is given, every node is accompanied by a record showing
// its cascade info.
func ToGraphViz(tree *dom.Tree, info css.CascadeInfoMap, w io.Writer) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.InfoTmpl = template.Must(template.New("info").Parse(infoTmpl))
	gparams.IEdgeTmpl = template.Must(template.New("infoedge").Parse(infoEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if tree != nil {
		err = dom.TopDown(tree, tree.Roots(), func(n, parent dom.NodeID, position, depth int) error {
			if err := domNode(tree, info, n, w, &gparams); err != nil {
				return err
			}
			if parent == dom.NoNode {
				return nil
			}
			return gparams.EdgeTmpl.Execute(w, edge{nodeName(parent), nodeName(n)})
		})
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodeName(n dom.NodeID) string {
	return fmt.Sprintf("node%05d", n)
}

func domNode(tree *dom.Tree, info css.CascadeInfoMap, n dom.NodeID, w io.Writer,
	gparams *graphParamsType) error {
	//
	nd := node{Name: nodeName(n), Label: n.String()}
	if data, ok := tree.NodeData(n); ok {
		nd.Label = data.String()
	}
	if ci, ok := info.Get(n); ok {
		nd.Info = &ci
	}
	if err := gparams.NodeTmpl.Execute(w, nd); err != nil {
		return err
	}
	if nd.Info == nil {
		return nil
	}
	if err := gparams.InfoTmpl.Execute(w, nd); err != nil {
		return err
	}
	return gparams.IEdgeTmpl.Execute(w, nd)
}

// Dotty is a helper for testing. Given a tree and a testing.T, it will
// create a Graphiviz image of the tree and write it to a file in the
// current folder, choosing a unique file name.
// The image is in SVG format.
//
// If GraphViz is not installed, Dotty does nothing. If an error occurs,
// t.Error(…) will be set, causing the test to fail.
//
func Dotty(tree *dom.Tree, info css.CascadeInfoMap, t *testing.T) {
	if _, err := exec.LookPath("dot"); err != nil {
		t.Log("GraphViz dot not installed, skipping tree image")
		return
	}
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(tree, info, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const infoTmpl = `{{ .Name }}ci [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td align="right">index:</td><td>{{ .Info.IndexInParent }}</td></tr>
      <tr><td align="right">last:</td><td>{{ .Info.IsLastChild }}</td></tr>
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

const infoEdgeTmpl = `{{ .Name }} -> {{ .Name }}ci [dir=none weight=1 style="dashed"] ;
`
