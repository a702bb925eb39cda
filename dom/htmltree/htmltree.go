package htmltree

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/cascade/dom"
	"golang.org/x/net/html"
)

// ErrNoDocument is flagged if an HTML parse tree contains no element nodes.
var ErrNoDocument = errors.New("HTML tree contains no elements")

// Index links HTML nodes to the nodes of a dom.Tree built from them.
type Index struct {
	ids   map[*html.Node]dom.NodeID
	nodes []*html.Node
}

// NodeID returns the tree node created for an HTML element.
func (x *Index) NodeID(h *html.Node) (dom.NodeID, bool) {
	if x == nil {
		return dom.NoNode, false
	}
	id, ok := x.ids[h]
	return id, ok
}

// HTMLNode returns the HTML element a tree node has been created from.
func (x *Index) HTMLNode(id dom.NodeID) *html.Node {
	if x == nil || int(id) >= len(x.nodes) {
		return nil
	}
	return x.nodes[id]
}

// Parse reads an HTML document and builds a tree from it.
func Parse(r io.Reader) (*dom.Tree, *Index, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return FromHTML(doc)
}

// FromHTML builds a tree from an HTML parse tree. h may be a document node or
// any element. Top-level elements below h become roots of the tree.
func FromHTML(h *html.Node) (*dom.Tree, *Index, error) {
	if h == nil {
		return nil, nil, ErrNoDocument
	}
	tree := dom.NewTree(64)
	x := &Index{ids: make(map[*html.Node]dom.NodeID, 64)}
	if h.Type == html.ElementNode {
		r := tree.NewRoot(NodeDataFor(h))
		x.add(h, r)
		build(tree, x, h, r)
	} else {
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type != html.ElementNode {
				continue
			}
			r := tree.NewRoot(NodeDataFor(ch))
			x.add(ch, r)
			build(tree, x, ch, r)
		}
	}
	if tree.Len() == 0 {
		return nil, nil, ErrNoDocument
	}
	tracer().Debugf("built tree of %d elements from HTML", tree.Len())
	return tree, x, nil
}

func (x *Index) add(h *html.Node, id dom.NodeID) {
	x.ids[h] = id
	x.nodes = append(x.nodes, h) // ids are allocated in sequence
}

func build(tree *dom.Tree, x *Index, h *html.Node, parent dom.NodeID) {
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode {
			continue
		}
		id := tree.MustAppendChild(parent, NodeDataFor(ch)) // parent is known
		x.add(ch, id)
		build(tree, x, ch, id)
	}
}

// NodeDataFor extracts the type tag, id and classes of an HTML element.
func NodeDataFor(h *html.Node) dom.NodeData {
	data := dom.NodeData{Type: strings.ToLower(h.Data)}
	for _, attr := range h.Attr {
		if attr.Namespace != "" {
			continue
		}
		switch attr.Key {
		case "id":
			if v := strings.TrimSpace(attr.Val); v != "" {
				data.Tokens = append(data.Tokens, dom.IDToken(v))
			}
		case "class":
			for _, c := range strings.Fields(attr.Val) {
				data.Tokens = append(data.Tokens, dom.ClassToken(c))
			}
		}
	}
	return data
}
