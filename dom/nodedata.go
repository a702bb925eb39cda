package dom

import (
	"fmt"
	"strings"
)

// TokenKind tags an identifier token of a node as either an id or a class.
type TokenKind uint8

const (
	ID TokenKind = iota
	Class
)

// IDOrClass is an identifier token of a node, e.g. `#main` or `.foo`.
type IDOrClass struct {
	Kind  TokenKind
	Value string
}

// IDToken creates an id token.
func IDToken(id string) IDOrClass {
	return IDOrClass{Kind: ID, Value: id}
}

// ClassToken creates a class token.
func ClassToken(class string) IDOrClass {
	return IDOrClass{Kind: Class, Value: class}
}

func (t IDOrClass) String() string {
	if t.Kind == ID {
		return "#" + t.Value
	}
	return "." + t.Value
}

// NodeData is the live data of a node the selector engine looks at:
// a type tag (e.g. "div", "p", "body") and an unordered set of id and class tokens.
type NodeData struct {
	Type   string
	Tokens []IDOrClass
}

// Data is a convenience constructor for node data.
func Data(typ string, tokens ...IDOrClass) NodeData {
	return NodeData{Type: typ, Tokens: tokens}
}

// HasID is a predicate: does the node carry an id token equal to id?
func (nd *NodeData) HasID(id string) bool {
	return nd.has(ID, id)
}

// HasClass is a predicate: does the node carry a class token equal to class?
func (nd *NodeData) HasClass(class string) bool {
	return nd.has(Class, class)
}

func (nd *NodeData) has(kind TokenKind, value string) bool {
	if nd == nil {
		return false
	}
	for _, t := range nd.Tokens {
		if t.Kind == kind && t.Value == value {
			return true
		}
	}
	return false
}

func (nd NodeData) String() string {
	var b strings.Builder
	b.WriteString(nd.Type)
	for _, t := range nd.Tokens {
		b.WriteString(t.String())
	}
	return b.String()
}

// GoString is used for %#v in test messages.
func (nd NodeData) GoString() string {
	return fmt.Sprintf("dom.NodeData{%s}", nd.String())
}
