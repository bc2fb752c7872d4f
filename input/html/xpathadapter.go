package html

import (
	"bytes"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/lipi/core"
	"golang.org/x/net/html"
)

// QueryXPath returns the nodes of a document matching an XPath
// expression, e.g. `//font[@face]` or `//td//text()`. For attribute
// matches the owning element is returned.
func QueryXPath(doc *html.Node, expr string) ([]*html.Node, error) {
	xp, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot compile XPath expression %q", expr)
	}
	var nodes []*html.Node
	iter := xp.Select(NewNavigator(doc))
	for iter.MoveNext() {
		nav, ok := iter.Current().(*NodeNavigator)
		if !ok {
			return nil, core.Error(core.EINTERNAL, "XPath iterator lost its navigator")
		}
		nodes = append(nodes, nav.current)
	}
	return nodes, nil
}

// NodeNavigator implements xpath.NodeNavigator on top of an HTML
// parse tree. For a description of the navigator methods refer to the
// documentation of antchfx/xpath, it is not replicated here.
type NodeNavigator struct {
	root, current *html.Node
	attr          int // attribute index, -1 when positioned on the node itself
}

// NewNavigator creates an xpath.NodeNavigator over an HTML parse
// tree. Queries will not escape the subtree below root.
func NewNavigator(root *html.Node) *NodeNavigator {
	return &NodeNavigator{root: root, current: root, attr: -1}
}

// Current returns the node the navigator is positioned on.
func (nav *NodeNavigator) Current() *html.Node {
	return nav.current
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	switch nav.current.Type {
	case html.CommentNode:
		return xpath.CommentNode
	case html.TextNode:
		return xpath.TextNode
	case html.ElementNode:
		if nav.attr != -1 {
			return xpath.AttributeNode
		}
		return xpath.ElementNode
	}
	// document and doctype nodes both count as root
	return xpath.RootNode
}

func (nav *NodeNavigator) LocalName() string {
	if nav.attr != -1 {
		return nav.current.Attr[nav.attr].Key
	}
	return nav.current.Data
}

func (nav *NodeNavigator) Prefix() string {
	return ""
}

func (nav *NodeNavigator) Value() string {
	switch nav.current.Type {
	case html.CommentNode, html.TextNode:
		return nav.current.Data
	case html.ElementNode:
		if nav.attr != -1 {
			return nav.current.Attr[nav.attr].Val
		}
		return textContent(nav.current)
	}
	return ""
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.current = nav.root
	nav.attr = -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from an attribute back to its element
		return true
	}
	if nav.current == nav.root || nav.current.Parent == nil {
		return false
	}
	nav.current = nav.current.Parent
	return true
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	if nav.current.Type != html.ElementNode {
		return false
	}
	if nav.attr >= len(nav.current.Attr)-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	if nav.current.FirstChild == nil {
		return false
	}
	nav.current = nav.current.FirstChild
	return true
}

func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.attr != -1 || nav.current.PrevSibling == nil {
		return false
	}
	for nav.current.PrevSibling != nil {
		nav.current = nav.current.PrevSibling
	}
	return true
}

func (nav *NodeNavigator) MoveToNext() bool {
	if nav.attr != -1 {
		return false
	}
	if nav.current.NextSibling == nil {
		return false
	}
	nav.current = nav.current.NextSibling
	return true
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	if nav.attr != -1 {
		return false
	}
	if nav.current.PrevSibling == nil {
		return false
	}
	nav.current = nav.current.PrevSibling
	return true
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	o, ok := other.(*NodeNavigator)
	if !ok || o.root != nav.root {
		return false
	}
	nav.current = o.current
	nav.attr = o.attr
	return true
}

var _ xpath.NodeNavigator = &NodeNavigator{}

// textContent returns the concatenated text below a node, comments
// excluded.
func textContent(n *html.Node) string {
	var buf bytes.Buffer
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			buf.WriteString(n.Data)
			return
		case html.CommentNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}
