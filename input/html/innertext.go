package html

import (
	"github.com/npillmayer/cords"
	"golang.org/x/net/html"
)

// InnerText returns the text content of n's subtree as a cord. Leaves
// of the cord keep a pointer to the element their text sits under, so
// clients can trace text fragments back to the markup they came from.
// Text in script and style elements and in comments is not part of
// the inner text.
//
// Call InnerText after ConvertTree to pull a clean Unicode text
// stream out of a converted document.
func InnerText(n *html.Node) (cords.Cord, error) {
	if n == nil {
		return cords.Cord{}, cords.ErrIllegalArguments
	}
	b := cords.NewBuilder()
	appendText(n, b)
	return b.Cord(), nil
}

func appendText(n *html.Node, b *cords.CordBuilder) {
	switch n.Type {
	case html.TextNode:
		if n.Data == "" {
			return
		}
		parent := n.Parent
		for parent != nil && parent.Type != html.ElementNode {
			parent = parent.Parent
		}
		b.Append(&Leaf{element: parent, content: n.Data})
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(c, b)
	}
}

// Leaf is the leaf type of cords returned by InnerText.
type Leaf struct {
	element *html.Node
	content string
}

// Element returns the element node the leaf's text sits under.
func (l *Leaf) Element() *html.Node {
	return l.element
}

// Weight is part of interface cords.Leaf.
func (l *Leaf) Weight() uint64 {
	return uint64(len(l.content))
}

// String is part of interface cords.Leaf.
func (l *Leaf) String() string {
	return l.content
}

// Split is part of interface cords.Leaf.
func (l *Leaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	left := &Leaf{element: l.element, content: l.content[:i]}
	right := &Leaf{element: l.element, content: l.content[i:]}
	return left, right
}

// Substring is part of interface cords.Leaf.
func (l *Leaf) Substring(i, j uint64) []byte {
	return []byte(l.content[i:j])
}

var _ cords.Leaf = &Leaf{}
