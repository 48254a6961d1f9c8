package memhost

import (
	"strings"

	"github.com/vango-dev/vrt/pkg/host"
)

// NodeType distinguishes element, text and document nodes.
type NodeType uint8

const (
	ElementNode NodeType = iota
	TextNode
	DocumentNode
)

// Node is an in-memory host node.
type Node struct {
	id        int
	typ       NodeType
	tag       string
	text      string
	attrs     map[string]any
	style     map[string]string
	parent    *Node
	children  []*Node
	listeners []listener
}

type listener struct {
	eventType string
	capture   bool
	fn        host.Listener
}

// ID returns the node's stable identifier, as used in the mutation log.
func (n *Node) ID() int { return n.id }

// Type returns the node type.
func (n *Node) Type() NodeType { return n.typ }

// Tag returns the element tag name.
func (n *Node) Tag() string { return n.tag }

// Text returns the content of a text node.
func (n *Node) Text() string { return n.text }

// Parent returns the parent node or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Child returns the i-th child or nil.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Attr returns an attribute value.
func (n *Node) Attr(key string) (any, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// Style returns a style declaration, or "" when unset.
func (n *Node) Style(key string) string {
	return n.style[key]
}

// TextContent concatenates the text of every descendant text node.
func (n *Node) TextContent() string {
	if n.typ == TextNode {
		return n.text
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

func (n *Node) detach() {
	p := n.parent
	if p == nil {
		return
	}
	if i := p.indexOf(n); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	n.parent = nil
}
