// Package memhost implements host.Adapter over an in-memory tree.
//
// Every adapter call is recorded in a mutation log so callers can assert
// exactly which host operations a render pass performed. Event dispatch
// follows the capture-then-bubble model: capture listeners run from the
// document down to the target, bubble listeners from the target back up,
// and StopPropagation ends the walk.
package memhost

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/vango-dev/vrt/pkg/host"
)

// Host is an in-memory host tree.
type Host struct {
	nextID    int
	document  *Node
	root      *Node
	mutations []Mutation
}

var _ host.Adapter = (*Host)(nil)

// New creates a host with a document node holding one empty <div id="root">
// container. Setting up the container is not recorded.
func New() *Host {
	h := &Host{}
	h.document = h.newNode(DocumentNode, "#document", "")
	h.root = h.newNode(ElementNode, "div", "")
	h.root.attrs["id"] = "root"
	h.root.parent = h.document
	h.document.children = append(h.document.children, h.root)
	return h
}

// Document returns the top-level document node.
func (h *Host) Document() *Node { return h.document }

// Root returns the default container.
func (h *Host) Root() *Node { return h.root }

// Mutations returns a copy of the mutation log.
func (h *Host) Mutations() []Mutation {
	out := make([]Mutation, len(h.mutations))
	copy(out, h.mutations)
	return out
}

// StructuralMutations returns the logged mutations that touch attached
// state, skipping node creation.
func (h *Host) StructuralMutations() []Mutation {
	var out []Mutation
	for _, m := range h.mutations {
		if m.Op.IsStructural() {
			out = append(out, m)
		}
	}
	return out
}

// ResetMutations clears the mutation log.
func (h *Host) ResetMutations() {
	h.mutations = nil
}

func (h *Host) newNode(typ NodeType, tag, text string) *Node {
	h.nextID++
	return &Node{
		id:    h.nextID,
		typ:   typ,
		tag:   tag,
		text:  text,
		attrs: make(map[string]any),
		style: make(map[string]string),
	}
}

func (h *Host) record(m Mutation) {
	h.mutations = append(h.mutations, m)
}

// node converts an opaque handle back to a *Node.
// Handles from another adapter are a programming error.
func node(n host.Node) *Node {
	if n == nil {
		return nil
	}
	mn, ok := n.(*Node)
	if !ok {
		panic(fmt.Sprintf("memhost: foreign node handle %T", n))
	}
	return mn
}

// CreateElement implements host.Adapter.
func (h *Host) CreateElement(tag string) host.Node {
	n := h.newNode(ElementNode, tag, "")
	h.record(Mutation{Op: OpCreateElement, Node: n.id, Value: tag})
	return n
}

// CreateText implements host.Adapter.
func (h *Host) CreateText(value string) host.Node {
	n := h.newNode(TextNode, "#text", value)
	h.record(Mutation{Op: OpCreateText, Node: n.id, Value: value})
	return n
}

// SetAttribute implements host.Adapter.
func (h *Host) SetAttribute(n host.Node, key string, value any) {
	mn := node(n)
	mn.attrs[key] = value
	h.record(Mutation{Op: OpSetAttr, Node: mn.id, Key: key, Value: fmt.Sprint(value)})
}

// RemoveAttribute implements host.Adapter.
func (h *Host) RemoveAttribute(n host.Node, key string) {
	mn := node(n)
	delete(mn.attrs, key)
	h.record(Mutation{Op: OpRemoveAttr, Node: mn.id, Key: key})
}

// MergeStyle implements host.Adapter.
func (h *Host) MergeStyle(n host.Node, style map[string]string) {
	mn := node(n)
	decls := make([]string, 0, len(style))
	for _, k := range slices.Sorted(maps.Keys(style)) {
		mn.style[k] = style[k]
		decls = append(decls, k+":"+style[k])
	}
	h.record(Mutation{Op: OpMergeStyle, Node: mn.id, Value: strings.Join(decls, ";")})
}

// ClearStyle implements host.Adapter.
func (h *Host) ClearStyle(n host.Node, key string) {
	mn := node(n)
	delete(mn.style, key)
	h.record(Mutation{Op: OpClearStyle, Node: mn.id, Key: key})
}

// SetText implements host.Adapter.
func (h *Host) SetText(n host.Node, value string) {
	mn := node(n)
	mn.text = value
	h.record(Mutation{Op: OpSetText, Node: mn.id, Value: value})
}

// AppendChild implements host.Adapter.
func (h *Host) AppendChild(parent, child host.Node) {
	p, c := node(parent), node(child)
	c.detach()
	c.parent = p
	p.children = append(p.children, c)
	h.record(Mutation{Op: OpAppendChild, Node: c.id, Parent: p.id})
}

// InsertBefore implements host.Adapter. A nil or foreign reference sibling
// appends.
func (h *Host) InsertBefore(parent, child, before host.Node) {
	p, c, b := node(parent), node(child), node(before)
	if b == nil || b.parent != p {
		h.AppendChild(parent, child)
		return
	}
	c.detach()
	i := p.indexOf(b)
	c.parent = p
	p.children = slices.Insert(p.children, i, c)
	h.record(Mutation{Op: OpInsertBefore, Node: c.id, Parent: p.id, Before: b.id})
}

// RemoveChild implements host.Adapter.
func (h *Host) RemoveChild(n host.Node) {
	mn := node(n)
	if mn.parent == nil {
		return
	}
	mn.detach()
	h.record(Mutation{Op: OpRemoveChild, Node: mn.id})
}

// ParentOf implements host.Adapter.
func (h *Host) ParentOf(n host.Node) host.Node {
	mn := node(n)
	if mn == nil || mn.parent == nil {
		return nil
	}
	return mn.parent
}

// NextSibling implements host.Adapter.
func (h *Host) NextSibling(n host.Node) host.Node {
	mn := node(n)
	if mn == nil || mn.parent == nil {
		return nil
	}
	if next := mn.parent.Child(mn.parent.indexOf(mn) + 1); next != nil {
		return next
	}
	return nil
}

// AddListener implements host.Adapter.
func (h *Host) AddListener(root host.Node, eventType string, capture bool, fn host.Listener) {
	mn := node(root)
	mn.listeners = append(mn.listeners, listener{eventType: eventType, capture: capture, fn: fn})
}

// DispatchPath implements host.Adapter.
func (h *Host) DispatchPath(e host.Event) []host.Node {
	target := node(e.Target())
	var path []host.Node
	for n := target; n != nil; n = n.parent {
		path = append(path, n)
	}
	slices.Reverse(path)
	return path
}
