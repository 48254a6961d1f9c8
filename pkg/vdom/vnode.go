package vdom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindElement      // host tag: <div>, <li>, ...
	KindText         // primitive text value
	KindFunc         // stateless function component
	KindClass        // lifecycle component
	KindForward      // forward-ref render function
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFunc:
		return "Func"
	case KindClass:
		return "Class"
	case KindForward:
		return "Forward"
	default:
		return "Invalid"
	}
}

// NodeID identifies a mounted node inside a render root.
// Zero means the node has never been mounted.
type NodeID uint64

// VNode is the virtual DOM node.
//
// Exactly one of Tag, Text, Func, Class or Forward is meaningful, selected by
// Kind. A VNode is created fresh on every render and must not be placed at
// two positions of a mounted tree at the same time.
type VNode struct {
	Kind    Kind         // Node type
	Tag     string       // For KindElement
	Text    string       // For KindText
	Func    *FuncType    // For KindFunc
	Class   *ClassType   // For KindClass
	Forward *ForwardType // For KindForward
	Props   Props        // Attributes, handlers and children
	Ref     *Ref         // Optional handle cell, filled by the renderer

	// ID is assigned by the renderer at mount time and carried over to the
	// replacement node on every in-place patch.
	ID NodeID
}

// Type returns the node's type as passed to CreateElement.
// Text nodes and invalid nodes return nil.
func (v *VNode) Type() Type {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case KindElement:
		return Tag(v.Tag)
	case KindFunc:
		return v.Func
	case KindClass:
		return v.Class
	case KindForward:
		return v.Forward
	}
	return nil
}

// Children returns the node's normalized children.
func (v *VNode) Children() []*VNode {
	if v == nil || v.Kind == KindText {
		return nil
	}
	return v.Props.Children()
}

// Name returns a human readable label used in logs and metrics.
func (v *VNode) Name() string {
	if v == nil {
		return "<nil>"
	}
	switch v.Kind {
	case KindElement:
		return v.Tag
	case KindText:
		return "#text"
	case KindFunc:
		if v.Func != nil {
			return v.Func.Name
		}
	case KindClass:
		if v.Class != nil {
			return v.Class.Name
		}
	case KindForward:
		if v.Forward != nil {
			return v.Forward.Name
		}
	}
	return "<invalid>"
}

// SameType reports whether a and b share the same type. Host tags compare by
// name; component types compare by identity. Nodes of an unknown kind never
// match anything.
func SameType(a, b *VNode) bool {
	if a == nil || b == nil || a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindElement:
		return a.Tag == b.Tag
	case KindText:
		return true
	case KindFunc:
		return a.Func == b.Func
	case KindClass:
		return a.Class == b.Class
	case KindForward:
		return a.Forward == b.Forward
	}
	return false
}

// Props holds attributes, event handlers, style and children.
type Props map[string]any

// Reserved prop keys.
const (
	PropChildren = "children"
	PropStyle    = "style"
	PropRef      = "ref"
)

// Children returns the flattened children stored under PropChildren.
// Positions that render nothing are kept as nil entries.
func (p Props) Children() []*VNode {
	if p == nil {
		return nil
	}
	raw, ok := p[PropChildren]
	if !ok {
		return nil
	}
	return Flatten(raw)
}

// Style holds inline style declarations.
type Style map[string]string

// IsEventProp reports whether key names an event callback: "on" followed
// by an upper-case letter, as in onClick or onClickCapture. Keys such as
// onclick or one are plain attributes.
func IsEventProp(key string) bool {
	return len(key) > 2 && key[:2] == "on" && key[2] >= 'A' && key[2] <= 'Z'
}
