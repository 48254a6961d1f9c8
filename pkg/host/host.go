// Package host defines the contract between the renderer and the mutable
// tree it renders into.
//
// The renderer never touches host nodes directly; it only calls an Adapter.
// Implementations exist for real environments (a browser DOM via syscall/js,
// a terminal widget tree, ...) and for tests (package memhost).
package host

// Node is an opaque handle to a node in the host tree.
// Handles must be comparable; the renderer uses them as map keys.
type Node any

// Event is a raw host event as delivered to a listener.
// Event values must be comparable (typically a pointer).
type Event interface {
	// Type is the event category, e.g. "click".
	Type() string
	// Target is the node the event was dispatched at.
	Target() Node
	PreventDefault()
	StopPropagation()
}

// Listener receives raw host events.
type Listener func(Event)

// Adapter exposes the host tree mutation primitives.
type Adapter interface {
	CreateElement(tag string) Node
	CreateText(value string) Node

	SetAttribute(n Node, key string, value any)
	RemoveAttribute(n Node, key string)
	MergeStyle(n Node, style map[string]string)
	ClearStyle(n Node, key string)
	// SetText overwrites the content of a text node.
	SetText(n Node, value string)

	AppendChild(parent, child Node)
	InsertBefore(parent, child, before Node)
	// RemoveChild detaches n from its parent.
	RemoveChild(n Node)
	// ParentOf returns nil for detached nodes.
	ParentOf(n Node) Node
	// NextSibling returns nil for the last child.
	NextSibling(n Node) Node

	// AddListener registers a listener on root for eventType in the capture
	// or the bubble phase.
	AddListener(root Node, eventType string, capture bool, fn Listener)
	// DispatchPath returns the propagation path of e, ordered from the
	// outermost ancestor to the target.
	DispatchPath(e Event) []Node
}
