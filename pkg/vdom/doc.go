// Package vdom provides the virtual tree data model.
//
// A VNode describes one node of the UI: a host element, a text value, or a
// component. Trees are rebuilt from scratch on every render; the render
// package compares the previous tree with the next one and mutates the host
// tree accordingly.
//
// # Node Types
//
// The node kind is a closed set:
//
//	KindElement  host tag, created with H or the element helpers (Div, Li, ...)
//	KindText     primitive value, created by wrapping strings and numbers
//	KindFunc     stateless component declared with Func
//	KindClass    lifecycle component declared with Class
//	KindForward  forward-ref component declared with ForwardRef
//
// Component types are compared by identity, so declare them once:
//
//	var Item = vdom.Func("Item", func(p vdom.Props) *vdom.VNode {
//	    return vdom.Li(nil, p["label"])
//	})
//
//	list := vdom.Ul(nil,
//	    vdom.CreateElement(Item, vdom.Props{"label": "A"}),
//	    vdom.CreateElement(Item, vdom.Props{"label": "B"}),
//	)
//
// # Props
//
// Props is a plain map. The reserved keys are "children", "style" (a Style
// applied to the host node's style surface) and every key starting with "on"
// (an event callback kept in the renderer's callback registry).
package vdom
