package vdom

// Type is anything that can be passed as the type argument of CreateElement:
// a host Tag, a *FuncType, a *ClassType or a *ForwardType.
type Type interface {
	kind() Kind
}

// Tag is a host element name such as "div".
type Tag string

func (Tag) kind() Kind { return KindElement }

// Component is a lifecycle component instance. Instances are produced by a
// ClassType and re-rendered by the renderer whenever their state or props
// change.
type Component interface {
	Render() *VNode
}

// FuncType is a stateless function component.
type FuncType struct {
	Name   string
	Render func(props Props) *VNode
}

func (*FuncType) kind() Kind { return KindFunc }

// Func declares a stateless function component. The returned value is the
// component's identity: declare it once at package level.
//
// Example:
//
//	var Greeting = vdom.Func("Greeting", func(p vdom.Props) *vdom.VNode {
//	    return vdom.Span(nil, "Hello, ", p["name"])
//	})
func Func(name string, render func(props Props) *VNode) *FuncType {
	return &FuncType{Name: name, Render: render}
}

// ClassType is a lifecycle component constructor.
type ClassType struct {
	Name string
	New  func(props Props) Component
}

func (*ClassType) kind() Kind { return KindClass }

// Class declares a lifecycle component. New is called once per mount point
// with the initial props.
func Class(name string, newFn func(props Props) Component) *ClassType {
	return &ClassType{Name: name, New: newFn}
}

// ForwardType is a render function that receives the ref supplied by its
// caller so it can attach it to an inner node.
type ForwardType struct {
	Name   string
	Render func(props Props, ref *Ref) *VNode
}

func (*ForwardType) kind() Kind { return KindForward }

// ForwardRef declares a forward-ref component.
//
// Example:
//
//	var FancyInput = vdom.ForwardRef("FancyInput", func(p vdom.Props, ref *vdom.Ref) *vdom.VNode {
//	    return vdom.Input(vdom.Props{"ref": ref, "class": "fancy"})
//	})
func ForwardRef(name string, render func(props Props, ref *Ref) *VNode) *ForwardType {
	return &ForwardType{Name: name, Render: render}
}
