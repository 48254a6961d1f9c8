package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// H creates a host element. It is shorthand for CreateElement(Tag(tag), ...).
func H(tag string, props Props, children ...any) *VNode {
	return CreateElement(Tag(tag), props, children...)
}

// Document structure

func Div(props Props, children ...any) *VNode     { return H("div", props, children...) }
func Span(props Props, children ...any) *VNode    { return H("span", props, children...) }
func P(props Props, children ...any) *VNode       { return H("p", props, children...) }
func H1(props Props, children ...any) *VNode      { return H("h1", props, children...) }
func H2(props Props, children ...any) *VNode      { return H("h2", props, children...) }
func Section(props Props, children ...any) *VNode { return H("section", props, children...) }

// Lists

func Ul(props Props, children ...any) *VNode { return H("ul", props, children...) }
func Ol(props Props, children ...any) *VNode { return H("ol", props, children...) }
func Li(props Props, children ...any) *VNode { return H("li", props, children...) }

// Forms

func Button(props Props, children ...any) *VNode { return H("button", props, children...) }
func Form(props Props, children ...any) *VNode   { return H("form", props, children...) }
func Label(props Props, children ...any) *VNode  { return H("label", props, children...) }

// Input creates an <input>. Void elements take no children.
func Input(props Props) *VNode { return H("input", props) }
