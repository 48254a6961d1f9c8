package vdom

import (
	"fmt"
	"strconv"
)

// CreateElement creates a normalized VNode.
//
// props is copied; a *Ref stored under "ref" is moved to VNode.Ref. Children
// can be: nil, *VNode, string, any integer or float, bool (renders nothing),
// []*VNode or []any. Primitives become text nodes. A single child argument is
// stored as-is under Props["children"]; several are flattened into a []*VNode.
//
// A nil or unknown type yields a KindInvalid node; the renderer reports it.
func CreateElement(t Type, props Props, children ...any) *VNode {
	node := &VNode{Props: make(Props, len(props)+1)}
	for k, v := range props {
		node.Props[k] = v
	}

	if ref, ok := node.Props[PropRef]; ok {
		if r, ok := ref.(*Ref); ok {
			node.Ref = r
		}
		delete(node.Props, PropRef)
	}

	switch tv := t.(type) {
	case Tag:
		node.Kind = KindElement
		node.Tag = string(tv)
	case *FuncType:
		if tv != nil {
			node.Kind = KindFunc
			node.Func = tv
		}
	case *ClassType:
		if tv != nil {
			node.Kind = KindClass
			node.Class = tv
		}
	case *ForwardType:
		if tv != nil {
			node.Kind = KindForward
			node.Forward = tv
		}
	}

	switch len(children) {
	case 0:
	case 1:
		node.Props[PropChildren] = wrapChild(children[0])
	default:
		node.Props[PropChildren] = Flatten(children)
	}

	return node
}

// Text creates a text node.
func Text(s string) *VNode {
	return &VNode{Kind: KindText, Text: s}
}

// Textf creates a text node with formatted content.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Flatten normalizes a children value into a flat slice. Nested slices are
// flattened, primitives are wrapped as text nodes and positions that render
// nothing stay as nil entries so positional matching is preserved.
func Flatten(v any) []*VNode {
	var out []*VNode
	flattenInto(&out, v)
	return out
}

func flattenInto(out *[]*VNode, v any) {
	switch val := v.(type) {
	case []*VNode:
		*out = append(*out, val...)
	case []any:
		for _, item := range val {
			flattenInto(out, item)
		}
	default:
		*out = append(*out, wrapNode(v))
	}
}

// wrapChild normalizes a single child argument, keeping slices as slices.
func wrapChild(v any) any {
	switch v.(type) {
	case []*VNode, []any:
		return Flatten(v)
	}
	return wrapNode(v)
}

// wrapNode turns a primitive into a text node.
func wrapNode(v any) *VNode {
	switch val := v.(type) {
	case nil:
		return nil
	case *VNode:
		return val
	case string:
		return Text(val)
	case bool:
		return nil
	case int:
		return Text(strconv.Itoa(val))
	case int8, int16, int32, int64:
		return Text(fmt.Sprintf("%d", val))
	case uint, uint8, uint16, uint32, uint64:
		return Text(fmt.Sprintf("%d", val))
	case float32:
		return Text(strconv.FormatFloat(float64(val), 'f', -1, 32))
	case float64:
		return Text(strconv.FormatFloat(val, 'f', -1, 64))
	case fmt.Stringer:
		return Text(val.String())
	default:
		return Text(fmt.Sprint(val))
	}
}
