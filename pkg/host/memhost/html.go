package memhost

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// HTML serializes n and its subtree. Attributes and style declarations are
// sorted for deterministic output.
func (n *Node) HTML() string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

// InnerHTML serializes n's children.
func (n *Node) InnerHTML() string {
	var b strings.Builder
	for _, c := range n.children {
		writeNode(&b, c)
	}
	return b.String()
}

func writeNode(b *strings.Builder, n *Node) {
	switch n.typ {
	case TextNode:
		b.WriteString(escapeHTML(n.text))
		return
	case DocumentNode:
		for _, c := range n.children {
			writeNode(b, c)
		}
		return
	}

	b.WriteByte('<')
	b.WriteString(n.tag)
	for _, key := range slices.Sorted(maps.Keys(n.attrs)) {
		writeAttr(b, key, n.attrs[key])
	}
	if len(n.style) > 0 {
		decls := make([]string, 0, len(n.style))
		for _, k := range slices.Sorted(maps.Keys(n.style)) {
			decls = append(decls, k+":"+n.style[k])
		}
		fmt.Fprintf(b, ` style="%s"`, escapeAttr(strings.Join(decls, ";")))
	}

	if isVoidElement(n.tag) {
		b.WriteByte('>')
		return
	}
	b.WriteByte('>')
	for _, c := range n.children {
		writeNode(b, c)
	}
	fmt.Fprintf(b, "</%s>", n.tag)
}

func writeAttr(b *strings.Builder, key string, value any) {
	switch key {
	case "className":
		key = "class"
	case "htmlFor":
		key = "for"
	}

	if bv, ok := value.(bool); ok {
		if bv {
			fmt.Fprintf(b, " %s", key)
		}
		return
	}
	fmt.Fprintf(b, ` %s="%s"`, key, escapeAttr(fmt.Sprint(value)))
}

// voidElements are elements serialized without a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

func isVoidElement(tag string) bool {
	return voidElements[tag]
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
// In addition to the standard HTML entities, it also escapes
// whitespace characters that could break attribute parsing.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
