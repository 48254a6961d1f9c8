package vdom

import "testing"

func TestElementHelpers(t *testing.T) {
	tests := []struct {
		node *VNode
		tag  string
	}{
		{Div(nil), "div"},
		{Span(nil), "span"},
		{Ul(nil), "ul"},
		{Li(nil), "li"},
		{Button(nil), "button"},
		{Input(nil), "input"},
		{H("custom-el", nil), "custom-el"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if tt.node.Kind != KindElement {
				t.Errorf("Kind = %v, want KindElement", tt.node.Kind)
			}
			if tt.node.Tag != tt.tag {
				t.Errorf("Tag = %q, want %q", tt.node.Tag, tt.tag)
			}
		})
	}
}

func TestElementHelpersKeepProps(t *testing.T) {
	node := Div(Props{"id": "main", "style": Style{"color": "red"}}, "x")

	if node.Props["id"] != "main" {
		t.Errorf("id = %v, want main", node.Props["id"])
	}
	if _, ok := node.Props["style"].(Style); !ok {
		t.Errorf("style = %T, want Style", node.Props["style"])
	}
	if kids := node.Children(); len(kids) != 1 || kids[0].Kind != KindText {
		t.Errorf("Children() = %v, want one text node", kids)
	}
}

func TestIsVoidElement(t *testing.T) {
	for _, tag := range []string{"input", "br", "hr", "img"} {
		if !IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = false", tag)
		}
	}
	for _, tag := range []string{"div", "span", "li"} {
		if IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = true", tag)
		}
	}
}
