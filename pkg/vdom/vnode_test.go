package vdom

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFunc, "Func"},
		{KindClass, "Class"},
		{KindForward, "Forward"},
		{KindInvalid, "Invalid"},
		{Kind(255), "Invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

type stubComponent struct{}

func (stubComponent) Render() *VNode { return nil }

func TestSameType(t *testing.T) {
	fnA := Func("A", func(Props) *VNode { return nil })
	fnB := Func("A", func(Props) *VNode { return nil })
	cls := Class("C", func(Props) Component { return stubComponent{} })
	fwd := ForwardRef("F", func(Props, *Ref) *VNode { return nil })

	tests := []struct {
		name string
		a, b *VNode
		want bool
	}{
		{"same tag", Div(nil), Div(nil), true},
		{"different tag", Div(nil), Span(nil), false},
		{"text", Text("a"), Text("b"), true},
		{"text vs element", Text("a"), Div(nil), false},
		{"same func", CreateElement(fnA, nil), CreateElement(fnA, nil), true},
		{"equal-looking funcs differ", CreateElement(fnA, nil), CreateElement(fnB, nil), false},
		{"same class", CreateElement(cls, nil), CreateElement(cls, nil), true},
		{"same forward", CreateElement(fwd, nil), CreateElement(fwd, nil), true},
		{"func vs tag", CreateElement(fnA, nil), Div(nil), false},
		{"nil", nil, Div(nil), false},
		{"invalid", CreateElement(nil, nil), CreateElement(nil, nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameType(tt.a, tt.b); got != tt.want {
				t.Errorf("SameType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeName(t *testing.T) {
	fn := Func("Item", func(Props) *VNode { return nil })
	if got := CreateElement(fn, nil).Name(); got != "Item" {
		t.Errorf("Name() = %q, want Item", got)
	}
	if got := Li(nil).Name(); got != "li" {
		t.Errorf("Name() = %q, want li", got)
	}
	if got := Text("x").Name(); got != "#text" {
		t.Errorf("Name() = %q, want #text", got)
	}
	var nilNode *VNode
	if got := nilNode.Name(); got != "<nil>" {
		t.Errorf("Name() = %q, want <nil>", got)
	}
}

func TestVNodeType(t *testing.T) {
	fn := Func("Item", func(Props) *VNode { return nil })
	if got := CreateElement(fn, nil).Type(); got != Type(fn) {
		t.Errorf("Type() = %v, want the declared func", got)
	}
	if got := Div(nil).Type(); got != Type(Tag("div")) {
		t.Errorf("Type() = %v, want div", got)
	}
	if got := Text("x").Type(); got != nil {
		t.Errorf("Type() = %v, want nil", got)
	}
}

func TestIsEventProp(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"onClick", true},
		{"onClickCapture", true},
		{"onKeyDown", true},
		{"onclick", false},
		{"ONCLICK", false},
		{"OnClick", false},
		{"on", false},
		{"one", false},
		{"class", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsEventProp(tt.key); got != tt.want {
			t.Errorf("IsEventProp(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
