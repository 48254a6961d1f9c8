package vdom

import "testing"

func TestCreateElementNoChildren(t *testing.T) {
	node := Div(Props{"class": "card"})

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("got kind=%v tag=%q", node.Kind, node.Tag)
	}
	if _, ok := node.Props[PropChildren]; ok {
		t.Error("children key should be absent")
	}
	if got := node.Children(); len(got) != 0 {
		t.Errorf("Children() len = %d, want 0", len(got))
	}
}

func TestCreateElementSingleChildCollapses(t *testing.T) {
	child := Span(nil)
	node := Div(nil, child)

	got, ok := node.Props[PropChildren].(*VNode)
	if !ok {
		t.Fatalf("children = %T, want *VNode", node.Props[PropChildren])
	}
	if got != child {
		t.Error("single child should be stored as-is")
	}
}

func TestCreateElementPrimitiveChildWrapped(t *testing.T) {
	node := Li(nil, "A")

	got, ok := node.Props[PropChildren].(*VNode)
	if !ok {
		t.Fatalf("children = %T, want *VNode", node.Props[PropChildren])
	}
	if got.Kind != KindText || got.Text != "A" {
		t.Errorf("child = %+v, want text A", got)
	}
}

func TestCreateElementManyChildrenFlattened(t *testing.T) {
	items := []*VNode{Li(nil, "B"), Li(nil, "C")}
	node := Ul(nil, Li(nil, "A"), items, 42, nil, false)

	children := node.Children()
	if len(children) != 6 {
		t.Fatalf("len = %d, want 6", len(children))
	}
	if children[0].Tag != "li" || children[1].Tag != "li" || children[2].Tag != "li" {
		t.Error("list items should be flattened in order")
	}
	if children[3].Kind != KindText || children[3].Text != "42" {
		t.Errorf("children[3] = %+v, want text 42", children[3])
	}
	if children[4] != nil || children[5] != nil {
		t.Error("nil and false should keep their slot as nil")
	}
}

func TestCreateElementSliceChildStaysSequence(t *testing.T) {
	node := Ul(nil, []any{Li(nil, "A"), []any{Li(nil, "B")}})

	got, ok := node.Props[PropChildren].([]*VNode)
	if !ok {
		t.Fatalf("children = %T, want []*VNode", node.Props[PropChildren])
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestCreateElementExtractsRef(t *testing.T) {
	ref := NewRef()
	props := Props{"ref": ref, "id": "x"}
	node := Div(props)

	if node.Ref != ref {
		t.Error("ref should move to VNode.Ref")
	}
	if _, ok := node.Props[PropRef]; ok {
		t.Error("ref should be removed from props")
	}
	if _, ok := props[PropRef]; !ok {
		t.Error("caller's props must not be modified")
	}
}

func TestCreateElementComponentKinds(t *testing.T) {
	fn := Func("F", func(Props) *VNode { return nil })
	cls := Class("C", func(Props) Component { return stubComponent{} })
	fwd := ForwardRef("R", func(Props, *Ref) *VNode { return nil })

	tests := []struct {
		typ  Type
		want Kind
	}{
		{Tag("p"), KindElement},
		{fn, KindFunc},
		{cls, KindClass},
		{fwd, KindForward},
		{nil, KindInvalid},
		{(*FuncType)(nil), KindInvalid},
	}

	for _, tt := range tests {
		if got := CreateElement(tt.typ, nil).Kind; got != tt.want {
			t.Errorf("CreateElement(%T).Kind = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestFlatten(t *testing.T) {
	got := Flatten([]any{"a", []any{1.5, []*VNode{Text("b")}}, nil})
	want := []string{"a", "1.5", "b"}

	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	for i, w := range want {
		if got[i] == nil || got[i].Text != w {
			t.Errorf("got[%d] = %+v, want text %q", i, got[i], w)
		}
	}
	if got[3] != nil {
		t.Error("trailing nil should be kept")
	}
}

func TestPropsChildrenSingle(t *testing.T) {
	p := Props{PropChildren: Text("x")}
	if got := p.Children(); len(got) != 1 || got[0].Text != "x" {
		t.Errorf("Children() = %v", got)
	}
	if got := Props(nil).Children(); got != nil {
		t.Errorf("nil props Children() = %v, want nil", got)
	}
}

func TestRef(t *testing.T) {
	ref := NewRef()
	if ref.Current() != nil {
		t.Fatal("new ref should be empty")
	}
	ref.Set("node")
	if ref.Current() != "node" {
		t.Errorf("Current() = %v, want node", ref.Current())
	}
	ref.Clear()
	if ref.Current() != nil {
		t.Error("Clear() should detach")
	}

	var nilRef *Ref
	nilRef.Set(1)
	if nilRef.Current() != nil {
		t.Error("nil ref should stay empty")
	}
}
