package render

import (
	stderrors "errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"

	verrors "github.com/vango-dev/vrt/internal/errors"
	"github.com/vango-dev/vrt/pkg/host/memhost"
	"github.com/vango-dev/vrt/pkg/vdom"
)

func newTestRoot(t *testing.T, opts ...Option) (*memhost.Host, *Root) {
	t.Helper()
	h := memhost.New()
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts = append([]Option{WithLogger(quiet)}, opts...)
	return h, NewRoot(h, h.Root(), opts...)
}

func mustRender(t *testing.T, r *Root, node *vdom.VNode) {
	t.Helper()
	if err := r.Render(node); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
}

func TestMountElementTree(t *testing.T) {
	h, root := newTestRoot(t)

	mustRender(t, root, vdom.Div(vdom.Props{"id": "app", "className": "box", "style": vdom.Style{"color": "red"}},
		vdom.H1(nil, "Title"),
		vdom.P(nil, "count: ", 3),
		vdom.Input(vdom.Props{"disabled": true}),
	))

	want := `<div class="box" id="app" style="color:red"><h1>Title</h1><p>count: 3</p><input disabled></div>`
	if got := h.Root().InnerHTML(); got != want {
		t.Errorf("InnerHTML() =\n%s\nwant\n%s", got, want)
	}
}

func TestMountSkipsNilChildren(t *testing.T) {
	h, root := newTestRoot(t)

	mustRender(t, root, vdom.Ul(nil, vdom.Li(nil, "a"), nil, false, vdom.Li(nil, "b")))

	if got := h.Root().InnerHTML(); got != "<ul><li>a</li><li>b</li></ul>" {
		t.Errorf("InnerHTML() = %s", got)
	}
}

func TestMountAttachesBuiltSubtreeOnce(t *testing.T) {
	h, root := newTestRoot(t)
	h.ResetMutations()

	mustRender(t, root, vdom.Div(nil, vdom.Span(nil, "x")))

	// Children go into the detached div; only the div itself touches the
	// container.
	var attached []memhost.Mutation
	for _, m := range h.StructuralMutations() {
		if m.Parent == h.Root().ID() {
			attached = append(attached, m)
		}
	}
	if len(attached) != 1 || attached[0].Op != memhost.OpAppendChild {
		t.Errorf("container mutations = %v, want one AppendChild", attached)
	}
}

var greeting = vdom.Func("Greeting", func(p vdom.Props) *vdom.VNode {
	return vdom.Span(nil, "Hello, ", p["name"])
})

func TestMountFunctionComponent(t *testing.T) {
	h, root := newTestRoot(t)

	mustRender(t, root, vdom.Div(nil, vdom.CreateElement(greeting, vdom.Props{"name": "Ada"})))

	if got := h.Root().InnerHTML(); got != "<div><span>Hello, Ada</span></div>" {
		t.Errorf("InnerHTML() = %s", got)
	}
}

var nothing = vdom.Func("Nothing", func(vdom.Props) *vdom.VNode { return nil })

func TestMountComponentRenderingNothing(t *testing.T) {
	h, root := newTestRoot(t)

	node := vdom.CreateElement(nothing, nil)
	mustRender(t, root, vdom.Div(nil, node, "after"))

	if got := h.Root().InnerHTML(); got != "<div>after</div>" {
		t.Errorf("InnerHTML() = %s", got)
	}
	if root.HostNode(node) != nil {
		t.Error("a component that renders nothing has no host node")
	}
}

func TestMountElementRef(t *testing.T) {
	h, root := newTestRoot(t)
	ref := vdom.NewRef()

	mustRender(t, root, vdom.Div(nil, vdom.Input(vdom.Props{"ref": ref})))

	input := h.Root().Child(0).Child(0)
	if ref.Current() != any(input) {
		t.Errorf("ref.Current() = %v, want the input host node", ref.Current())
	}
}

var fancyInput = vdom.ForwardRef("FancyInput", func(p vdom.Props, ref *vdom.Ref) *vdom.VNode {
	return vdom.Label(nil, p["label"], vdom.Input(vdom.Props{"ref": ref, "className": "fancy"}))
})

func TestMountForwardRef(t *testing.T) {
	h, root := newTestRoot(t)
	ref := vdom.NewRef()

	mustRender(t, root, vdom.CreateElement(fancyInput, vdom.Props{"label": "Name", "ref": ref}))

	if got := h.Root().InnerHTML(); got != `<label>Name<input class="fancy"></label>` {
		t.Errorf("InnerHTML() = %s", got)
	}
	input := h.Root().Child(0).Child(1)
	if ref.Current() != any(input) {
		t.Error("forwarded ref should point at the inner input")
	}
}

func TestMountMalformedNode(t *testing.T) {
	h, root := newTestRoot(t)

	err := root.Render(vdom.Div(nil, vdom.CreateElement(nil, nil), "ok"))

	var verr *verrors.Error
	if !stderrors.As(err, &verr) || verr.Code != "E201" {
		t.Fatalf("Render() error = %v, want E201", err)
	}
	if got := h.Root().InnerHTML(); got != "<div>ok</div>" {
		t.Errorf("malformed node should render nothing, got %s", got)
	}
}

func TestMountNonCallableEventProp(t *testing.T) {
	h, root := newTestRoot(t)

	err := root.Render(vdom.Button(vdom.Props{"onClick": "alert(1)"}, "go"))

	var verr *verrors.Error
	if !stderrors.As(err, &verr) || verr.Code != "E202" {
		t.Fatalf("Render() error = %v, want E202", err)
	}
	button := h.Root().Child(0)
	if _, ok := button.Attr("onClick"); ok {
		t.Error("event props must never become host attributes")
	}
	if root.Registry().Len() != 0 {
		t.Error("nothing should be registered for a non-callable prop")
	}
}

func TestMountEventPropsGoToRegistry(t *testing.T) {
	h, root := newTestRoot(t)

	mustRender(t, root, vdom.Button(vdom.Props{"onClick": func() {}, "type": "button"}, "go"))

	button := h.Root().Child(0)
	if _, ok := root.Registry().Lookup(button, "onClick"); !ok {
		t.Error("onClick should be stored in the registry")
	}
	if diff := cmp.Diff(`<button type="button">go</button>`, button.HTML()); diff != "" {
		t.Errorf("HTML (-want +got):\n%s", diff)
	}
}

func TestUnmountRoot(t *testing.T) {
	h, root := newTestRoot(t)
	ref := vdom.NewRef()

	mustRender(t, root, vdom.Div(nil, vdom.Button(vdom.Props{"ref": ref, "onClick": func() {}})))
	root.Unmount()

	if got := h.Root().InnerHTML(); got != "" {
		t.Errorf("container should be empty, got %s", got)
	}
	if ref.Current() != nil {
		t.Error("ref should be cleared on unmount")
	}
	if root.Registry().Len() != 0 {
		t.Error("callbacks should be released on unmount")
	}
	if root.arena.len() != 0 {
		t.Errorf("arena holds %d records after unmount", root.arena.len())
	}
}

func TestRenderWithoutContainer(t *testing.T) {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	root := NewRoot(memhost.New(), nil, WithLogger(quiet))

	err := root.Render(vdom.Div(nil))

	var verr *verrors.Error
	if !stderrors.As(err, &verr) || verr.Code != "E221" {
		t.Fatalf("Render() error = %v, want E221", err)
	}
}

func TestMountLowerCaseEventName(t *testing.T) {
	h, root := newTestRoot(t)

	err := root.Render(vdom.Button(vdom.Props{"onclick": func() {}}, "go"))

	var verr *verrors.Error
	if !stderrors.As(err, &verr) || verr.Code != "E203" {
		t.Fatalf("Render() error = %v, want E203", err)
	}
	button := h.Root().Child(0)
	if _, ok := button.Attr("onclick"); ok {
		t.Error("a callback must never become a host attribute")
	}
	if root.Registry().Len() != 0 {
		t.Error("onclick is not an event prop and should not be registered")
	}

	h.ResetMutations()
	mustRender(t, root, vdom.Button(nil, "go"))
	if got := h.Mutations(); len(got) != 0 {
		t.Errorf("dropping the callback mutated the host: %v", got)
	}
}
