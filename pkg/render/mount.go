package render

import (
	verrors "github.com/vango-dev/vrt/internal/errors"
	"github.com/vango-dev/vrt/pkg/host"
	"github.com/vango-dev/vrt/pkg/vdom"
)

// mount creates the host subtree for v and inserts it into parent before
// the given sibling, or appends it when before is nil. It returns the host
// representative of v, which is nil when v renders nothing.
//
// ComponentDidMount hooks are staged and run by commitMounts once the whole
// subtree is attached.
func (r *Root) mount(v *vdom.VNode, parent, before host.Node) host.Node {
	if v == nil {
		return nil
	}

	switch v.Kind {
	case vdom.KindText:
		rec := r.arena.alloc(v)
		rec.node = r.host.CreateText(v.Text)
		r.insert(parent, rec.node, before)
		r.metrics.recordMount(v.Kind)
		return rec.node

	case vdom.KindElement:
		rec := r.arena.alloc(v)
		n := r.host.CreateElement(v.Tag)
		rec.node = n
		r.applyProps(n, v.Name(), nil, v.Props)

		// Children are mounted into the detached node.
		r.building++
		saved := r.slot
		kids := v.Children()
		for i, c := range kids {
			r.slot = slot{siblings: kids, index: i}
			r.mount(c, n, nil)
		}
		r.slot = saved
		r.building--

		r.insert(parent, n, before)
		if v.Ref != nil {
			v.Ref.Set(n)
		}
		r.metrics.recordMount(v.Kind)
		return n

	case vdom.KindFunc:
		rec := r.arena.alloc(v)
		rec.rendered = v.Func.Render(v.Props)
		r.metrics.recordRender(v.Name())
		r.metrics.recordMount(v.Kind)
		return r.mount(rec.rendered, parent, before)

	case vdom.KindForward:
		rec := r.arena.alloc(v)
		rec.rendered = v.Forward.Render(v.Props, v.Ref)
		r.metrics.recordRender(v.Name())
		r.metrics.recordMount(v.Kind)
		return r.mount(rec.rendered, parent, before)

	case vdom.KindClass:
		return r.mountClass(v, parent, before)
	}

	r.report(verrors.New("E201").WithNode(v.Name()))
	return nil
}

func (r *Root) mountClass(v *vdom.VNode, parent, before host.Node) host.Node {
	comp := v.Class.New(v.Props)
	if comp == nil {
		r.report(verrors.New("E220").WithNode(v.Name()))
		return nil
	}

	var b *Base
	if s, ok := comp.(stateful); ok {
		b = s.componentBase()
	} else {
		// Components without an embedded Base still get lifecycle hooks.
		b = &Base{}
	}
	r.nextInstance++
	b.root = r
	b.self = comp
	b.class = v.Class
	b.id = r.nextInstance
	b.props = v.Props
	b.parent = parent
	b.slot = r.slot
	b.depth = r.nesting
	if b.state == nil {
		b.state = State{}
	}

	rec := r.arena.alloc(v)
	rec.inst = b

	if v.Ref != nil {
		v.Ref.Set(comp)
	}
	if h, ok := comp.(WillMounter); ok {
		h.ComponentWillMount()
	}

	b.rendered = comp.Render()
	r.metrics.recordRender(v.Name())
	r.nesting++
	n := r.mount(b.rendered, parent, before)
	r.nesting--
	b.phase = lifecycleMounted
	r.metrics.recordMount(v.Kind)

	if h, ok := comp.(DidMounter); ok {
		r.staged = append(r.staged, func() {
			if b.phase == lifecycleMounted {
				h.ComponentDidMount()
			}
		})
	}
	return n
}

// insert places child under parent.
func (r *Root) insert(parent, child, before host.Node) {
	if parent == nil {
		r.report(verrors.New("E221"))
		return
	}
	if before != nil {
		r.host.InsertBefore(parent, child, before)
		return
	}
	r.host.AppendChild(parent, child)
}

// commitMounts runs the staged ComponentDidMount hooks, children before
// their ancestors. Nothing runs while a detached subtree is being built.
func (r *Root) commitMounts() {
	if r.building > 0 {
		return
	}
	for len(r.staged) > 0 {
		hooks := r.staged
		r.staged = nil
		for _, fn := range hooks {
			fn()
		}
	}
}
