package render

import (
	"reflect"

	"github.com/vango-dev/vrt/pkg/host"
	"github.com/vango-dev/vrt/pkg/vdom"
)

// reconcile brings the host subtree rendered for prev under parent in line
// with next. before is the host node a newly mounted subtree is inserted
// ahead of; nil appends.
func (r *Root) reconcile(parent host.Node, prev, next *vdom.VNode, before host.Node) {
	switch {
	case prev == nil && next == nil:
		return
	case prev == nil:
		r.mount(next, parent, before)
		return
	case next == nil:
		r.unmount(prev)
		return
	case prev == next:
		// Same node object: nothing above it changed.
		return
	}

	if !vdom.SameType(prev, next) {
		r.replace(parent, prev, next, before)
		return
	}

	rec := r.arena.adopt(prev, next)
	if rec == nil {
		// prev never produced anything, e.g. a constructor returned nil.
		r.mount(next, parent, before)
		return
	}

	switch next.Kind {
	case vdom.KindText:
		if prev.Text != next.Text {
			r.host.SetText(rec.node, next.Text)
		}

	case vdom.KindElement:
		r.applyProps(rec.node, next.Name(), prev.Props, next.Props)
		swapRef(prev.Ref, next.Ref, rec.node)
		r.reconcileChildren(rec.node, prev.Children(), next.Children())

	case vdom.KindFunc:
		old := rec.rendered
		rec.rendered = next.Func.Render(next.Props)
		r.metrics.recordRender(next.Name())
		r.reconcile(parent, old, rec.rendered, before)

	case vdom.KindForward:
		old := rec.rendered
		rec.rendered = next.Forward.Render(next.Props, next.Ref)
		r.metrics.recordRender(next.Name())
		r.reconcile(parent, old, rec.rendered, before)

	case vdom.KindClass:
		b := rec.inst
		b.parent = parent
		b.slot = r.slot
		swapRef(prev.Ref, next.Ref, b.self)
		b.nextProps, b.hasNextProps = next.Props, true
		b.before = before
		if h, ok := b.self.(PropsReceiver); ok {
			h.ComponentWillReceiveProps(next.Props)
		}
		b.update(false)
	}
}

// replace unmounts prev and mounts next at the same position.
func (r *Root) replace(parent host.Node, prev, next *vdom.VNode, before host.Node) {
	if before == nil {
		if old := r.hostOf(prev); old != nil {
			before = r.host.NextSibling(old)
		}
	}
	r.unmount(prev)
	r.mount(next, parent, before)
}

// reconcileChildren matches children by position. New children are inserted
// before the host node of the first later old child that has one.
func (r *Root) reconcileChildren(parent host.Node, prev, next []*vdom.VNode) {
	saved := r.slot
	defer func() { r.slot = saved }()

	n := max(len(prev), len(next))
	for i := 0; i < n; i++ {
		r.slot = slot{siblings: next, index: i}
		var p, c *vdom.VNode
		if i < len(prev) {
			p = prev[i]
		}
		if i < len(next) {
			c = next[i]
		}
		var hint host.Node
		if c != nil {
			hint = r.lookahead(prev, i+1)
		}
		r.reconcile(parent, p, c, hint)
	}
}

func (r *Root) lookahead(prev []*vdom.VNode, from int) host.Node {
	for _, v := range prev[min(from, len(prev)):] {
		if n := r.hostOf(v); n != nil {
			return n
		}
	}
	return nil
}

// hostOf returns the host representative of a mounted node, following
// components down to what they rendered. It returns nil for nodes that
// render nothing.
func (r *Root) hostOf(v *vdom.VNode) host.Node {
	rec := r.arena.get(v)
	if rec == nil {
		return nil
	}
	switch v.Kind {
	case vdom.KindText, vdom.KindElement:
		return rec.node
	case vdom.KindFunc, vdom.KindForward:
		return r.hostOf(rec.rendered)
	case vdom.KindClass:
		return r.hostOf(rec.inst.rendered)
	}
	return nil
}

// unmount tears down the subtree of v and detaches its host representative.
func (r *Root) unmount(v *vdom.VNode) {
	top := r.hostOf(v)
	r.teardown(v)
	if top != nil {
		r.host.RemoveChild(top)
	}
}

// teardown releases everything v owns, innermost first: event callbacks,
// refs, component instances and arena records. Host nodes stay attached;
// the caller detaches the top one.
func (r *Root) teardown(v *vdom.VNode) {
	rec := r.arena.get(v)
	if rec == nil {
		return
	}

	switch v.Kind {
	case vdom.KindElement:
		for _, c := range v.Children() {
			r.teardown(c)
		}
		r.registry.Release(rec.node)
		clearRef(v.Ref, rec.node)

	case vdom.KindFunc, vdom.KindForward:
		r.teardown(rec.rendered)

	case vdom.KindClass:
		b := rec.inst
		r.teardown(b.rendered)
		// State updates made from here on are dropped.
		b.phase = lifecycleUnmounted
		b.pending = nil
		if h, ok := b.self.(WillUnmounter); ok {
			h.ComponentWillUnmount()
		}
		clearRef(v.Ref, b.self)
	}

	r.arena.free(v)
	r.metrics.recordUnmount(v.Kind)
}

// swapRef moves owner from prev to next when the ref cell changed.
func swapRef(prev, next *vdom.Ref, owner any) {
	if prev == next {
		return
	}
	clearRef(prev, owner)
	if next != nil {
		next.Set(owner)
	}
}

// clearRef empties ref if it still points at owner.
func clearRef(ref *vdom.Ref, owner any) {
	if ref != nil && sameHandle(ref.Current(), owner) {
		ref.Clear()
	}
}

func sameHandle(a, b any) bool {
	if a == nil || b == nil {
		return false
	}
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}
	return a == b
}
