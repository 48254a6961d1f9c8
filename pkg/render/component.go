package render

import (
	"github.com/vango-dev/vrt/pkg/host"
	"github.com/vango-dev/vrt/pkg/vdom"
)

// State is a component's state. Updates are merged key by key into a copy
// of the previous state; nested values are replaced, not merged.
type State map[string]any

// merge returns a copy of s with partial applied on top.
func (s State) merge(partial State) State {
	out := make(State, len(s)+len(partial))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range partial {
		out[k] = v
	}
	return out
}

// Updater computes a partial state from the previous state.
type Updater func(prev State) State

// stateUpdate is one queued SetState or UpdateState call.
type stateUpdate struct {
	partial State
	fn      Updater
}

func (u stateUpdate) apply(prev State) State {
	if u.fn != nil {
		return prev.merge(u.fn(prev))
	}
	return prev.merge(u.partial)
}

// Lifecycle hooks. Every hook is optional: a component implements only the
// interfaces it needs.
type (
	// WillMounter runs before the first Render.
	WillMounter interface{ ComponentWillMount() }

	// DidMounter runs once the component's host node is inserted.
	DidMounter interface{ ComponentDidMount() }

	// PropsReceiver runs before a parent-driven update with the incoming props.
	PropsReceiver interface {
		ComponentWillReceiveProps(next vdom.Props)
	}

	// ShouldUpdater gates re-rendering. State and props are committed
	// whatever it answers.
	ShouldUpdater interface {
		ShouldComponentUpdate(nextProps vdom.Props, nextState State) bool
	}

	// WillUpdater runs before a committed re-render.
	WillUpdater interface{ ComponentWillUpdate() }

	// DidUpdater runs after a committed re-render with the committed props
	// and state.
	DidUpdater interface {
		ComponentDidUpdate(props vdom.Props, state State)
	}

	// WillUnmounter runs before the component is removed from the host tree.
	WillUnmounter interface{ ComponentWillUnmount() }
)

type lifecycle uint8

const (
	lifecycleConstructed lifecycle = iota
	lifecycleMounted
	lifecycleUnmounted
)

// Base carries the state and update machinery of a lifecycle component.
// Embed it in the component struct and return a pointer from the class
// constructor:
//
//	type Counter struct {
//	    render.Base
//	}
//
//	var CounterClass = vdom.Class("Counter", func(p vdom.Props) vdom.Component {
//	    c := &Counter{}
//	    c.InitState(render.State{"count": 0})
//	    return c
//	})
//
//	func (c *Counter) Render() *vdom.VNode {
//	    return vdom.Button(vdom.Props{"onClick": func() {
//	        c.UpdateState(func(s render.State) render.State {
//	            return render.State{"count": s["count"].(int) + 1}
//	        })
//	    }}, c.State()["count"])
//	}
type Base struct {
	root  *Root
	self  vdom.Component
	class *vdom.ClassType
	id    uint64

	props        vdom.Props
	state        State
	pending      []stateUpdate
	nextProps    vdom.Props
	hasNextProps bool

	rendered *vdom.VNode
	parent   host.Node
	before   host.Node // insertion hint staged by the parent for this update
	slot     slot
	depth    int // enclosing class components
	phase    lifecycle
	updating bool
}

// stateful is implemented by every struct embedding Base.
type stateful interface {
	componentBase() *Base
}

func (b *Base) componentBase() *Base { return b }

// Props returns the committed props.
func (b *Base) Props() vdom.Props { return b.props }

// State returns the committed state.
func (b *Base) State() State { return b.state }

// InitState sets the initial state. Call it from the class constructor.
func (b *Base) InitState(s State) {
	b.state = s
}

// Mounted reports whether the component is currently in the host tree.
func (b *Base) Mounted() bool { return b.phase == lifecycleMounted }

// SetState queues a partial state. Outside a batch the component updates
// before SetState returns; inside a batch the update is deferred and merged
// with every other change made to this component during the batch.
func (b *Base) SetState(partial State) {
	b.enqueue(stateUpdate{partial: partial})
}

// UpdateState queues a state change computed from the state as it stands
// after every earlier queued change.
func (b *Base) UpdateState(fn Updater) {
	b.enqueue(stateUpdate{fn: fn})
}

// ForceUpdate re-renders without consulting ShouldComponentUpdate.
func (b *Base) ForceUpdate() {
	if b.phase != lifecycleMounted {
		return
	}
	b.update(true)
}

func (b *Base) enqueue(u stateUpdate) {
	switch b.phase {
	case lifecycleConstructed:
		// Before mount there is nothing to re-render yet.
		if b.state == nil {
			b.state = State{}
		}
		b.state = u.apply(b.state)
		return
	case lifecycleUnmounted:
		b.root.logger.Debug("state update after unmount dropped", "component", b.name())
		return
	}

	b.pending = append(b.pending, u)
	if b.updating {
		return
	}
	if b.root.batch.Active() {
		b.root.batch.mark(b)
		return
	}
	b.update(false)
}

// update runs the conditional-update step until nothing is queued. Changes
// queued by hooks during the step are picked up by the next iteration, or
// handed to the batcher when one is open.
func (b *Base) update(force bool) {
	if b.updating {
		return
	}
	b.updating = true
	defer func() {
		b.updating = false
		b.before = nil
	}()

	for {
		b.updateOnce(force)
		force = false
		if b.phase != lifecycleMounted || (len(b.pending) == 0 && !b.hasNextProps) {
			return
		}
		if b.root.batch.Active() {
			b.root.batch.mark(b)
			return
		}
	}
}

// updateOnce folds the queued partials into the state, commits state and
// staged props unconditionally, and re-renders only when allowed.
func (b *Base) updateOnce(force bool) {
	next := b.state
	for _, u := range b.pending {
		next = u.apply(next)
	}
	b.pending = nil

	props := b.props
	if b.hasNextProps {
		props = b.nextProps
	}

	should := true
	if s, ok := b.self.(ShouldUpdater); ok && !force {
		should = s.ShouldComponentUpdate(props, next)
	}

	b.state = next
	b.props = props
	b.nextProps, b.hasNextProps = nil, false

	if !should {
		return
	}
	b.root.rerender(b)
}

func (b *Base) name() string {
	if b.class != nil {
		return b.class.Name
	}
	return "<component>"
}
