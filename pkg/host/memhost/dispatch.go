package memhost

import "github.com/vango-dev/vrt/pkg/host"

// Event is a raw in-memory event.
type Event struct {
	eventType string
	target    *Node
	stopped   bool
	prevented bool
}

var _ host.Event = (*Event)(nil)

// NewEvent creates an event of the given type aimed at target.
func NewEvent(eventType string, target *Node) *Event {
	return &Event{eventType: eventType, target: target}
}

// Type implements host.Event.
func (e *Event) Type() string { return e.eventType }

// Target implements host.Event.
func (e *Event) Target() host.Node { return e.target }

// PreventDefault implements host.Event.
func (e *Event) PreventDefault() { e.prevented = true }

// StopPropagation implements host.Event.
func (e *Event) StopPropagation() { e.stopped = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.prevented }

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool { return e.stopped }

// Dispatch runs capture listeners from the document down to the target, then
// bubble listeners from the target up. Listeners registered on the same node
// for the same phase all run even if one of them stops propagation.
func (h *Host) Dispatch(e *Event) {
	var path []*Node
	for n := e.target; n != nil; n = n.parent {
		path = append(path, n)
	}

	for i := len(path) - 1; i >= 0; i-- {
		if h.fire(path[i], e, true) {
			return
		}
	}
	for _, n := range path {
		if h.fire(n, e, false) {
			return
		}
	}
}

// fire runs n's listeners for one phase and reports whether propagation
// was stopped.
func (h *Host) fire(n *Node, e *Event, capture bool) bool {
	for _, l := range n.listeners {
		if l.eventType == e.eventType && l.capture == capture {
			l.fn(e)
		}
	}
	return e.stopped
}

// Click dispatches a click at target and returns the event.
func (h *Host) Click(target *Node) *Event {
	e := NewEvent("click", target)
	h.Dispatch(e)
	return e
}
