package event

import "github.com/vango-dev/vrt/pkg/host"

// Phase is the propagation phase a callback runs in.
type Phase uint8

const (
	PhaseCapture Phase = iota
	PhaseBubble
)

// String returns the string representation of the Phase.
func (p Phase) String() string {
	if p == PhaseCapture {
		return "capture"
	}
	return "bubble"
}

// Synthetic wraps a raw host event. Reads are delegated to the raw event;
// PreventDefault and StopPropagation are forwarded and also recorded.
type Synthetic struct {
	host.Event

	// CurrentTarget is the node whose callback is running.
	CurrentTarget host.Node
	// Phase is the phase of the running callback.
	Phase Phase

	prevented bool
	stopped   bool
}

// NewSynthetic wraps raw.
func NewSynthetic(raw host.Event) *Synthetic {
	return &Synthetic{Event: raw}
}

// Native returns the wrapped raw event.
func (e *Synthetic) Native() host.Event { return e.Event }

// PreventDefault prevents the host's default action.
func (e *Synthetic) PreventDefault() {
	e.prevented = true
	e.Event.PreventDefault()
}

// StopPropagation stops the simulated walk and the host's own propagation.
func (e *Synthetic) StopPropagation() {
	e.stopped = true
	e.Event.StopPropagation()
}

// IsDefaultPrevented reports whether PreventDefault was called.
func (e *Synthetic) IsDefaultPrevented() bool { return e.prevented }

// IsPropagationStopped reports whether StopPropagation was called.
func (e *Synthetic) IsPropagationStopped() bool { return e.stopped }

// Handler is an event callback stored under an on* prop.
type Handler func(e *Synthetic)

// AsHandler converts a prop value to a Handler. Accepted values are Handler,
// func(*Synthetic) and func().
func AsHandler(v any) (Handler, bool) {
	switch fn := v.(type) {
	case Handler:
		return fn, fn != nil
	case func(*Synthetic):
		return fn, fn != nil
	case func():
		if fn == nil {
			return nil, false
		}
		return func(*Synthetic) { fn() }, true
	}
	return nil, false
}
