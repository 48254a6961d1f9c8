package vdom

import "sync"

// Ref holds a mutable reference to a host node or a component instance.
// The creator of the tree owns the Ref; the renderer fills it on mount and
// clears it on unmount.
//
// Ref is safe for concurrent access.
type Ref struct {
	value any
	mu    sync.RWMutex
}

// NewRef creates an empty Ref.
//
// Example:
//
//	input := vdom.NewRef()
//	return vdom.Input(vdom.Props{"ref": input})
func NewRef() *Ref {
	return &Ref{}
}

// Current returns the referenced value, or nil when nothing is attached.
func (r *Ref) Current() any {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// Set points the ref at value.
func (r *Ref) Set(value any) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = value
}

// Clear detaches the ref.
func (r *Ref) Clear() {
	r.Set(nil)
}
