package event

import "github.com/vango-dev/vrt/pkg/host"

// Registry maps host nodes to the callbacks declared on them through on*
// props. Callbacks are stored under their exact prop name ("onClick",
// "onClickCapture") rather than being attached as native listeners.
type Registry struct {
	handlers map[host.Node]map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[host.Node]map[string]Handler)}
}

// Set stores h for n under name.
func (r *Registry) Set(n host.Node, name string, h Handler) {
	m := r.handlers[n]
	if m == nil {
		m = make(map[string]Handler)
		r.handlers[n] = m
	}
	m[name] = h
}

// Remove deletes the callback stored for n under name.
func (r *Registry) Remove(n host.Node, name string) {
	m := r.handlers[n]
	if m == nil {
		return
	}
	delete(m, name)
	if len(m) == 0 {
		delete(r.handlers, n)
	}
}

// Lookup returns the callback stored for n under name.
func (r *Registry) Lookup(n host.Node, name string) (Handler, bool) {
	h, ok := r.handlers[n][name]
	return h, ok
}

// Release drops every callback stored for n.
func (r *Registry) Release(n host.Node) {
	delete(r.handlers, n)
}

// Len returns the number of nodes holding at least one callback.
func (r *Registry) Len() int {
	return len(r.handlers)
}
