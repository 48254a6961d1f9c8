// Package render mounts virtual trees into a host tree and keeps the two in
// sync.
//
// A Root owns one host container. Its first Render mounts the tree; every
// later Render reconciles the new tree against the previous one and applies
// only the differences through the host.Adapter:
//
//   - Nodes of the same type are patched in place: changed attributes and
//     style declarations are written, removed ones are cleared.
//   - Nodes whose type differs are unmounted and replaced at the same
//     position. Component types compare by identity, tags by name.
//   - Children are matched by position.
//
// # Components
//
// Function components (vdom.Func) and forward-ref components
// (vdom.ForwardRef) are re-invoked on every parent render. Class components
// (vdom.Class) keep an instance for as long as they stay mounted; the
// instance embeds Base for state and implements whichever lifecycle hook
// interfaces it needs (DidMounter, ShouldUpdater, ...).
//
// # Batching
//
// State changes made while a batch is open are queued per component and
// applied together when the outermost batch closes. Event delegation opens
// a batch around every dispatch, so a click that calls SetState on several
// components re-renders each of them once:
//
//	root.Batcher().Batch(func() {
//	    a.SetState(render.State{"open": true})
//	    b.SetState(render.State{"count": 2})
//	})
//
// # Events
//
// Props named after an event category ("onClick", "onClickCapture", ...) are
// stored in the root's event.Registry instead of being attached to host
// nodes. The root container carries one capture and one bubble listener per
// category; see package event.
package render
