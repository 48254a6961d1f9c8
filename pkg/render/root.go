package render

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	verrors "github.com/vango-dev/vrt/internal/errors"
	"github.com/vango-dev/vrt/pkg/event"
	"github.com/vango-dev/vrt/pkg/host"
	"github.com/vango-dev/vrt/pkg/vdom"
)

const tracerName = "github.com/vango-dev/vrt/pkg/render"

// Root renders virtual trees into one host container. Each Root owns its
// own batcher, callback registry and event delegation, so several roots can
// live side by side.
//
// A Root is single threaded: Render, event dispatch and state updates must
// all happen on the goroutine that drives the host.
type Root struct {
	host      host.Adapter
	container host.Node

	arena    *arena
	batch    *Batcher
	registry *event.Registry
	events   *event.Delegator

	categories []event.Category
	logger     *slog.Logger
	metrics    *Metrics
	tracer     trace.Tracer

	current      *vdom.VNode
	nextInstance uint64
	staged       []func()
	building     int
	rendering    int
	errs         []error
	onError      func(error)

	// slot and nesting describe where the node being mounted or patched
	// sits: its sibling list and how many class components enclose it.
	slot    slot
	nesting int
}

// slot is a child position inside a host element's child list.
type slot struct {
	siblings []*vdom.VNode
	index    int
}

// NewRoot creates a root rendering into container.
//
// Example:
//
//	h := memhost.New()
//	root := render.NewRoot(h, h.Root(), render.WithLogger(logger))
//	if err := root.Render(vdom.Div(nil, "hello")); err != nil {
//	    return err
//	}
func NewRoot(h host.Adapter, container host.Node, opts ...Option) *Root {
	r := &Root{
		container: container,
		arena:     newArena(),
		registry:  event.NewRegistry(),
		logger:    slog.Default(),
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.host = h
	if r.metrics != nil {
		r.host = instrument(h, r.metrics)
	}
	r.batch = newBatcher(r)
	r.events = event.NewDelegator(r.host, r.registry, r.batch, r.categories, event.Options{
		Logger:  r.logger,
		Tracer:  r.tracer,
		Observe: r.metrics.observeEvent,
	})
	return r
}

// Render reconciles the container against node. The first call mounts and
// installs event delegation. Passing nil unmounts the current tree.
//
// Problems found in the tree, such as malformed nodes or non-callable event
// props, do not stop rendering; they are logged and returned joined.
// Problems found later, while a component re-renders after a state change,
// are logged and passed to the WithErrorHandler callback.
func (r *Root) Render(node *vdom.VNode) error {
	start := time.Now()
	_, span := r.tracer.Start(context.Background(), "vrt.render",
		trace.WithAttributes(attribute.String("vrt.node", node.Name())),
	)
	defer span.End()

	if r.container == nil {
		return verrors.New("E221").WithNode(node.Name())
	}

	r.errs = nil
	r.rendering++
	r.events.Install(r.container)

	prev := r.current
	r.current = node
	saved, nesting := r.slot, r.nesting
	r.slot, r.nesting = slot{}, 0
	r.reconcile(r.container, prev, node, nil)
	r.slot, r.nesting = saved, nesting
	r.commitMounts()
	r.rendering--

	err := errors.Join(r.errs...)
	r.errs = nil
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render reported errors")
	}
	span.SetAttributes(attribute.Int("vrt.nodes", r.arena.len()))
	r.logger.Debug("render complete",
		"node", node.Name(),
		"nodes", r.arena.len(),
		"duration", time.Since(start),
	)
	return err
}

// Unmount removes the current tree from the container.
func (r *Root) Unmount() {
	if r.current == nil {
		return
	}
	r.reconcile(r.container, r.current, nil, nil)
	r.current = nil
}

// Batcher returns the root's batching controller.
func (r *Root) Batcher() *Batcher { return r.batch }

// Registry returns the root's event callback registry.
func (r *Root) Registry() *event.Registry { return r.registry }

// Events returns the root's event delegator.
func (r *Root) Events() *event.Delegator { return r.events }

// Container returns the host container.
func (r *Root) Container() host.Node { return r.container }

// Current returns the last rendered tree.
func (r *Root) Current() *vdom.VNode { return r.current }

// HostNode returns the host representative of a mounted node, or nil.
func (r *Root) HostNode(v *vdom.VNode) host.Node { return r.hostOf(v) }

// rerender renders b again and reconciles the output in place. Output
// that appears where b rendered nothing before is inserted ahead of the
// next sibling that has a host node.
func (r *Root) rerender(b *Base) {
	if h, ok := b.self.(WillUpdater); ok {
		h.ComponentWillUpdate()
	}

	prev := b.rendered
	b.rendered = b.self.Render()
	r.metrics.recordRender(b.name())

	before := b.before
	if before == nil {
		before = r.slotHint(b.slot)
	}
	saved, nesting := r.slot, r.nesting
	r.slot, r.nesting = b.slot, b.depth+1
	r.reconcile(b.parent, prev, b.rendered, before)
	r.slot, r.nesting = saved, nesting
	r.commitMounts()

	if h, ok := b.self.(DidUpdater); ok {
		h.ComponentDidUpdate(b.props, b.state)
	}
}

// slotHint returns the host node of the first sibling after s that has
// one, or nil.
func (r *Root) slotHint(s slot) host.Node {
	if s.siblings == nil {
		return nil
	}
	return r.lookahead(s.siblings, s.index+1)
}

// report logs a tree problem. During Render it is returned from Render;
// during a state-driven update it goes to the WithErrorHandler callback.
func (r *Root) report(err error) {
	r.logger.Warn("render problem", "error", err)
	if r.rendering > 0 {
		r.errs = append(r.errs, err)
		return
	}
	if r.onError != nil {
		r.onError(err)
	}
}
