package event

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vrt/pkg/host"
)

// Scheduler brackets one dispatch so that state changes made by callbacks
// are coalesced and applied once the whole walk is done.
type Scheduler interface {
	Begin()
	End()
}

// Observer is notified after each phase walk with the number of callbacks
// that ran.
type Observer func(eventType string, phase Phase, calls int)

// Options configures a Delegator.
type Options struct {
	Logger  *slog.Logger
	Tracer  trace.Tracer
	Observe Observer
}

// Delegator installs one capture and one bubble listener per category on a
// root container and replays the propagation path against the callbacks in
// a Registry.
type Delegator struct {
	host       host.Adapter
	registry   *Registry
	sched      Scheduler
	categories []Category
	logger     *slog.Logger
	tracer     trace.Tracer
	observe    Observer

	installed map[host.Node]bool
	inflight  map[host.Event]*dispatch
}

// dispatch is the state shared by the two phase listeners of one raw event.
type dispatch struct {
	syn   *Synthetic
	span  trace.Span
	calls int
}

// NewDelegator creates a delegator. sched may be nil.
func NewDelegator(h host.Adapter, reg *Registry, sched Scheduler, categories []Category, opts Options) *Delegator {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Tracer == nil {
		opts.Tracer = otel.Tracer("github.com/vango-dev/vrt/pkg/event")
	}
	if len(categories) == 0 {
		categories = DefaultCategories
	}
	return &Delegator{
		host:       h,
		registry:   reg,
		sched:      sched,
		categories: categories,
		logger:     opts.Logger,
		tracer:     opts.Tracer,
		observe:    opts.Observe,
		installed:  make(map[host.Node]bool),
		inflight:   make(map[host.Event]*dispatch),
	}
}

// Categories returns the delegated categories.
func (d *Delegator) Categories() []Category {
	return d.categories
}

// Install registers the listeners on root. Calling it again for the same
// root does nothing.
func (d *Delegator) Install(root host.Node) {
	if d.installed[root] {
		return
	}
	d.installed[root] = true
	for _, c := range d.categories {
		d.host.AddListener(root, c.Type, true, d.captureListener(c))
		d.host.AddListener(root, c.Type, false, d.bubbleListener(c))
	}
	d.logger.Debug("event delegation installed", "categories", len(d.categories))
}

func (d *Delegator) captureListener(c Category) host.Listener {
	return func(raw host.Event) {
		ds := d.begin(raw)
		path := d.host.DispatchPath(raw)
		d.walk(ds, c, PhaseCapture, path)
		// A stopped capture walk means the host will not deliver the
		// bubble phase to the root.
		if ds.syn.stopped {
			d.finish(raw)
		}
	}
}

func (d *Delegator) bubbleListener(c Category) host.Listener {
	return func(raw host.Event) {
		ds, ok := d.inflight[raw]
		if !ok {
			ds = d.begin(raw)
		}
		if !ds.syn.stopped {
			path := d.host.DispatchPath(raw)
			reversed := make([]host.Node, len(path))
			for i, n := range path {
				reversed[len(path)-1-i] = n
			}
			d.walk(ds, c, PhaseBubble, reversed)
		}
		d.finish(raw)
	}
}

func (d *Delegator) begin(raw host.Event) *dispatch {
	_, span := d.tracer.Start(context.Background(), "vrt.dispatch",
		trace.WithAttributes(attribute.String("vrt.event.type", raw.Type())),
	)
	ds := &dispatch{syn: NewSynthetic(raw), span: span}
	d.inflight[raw] = ds
	if d.sched != nil {
		d.sched.Begin()
	}
	return ds
}

// finish closes the batching bracket, which applies every state change made
// during the walk.
func (d *Delegator) finish(raw host.Event) {
	ds, ok := d.inflight[raw]
	if !ok {
		return
	}
	delete(d.inflight, raw)
	if d.sched != nil {
		d.sched.End()
	}
	ds.span.SetAttributes(
		attribute.Int("vrt.event.calls", ds.calls),
		attribute.Bool("vrt.event.stopped", ds.syn.stopped),
		attribute.Bool("vrt.event.prevented", ds.syn.prevented),
	)
	ds.span.End()
}

// walk invokes the phase callback of every node along path, stopping as
// soon as a callback stops propagation.
func (d *Delegator) walk(ds *dispatch, c Category, phase Phase, path []host.Node) {
	name := c.PropName(phase)
	calls := 0
	ds.syn.Phase = phase
	for _, n := range path {
		h, ok := d.registry.Lookup(n, name)
		if !ok {
			continue
		}
		ds.syn.CurrentTarget = n
		h(ds.syn)
		calls++
		if ds.syn.stopped {
			break
		}
	}
	ds.syn.CurrentTarget = nil
	ds.calls += calls
	d.logger.Debug("event phase dispatched", "type", c.Type, "phase", phase.String(), "calls", calls)
	if d.observe != nil {
		d.observe(c.Type, phase, calls)
	}
}
