package render

import (
	"context"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// Batcher coalesces state changes. While a batch is open, SetState only
// records the component as dirty; the outermost End applies every recorded
// change, re-rendering each dirty component at most once per flush round.
//
// Batches nest: Begin and End pair up like a depth counter and only the
// outermost End flushes. A Batcher belongs to one Root and is not safe for
// concurrent use.
type Batcher struct {
	root     *Root
	depth    int
	flushing bool
	dirty    []*Base
	seen     map[uint64]struct{}
}

func newBatcher(r *Root) *Batcher {
	return &Batcher{root: r, seen: make(map[uint64]struct{})}
}

// Active reports whether state changes are currently deferred.
func (b *Batcher) Active() bool {
	return b.depth > 0 || b.flushing
}

// Begin opens a batch.
func (b *Batcher) Begin() {
	b.depth++
}

// End closes a batch. Closing the outermost batch flushes.
func (b *Batcher) End() {
	if b.depth == 0 {
		return
	}
	b.depth--
	if b.depth == 0 {
		b.Flush()
	}
}

// Batch runs fn inside a batch. The flush happens even if fn panics.
func (b *Batcher) Batch(fn func()) {
	b.Begin()
	defer b.End()
	fn()
}

// Pending returns the number of components waiting for the next flush.
func (b *Batcher) Pending() int {
	return len(b.dirty)
}

// mark records c as dirty. A component is recorded once per round.
func (b *Batcher) mark(c *Base) {
	if _, ok := b.seen[c.id]; ok {
		return
	}
	b.seen[c.id] = struct{}{}
	b.dirty = append(b.dirty, c)
}

// Flush applies every deferred change, outer components before the ones
// they enclose. Components marked while flushing are handled in a further
// round; the flush returns once no component is dirty. Components
// unmounted in the meantime, or already updated by their parent, are
// skipped.
func (b *Batcher) Flush() {
	if b.flushing || len(b.dirty) == 0 {
		return
	}

	start := time.Now()
	_, span := b.root.tracer.Start(context.Background(), "vrt.flush")
	b.flushing = true

	rounds, updated := 0, 0
	defer func() {
		b.flushing = false
		span.SetAttributes(
			attribute.Int("vrt.flush.rounds", rounds),
			attribute.Int("vrt.flush.components", updated),
		)
		span.End()
		b.root.metrics.recordFlush(updated, time.Since(start))
		b.root.logger.Debug("flush complete", "rounds", rounds, "components", updated)
	}()

	for len(b.dirty) > 0 {
		rounds++
		queue := b.dirty
		b.dirty = nil
		b.seen = make(map[uint64]struct{})

		// Ancestors first, so a parent's re-render consumes the queued state
		// of the children it passes props to.
		sort.SliceStable(queue, func(i, j int) bool {
			return queue[i].depth < queue[j].depth
		})

		for _, c := range queue {
			if c.phase != lifecycleMounted {
				continue
			}
			if len(c.pending) == 0 && !c.hasNextProps {
				continue
			}
			c.update(false)
			updated++
		}
	}
}
