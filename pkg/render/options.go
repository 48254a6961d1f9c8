package render

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vrt/pkg/event"
)

// Option configures a Root.
type Option func(*Root)

// WithLogger sets the root's logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Root) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records renderer activity in m.
func WithMetrics(m *Metrics) Option {
	return func(r *Root) {
		r.metrics = m
	}
}

// WithTracer sets the tracer used for render, flush and dispatch spans.
// Defaults to the global otel tracer provider.
func WithTracer(t trace.Tracer) Option {
	return func(r *Root) {
		if t != nil {
			r.tracer = t
		}
	}
}

// WithEvents selects the delegated event categories. Defaults to
// event.DefaultCategories.
func WithEvents(categories ...event.Category) Option {
	return func(r *Root) {
		r.categories = categories
	}
}

// WithErrorHandler receives tree problems found while a component
// re-renders outside Root.Render, for example after SetState or an event.
// Problems found during Root.Render are returned from it instead.
func WithErrorHandler(fn func(error)) Option {
	return func(r *Root) {
		r.onError = fn
	}
}
