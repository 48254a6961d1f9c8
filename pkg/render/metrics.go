package render

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/vrt/pkg/event"
	"github.com/vango-dev/vrt/pkg/vdom"
)

// MetricsConfig configures the Prometheus collectors of a Metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vrt").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for flush duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures a Metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the flush duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "vrt",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors for renderer activity. A nil
// *Metrics records nothing.
//
// Metrics collected:
//   - vrt_mounts_total: nodes mounted, by kind
//   - vrt_unmounts_total: nodes unmounted, by kind
//   - vrt_renders_total: component render calls, by component
//   - vrt_host_mutations_total: host adapter calls, by operation
//   - vrt_flushes_total: batch flushes that updated at least one component
//   - vrt_flush_components: components updated per flush
//   - vrt_flush_duration_seconds: flush duration
//   - vrt_event_callbacks_total: delegated callbacks run, by event type and phase
type Metrics struct {
	mounts        *prometheus.CounterVec
	unmounts      *prometheus.CounterVec
	renders       *prometheus.CounterVec
	mutations     *prometheus.CounterVec
	flushes       prometheus.Counter
	flushSize     prometheus.Histogram
	flushDuration prometheus.Histogram
	events        *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors. Registering twice with
// the same registry panics, so create one Metrics per registry and share it
// between roots.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		mounts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mounts_total",
			Help:        "Total number of virtual nodes mounted",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		unmounts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "unmounts_total",
			Help:        "Total number of virtual nodes unmounted",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of component render calls",
			ConstLabels: config.ConstLabels,
		}, []string{"component"}),

		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "host_mutations_total",
			Help:        "Total number of host adapter mutations",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		flushes: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flushes_total",
			Help:        "Total number of batch flushes",
			ConstLabels: config.ConstLabels,
		}),

		flushSize: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flush_components",
			Help:        "Number of components updated per flush",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{1, 2, 5, 10, 25, 50, 100},
		}),

		flushDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flush_duration_seconds",
			Help:        "Batch flush duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "event_callbacks_total",
			Help:        "Total number of delegated event callbacks run",
			ConstLabels: config.ConstLabels,
		}, []string{"type", "phase"}),
	}
}

func (m *Metrics) recordMount(k vdom.Kind) {
	if m == nil {
		return
	}
	m.mounts.WithLabelValues(k.String()).Inc()
}

func (m *Metrics) recordUnmount(k vdom.Kind) {
	if m == nil {
		return
	}
	m.unmounts.WithLabelValues(k.String()).Inc()
}

func (m *Metrics) recordRender(component string) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(component).Inc()
}

func (m *Metrics) recordMutation(op string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(op).Inc()
}

func (m *Metrics) recordFlush(components int, d time.Duration) {
	if m == nil || components == 0 {
		return
	}
	m.flushes.Inc()
	m.flushSize.Observe(float64(components))
	m.flushDuration.Observe(d.Seconds())
}

func (m *Metrics) observeEvent(eventType string, phase event.Phase, calls int) {
	if m == nil || calls == 0 {
		return
	}
	m.events.WithLabelValues(eventType, phase.String()).Add(float64(calls))
}
