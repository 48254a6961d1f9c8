package render

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/vango-dev/vrt/pkg/vdom"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetricsRecordActivity(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("test"))
	_, root := newTestRoot(t, WithMetrics(m))

	mustRender(t, root, vdom.Div(nil,
		vdom.CreateElement(greeting, vdom.Props{"name": "Ada"}),
		vdom.CreateElement(counterClass, nil),
	))

	if got := counterValue(t, m.mounts.WithLabelValues("Element")); got != 3 {
		t.Errorf("element mounts = %v, want 3", got)
	}
	if got := counterValue(t, m.mounts.WithLabelValues("Class")); got != 1 {
		t.Errorf("class mounts = %v, want 1", got)
	}
	if got := counterValue(t, m.renders.WithLabelValues("Greeting")); got != 1 {
		t.Errorf("Greeting renders = %v, want 1", got)
	}
	if got := counterValue(t, m.mutations.WithLabelValues("create_element")); got != 3 {
		t.Errorf("create_element = %v, want 3", got)
	}

	c := root.Current().Children()[1]
	inst := root.arena.get(c).inst.self.(*counter)
	root.Batcher().Batch(func() { inst.UpdateState(increment) })

	if got := counterValue(t, m.flushes); got != 1 {
		t.Errorf("flushes = %v, want 1", got)
	}
	if got := histogramCount(t, m.flushDuration); got != 1 {
		t.Errorf("flush duration samples = %d, want 1", got)
	}

	mustRender(t, root, nil)
	if got := counterValue(t, m.unmounts.WithLabelValues("Class")); got != 1 {
		t.Errorf("class unmounts = %v, want 1", got)
	}
	if got := counterValue(t, m.mutations.WithLabelValues("remove_child")); got != 1 {
		t.Errorf("remove_child = %v, want 1", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	if len(families) == 0 || !strings.HasPrefix(families[0].GetName(), "test_") {
		t.Errorf("metrics should use the configured namespace")
	}
}

func TestMetricsCountEventCallbacks(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))
	h, root := newTestRoot(t, WithMetrics(m))

	mustRender(t, root, vdom.Div(vdom.Props{"onClickCapture": func() {}},
		vdom.Button(vdom.Props{"onClick": func() {}}),
	))
	h.Click(h.Root().Child(0).Child(0))

	if got := counterValue(t, m.events.WithLabelValues("click", "capture")); got != 1 {
		t.Errorf("capture callbacks = %v, want 1", got)
	}
	if got := counterValue(t, m.events.WithLabelValues("click", "bubble")); got != 1 {
		t.Errorf("bubble callbacks = %v, want 1", got)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.recordMount(vdom.KindElement)
	m.recordRender("x")
	m.recordFlush(3, 0)
	m.observeEvent("click", 0, 1)
}
