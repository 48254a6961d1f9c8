package event

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/vrt/pkg/host"
	"github.com/vango-dev/vrt/pkg/host/memhost"
)

type countingScheduler struct {
	depth  int
	begins int
	ends   int
	log    *[]string
}

func (s *countingScheduler) Begin() {
	s.depth++
	s.begins++
}

func (s *countingScheduler) End() {
	s.depth--
	s.ends++
	if s.log != nil {
		*s.log = append(*s.log, "flush")
	}
}

// nested builds root > parent > child and returns the delegator with the
// call log.
func nested(t *testing.T) (*memhost.Host, *memhost.Node, *memhost.Node, *Registry, *countingScheduler, *[]string) {
	t.Helper()
	h := memhost.New()
	parent := h.CreateElement("div").(*memhost.Node)
	child := h.CreateElement("button").(*memhost.Node)
	h.AppendChild(h.Root(), parent)
	h.AppendChild(parent, child)

	var calls []string
	reg := NewRegistry()
	sched := &countingScheduler{log: &calls}
	d := NewDelegator(h, reg, sched, nil, Options{})
	d.Install(h.Root())
	return h, parent, child, reg, sched, &calls
}

func record(calls *[]string, name string) Handler {
	return func(*Synthetic) { *calls = append(*calls, name) }
}

func TestDispatchCaptureThenBubble(t *testing.T) {
	h, parent, child, reg, sched, calls := nested(t)
	reg.Set(parent, "onClickCapture", record(calls, "parent-capture"))
	reg.Set(parent, "onClick", record(calls, "parent-bubble"))
	reg.Set(child, "onClickCapture", record(calls, "child-capture"))
	reg.Set(child, "onClick", record(calls, "child-bubble"))

	h.Click(child)

	want := []string{"parent-capture", "child-capture", "child-bubble", "parent-bubble", "flush"}
	if diff := cmp.Diff(want, *calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
	if sched.begins != 1 || sched.ends != 1 || sched.depth != 0 {
		t.Errorf("scheduler begins=%d ends=%d depth=%d, want one bracket", sched.begins, sched.ends, sched.depth)
	}
}

func TestDispatchStopInBubble(t *testing.T) {
	h, parent, child, reg, sched, calls := nested(t)
	reg.Set(parent, "onClickCapture", record(calls, "parent-capture"))
	reg.Set(parent, "onClick", record(calls, "parent-bubble"))
	reg.Set(child, "onClickCapture", record(calls, "child-capture"))
	reg.Set(child, "onClick", func(e *Synthetic) {
		*calls = append(*calls, "child-bubble")
		e.StopPropagation()
	})

	raw := h.Click(child)

	want := []string{"parent-capture", "child-capture", "child-bubble", "flush"}
	if diff := cmp.Diff(want, *calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
	if !raw.PropagationStopped() {
		t.Error("stop should be forwarded to the raw event")
	}
	if sched.depth != 0 {
		t.Errorf("depth = %d, want 0", sched.depth)
	}
}

func TestDispatchStopInCapture(t *testing.T) {
	h, parent, child, reg, sched, calls := nested(t)
	reg.Set(parent, "onClickCapture", func(e *Synthetic) {
		*calls = append(*calls, "parent-capture")
		e.StopPropagation()
	})
	reg.Set(child, "onClickCapture", record(calls, "child-capture"))
	reg.Set(child, "onClick", record(calls, "child-bubble"))

	h.Click(child)

	want := []string{"parent-capture", "flush"}
	if diff := cmp.Diff(want, *calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
	if sched.begins != 1 || sched.ends != 1 {
		t.Errorf("begins=%d ends=%d, want 1/1", sched.begins, sched.ends)
	}
}

func TestDispatchSyntheticEvent(t *testing.T) {
	h, parent, child, reg, _, _ := nested(t)

	var seen []host.Node
	var phases []Phase
	var target host.Node
	reg.Set(parent, "onClick", func(e *Synthetic) {
		seen = append(seen, e.CurrentTarget)
		phases = append(phases, e.Phase)
		target = e.Target()
		e.PreventDefault()
	})
	reg.Set(child, "onClickCapture", func(e *Synthetic) {
		seen = append(seen, e.CurrentTarget)
		phases = append(phases, e.Phase)
	})

	raw := h.Click(child)

	if len(seen) != 2 || seen[0] != host.Node(child) || seen[1] != host.Node(parent) {
		t.Errorf("current targets = %v", seen)
	}
	if diff := cmp.Diff([]Phase{PhaseCapture, PhaseBubble}, phases); diff != "" {
		t.Errorf("phases (-want +got):\n%s", diff)
	}
	if target != host.Node(child) {
		t.Error("Target() should delegate to the raw event")
	}
	if !raw.DefaultPrevented() {
		t.Error("PreventDefault should be forwarded")
	}
}

func TestDispatchIgnoresOtherCategories(t *testing.T) {
	h, _, child, reg, sched, calls := nested(t)
	reg.Set(child, "onInput", record(calls, "input"))

	h.Dispatch(memhost.NewEvent("input", child))

	if len(*calls) != 0 {
		t.Errorf("calls = %v, want none", *calls)
	}
	if sched.begins != 0 {
		t.Error("undelegated event types must not open a batch")
	}
}

func TestInstallIsIdempotent(t *testing.T) {
	h := memhost.New()
	child := h.CreateElement("button").(*memhost.Node)
	h.AppendChild(h.Root(), child)

	var calls []string
	reg := NewRegistry()
	reg.Set(child, "onClick", record(&calls, "click"))
	d := NewDelegator(h, reg, nil, []Category{Click}, Options{})
	d.Install(h.Root())
	d.Install(h.Root())

	h.Click(child)

	if len(calls) != 1 {
		t.Errorf("callback ran %d times, want 1", len(calls))
	}
}

func TestObserver(t *testing.T) {
	h := memhost.New()
	child := h.CreateElement("button").(*memhost.Node)
	h.AppendChild(h.Root(), child)

	reg := NewRegistry()
	reg.Set(child, "onClick", func(*Synthetic) {})

	type obs struct {
		typ   string
		phase Phase
		calls int
	}
	var got []obs
	d := NewDelegator(h, reg, nil, nil, Options{Observe: func(typ string, p Phase, calls int) {
		got = append(got, obs{typ, p, calls})
	}})
	d.Install(h.Root())

	h.Click(child)

	want := []obs{{"click", PhaseCapture, 0}, {"click", PhaseBubble, 1}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(obs{})); diff != "" {
		t.Errorf("observations (-want +got):\n%s", diff)
	}
}
