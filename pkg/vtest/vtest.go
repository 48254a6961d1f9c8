package vtest

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/vrt/pkg/host/memhost"
	"github.com/vango-dev/vrt/pkg/render"
	"github.com/vango-dev/vrt/pkg/vdom"
)

// Harness is a root mounted into an in-memory host.
type Harness struct {
	t    *testing.T
	Host *memhost.Host
	Root *render.Root
}

// Mount renders node into a fresh in-memory host and fails the test if
// rendering reports a problem. Logging is discarded unless opts override it.
//
// Example:
//
//	h := vtest.Mount(t, vdom.CreateElement(Counter, nil))
//	h.Click("button")
//	h.ExpectContains("1")
func Mount(t *testing.T, node *vdom.VNode, opts ...render.Option) *Harness {
	t.Helper()
	mh := memhost.New()
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts = append([]render.Option{render.WithLogger(quiet)}, opts...)
	h := &Harness{t: t, Host: mh, Root: render.NewRoot(mh, mh.Root(), opts...)}
	h.Render(node)
	return h
}

// Render reconciles the harness against node.
func (h *Harness) Render(node *vdom.VNode) {
	h.t.Helper()
	if err := h.Root.Render(node); err != nil {
		h.t.Fatalf("Render() error = %v", err)
	}
}

// HTML returns the markup inside the container.
func (h *Harness) HTML() string { return h.Host.Root().InnerHTML() }

// Find returns the first element with the given tag in document order.
func (h *Harness) Find(tag string) *memhost.Node {
	return find(h.Host.Root(), tag)
}

func find(n *memhost.Node, tag string) *memhost.Node {
	for _, c := range n.Children() {
		if c.Type() == memhost.ElementNode && c.Tag() == tag {
			return c
		}
		if found := find(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// Click dispatches a click on the first element with the given tag.
func (h *Harness) Click(tag string) {
	h.t.Helper()
	n := h.Find(tag)
	if n == nil {
		h.t.Fatalf("no <%s> element to click in:\n%s", tag, truncate(h.HTML(), 500))
	}
	h.Host.Click(n)
}

// RenderToString mounts node into a throwaway host and returns its markup.
// Rendering problems are ignored.
//
// Example:
//
//	html := vtest.RenderToString(vdom.P(nil, "hi"))
func RenderToString(node *vdom.VNode) string {
	mh := memhost.New()
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	_ = render.NewRoot(mh, mh.Root(), render.WithLogger(quiet)).Render(node)
	return mh.Root().InnerHTML()
}

// ExpectContains asserts that the rendered output contains expected.
func (h *Harness) ExpectContains(expected string) {
	h.t.Helper()
	if html := h.HTML(); !strings.Contains(html, expected) {
		h.t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the rendered output does not contain unexpected.
func (h *Harness) ExpectNotContains(unexpected string) {
	h.t.Helper()
	if html := h.HTML(); strings.Contains(html, unexpected) {
		h.t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that the rendered output contains a tag.
func (h *Harness) ExpectElement(tag string) {
	h.t.Helper()
	if h.Find(tag) == nil {
		h.t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(h.HTML(), 500))
	}
}

// ExpectAttribute asserts that some element carries attr="value".
func (h *Harness) ExpectAttribute(attr, value string) {
	h.t.Helper()
	needle := attr + `="` + value + `"`
	if html := h.HTML(); !strings.Contains(html, needle) {
		h.t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// ExpectMutations asserts how many host mutations happened since the last
// ResetMutations call.
func (h *Harness) ExpectMutations(n int) {
	h.t.Helper()
	if got := h.Host.Mutations(); len(got) != n {
		h.t.Errorf("expected %d mutations, got %d: %v", n, len(got), got)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
