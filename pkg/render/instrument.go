package render

import "github.com/vango-dev/vrt/pkg/host"

// instrumented counts every mutation passed to the wrapped adapter.
type instrumented struct {
	host.Adapter
	m *Metrics
}

func instrument(h host.Adapter, m *Metrics) host.Adapter {
	return instrumented{Adapter: h, m: m}
}

func (a instrumented) CreateElement(tag string) host.Node {
	a.m.recordMutation("create_element")
	return a.Adapter.CreateElement(tag)
}

func (a instrumented) CreateText(value string) host.Node {
	a.m.recordMutation("create_text")
	return a.Adapter.CreateText(value)
}

func (a instrumented) SetAttribute(n host.Node, key string, value any) {
	a.m.recordMutation("set_attribute")
	a.Adapter.SetAttribute(n, key, value)
}

func (a instrumented) RemoveAttribute(n host.Node, key string) {
	a.m.recordMutation("remove_attribute")
	a.Adapter.RemoveAttribute(n, key)
}

func (a instrumented) MergeStyle(n host.Node, style map[string]string) {
	a.m.recordMutation("merge_style")
	a.Adapter.MergeStyle(n, style)
}

func (a instrumented) ClearStyle(n host.Node, key string) {
	a.m.recordMutation("clear_style")
	a.Adapter.ClearStyle(n, key)
}

func (a instrumented) SetText(n host.Node, value string) {
	a.m.recordMutation("set_text")
	a.Adapter.SetText(n, value)
}

func (a instrumented) AppendChild(parent, child host.Node) {
	a.m.recordMutation("append_child")
	a.Adapter.AppendChild(parent, child)
}

func (a instrumented) InsertBefore(parent, child, before host.Node) {
	a.m.recordMutation("insert_before")
	a.Adapter.InsertBefore(parent, child, before)
}

func (a instrumented) RemoveChild(n host.Node) {
	a.m.recordMutation("remove_child")
	a.Adapter.RemoveChild(n)
}
