package render

import (
	"fmt"
	"reflect"
	"sort"

	verrors "github.com/vango-dev/vrt/internal/errors"
	"github.com/vango-dev/vrt/pkg/event"
	"github.com/vango-dev/vrt/pkg/host"
	"github.com/vango-dev/vrt/pkg/vdom"
)

// applyProps brings the host node from prev to next. Only changed keys
// touch the host, so applying identical props performs no mutation.
func (r *Root) applyProps(n host.Node, name string, prev, next vdom.Props) {
	for _, key := range sortedKeys(prev) {
		if key == vdom.PropChildren {
			continue
		}
		if _, ok := next[key]; ok {
			continue
		}
		switch {
		case key == vdom.PropStyle:
			for _, sk := range sortedKeys(toStyle(prev[key])) {
				r.host.ClearStyle(n, sk)
			}
		case vdom.IsEventProp(key):
			r.registry.Remove(n, key)
		default:
			if _, ok := event.AsHandler(prev[key]); ok {
				continue // never applied
			}
			r.host.RemoveAttribute(n, key)
		}
	}

	for _, key := range sortedKeys(next) {
		if key == vdom.PropChildren {
			continue
		}
		value := next[key]
		old, had := prev[key]

		switch {
		case key == vdom.PropStyle:
			r.applyStyle(n, toStyle(old), toStyle(value))
		case vdom.IsEventProp(key):
			if value == nil {
				r.registry.Remove(n, key)
				continue
			}
			h, ok := event.AsHandler(value)
			if !ok {
				r.report(verrors.New("E202").WithNode(name).
					WithDetail(fmt.Sprintf("prop %q holds %T", key, value)))
				continue
			}
			// Callbacks are fresh closures on every render; always store
			// the latest one.
			r.registry.Set(n, key, h)
		default:
			if _, ok := event.AsHandler(value); ok {
				r.report(verrors.New("E203").WithNode(name).
					WithDetail(fmt.Sprintf("prop %q holds a callback", key)))
				continue
			}
			if had && propsEqual(old, value) {
				continue
			}
			r.host.SetAttribute(n, key, value)
		}
	}
}

// applyStyle clears removed declarations and merges changed ones.
func (r *Root) applyStyle(n host.Node, prev, next map[string]string) {
	for _, k := range sortedKeys(prev) {
		if _, ok := next[k]; !ok {
			r.host.ClearStyle(n, k)
		}
	}
	changed := make(map[string]string)
	for k, v := range next {
		if old, ok := prev[k]; !ok || old != v {
			changed[k] = v
		}
	}
	if len(changed) > 0 {
		r.host.MergeStyle(n, changed)
	}
}

// toStyle accepts vdom.Style, map[string]string and map[string]any.
func toStyle(v any) map[string]string {
	switch s := v.(type) {
	case vdom.Style:
		return s
	case map[string]string:
		return s
	case map[string]any:
		out := make(map[string]string, len(s))
		for k, val := range s {
			out[k] = fmt.Sprint(val)
		}
		return out
	}
	return nil
}

// propsEqual compares two prop values for equality.
func propsEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	return reflect.DeepEqual(a, b)
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
