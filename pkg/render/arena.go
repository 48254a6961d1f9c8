package render

import (
	"github.com/vango-dev/vrt/pkg/host"
	"github.com/vango-dev/vrt/pkg/vdom"
)

// record is the renderer's bookkeeping for one mounted VNode.
type record struct {
	node     host.Node   // host node of elements and text
	rendered *vdom.VNode // render output of function and forward components
	inst     *Base       // instance of class components
}

// arena maps mounted VNode IDs to their records. IDs are never reused.
type arena struct {
	next    vdom.NodeID
	records map[vdom.NodeID]*record
}

func newArena() *arena {
	return &arena{records: make(map[vdom.NodeID]*record)}
}

// alloc assigns a fresh ID to v and returns its empty record.
func (a *arena) alloc(v *vdom.VNode) *record {
	a.next++
	v.ID = a.next
	rec := &record{}
	a.records[v.ID] = rec
	return rec
}

func (a *arena) get(v *vdom.VNode) *record {
	if v == nil || v.ID == 0 {
		return nil
	}
	return a.records[v.ID]
}

// adopt moves prev's record to next after an in-place patch.
func (a *arena) adopt(prev, next *vdom.VNode) *record {
	next.ID = prev.ID
	return a.records[next.ID]
}

func (a *arena) free(v *vdom.VNode) {
	if v == nil || v.ID == 0 {
		return
	}
	delete(a.records, v.ID)
}

func (a *arena) len() int {
	return len(a.records)
}
