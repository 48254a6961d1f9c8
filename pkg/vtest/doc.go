// Package vtest provides testing helpers for components.
//
// Mount renders a tree into an in-memory host and returns a Harness that
// can dispatch events and assert on the resulting markup:
//
//	func TestToggle(t *testing.T) {
//	    h := vtest.Mount(t, vdom.CreateElement(Toggle, nil))
//	    h.ExpectContains("off")
//
//	    h.Click("button")
//	    h.ExpectContains("on")
//	}
//
// RenderToString is the one-shot form for trees without interaction:
//
//	html := vtest.RenderToString(vdom.P(nil, "hi"))
package vtest
