// Package testcomponents provides an in-memory renderer for component tests.
package testcomponents

import (
	"github.com/pkg/errors"

	"github.com/vcrobe/nojs-counter/runtime"
	"github.com/vcrobe/nojs-counter/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect and click the resulting VDOM tree by data-test attribute
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	initialized bool
	renders     int
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs the initial render of the component, running OnInit
// first when the component implements it.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	if !r.initialized {
		if initializer, ok := r.component.(runtime.Initializer); ok {
			initializer.OnInit()
		}
		r.initialized = true
	}
	r.render()
	return r.currentVDOM
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.render()
}

func (r *TestRenderer) render() {
	if receiver, ok := r.component.(runtime.ParameterReceiver); ok {
		receiver.OnParametersSet()
	}
	r.currentVDOM = r.component.Render(r)
	r.renders++
}

// Unmount runs OnDestroy when the component implements it.
func (r *TestRenderer) Unmount() {
	if cleaner, ok := r.component.(runtime.Cleaner); ok {
		cleaner.OnDestroy()
	}
}

// Renders reports how many times the component has rendered.
func (r *TestRenderer) Renders() int {
	return r.renders
}

// Find returns the nodes of the current tree carrying data-test=val.
func (r *TestRenderer) Find(val string) []*vdom.VNode {
	return vdom.FindByTestAttr(r.currentVDOM, val)
}

// Click invokes the click handler of the single node carrying data-test=val.
func (r *TestRenderer) Click(val string) error {
	nodes := r.Find(val)
	if len(nodes) != 1 {
		return errors.Errorf("expected one node with %s=%q, found %d", vdom.TestAttr, val, len(nodes))
	}
	if nodes[0].OnClick == nil {
		return errors.Errorf("node %s=%q has no click handler", vdom.TestAttr, val)
	}
	nodes[0].OnClick()
	return nil
}

// RenderChild renders a child without instance tracking.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	child.SetRenderer(r)
	return child.Render(r)
}
