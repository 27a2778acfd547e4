// Package runtime mounts components, runs their lifecycle hooks and hands
// each rendered frame to a vdom.Target.
package runtime

import "github.com/vcrobe/nojs-counter/vdom"

// Component is anything the runtime can mount. It carries no build tags so
// the same component renders in the browser, in a terminal and in tests.
type Component interface {
	// Render returns the component's current tree. r gives access to
	// RenderChild for nested components.
	Render(r Renderer) *vdom.VNode

	// SetRenderer attaches the renderer that StateHasChanged reports to.
	SetRenderer(r Renderer)
}
