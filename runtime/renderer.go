package runtime

import "github.com/vcrobe/nojs-counter/vdom"

// Renderer is the part of the runtime visible to components.
type Renderer interface {
	// RenderChild renders a nested component. key identifies the instance
	// across renders so its state is preserved.
	RenderChild(key string, childWithProps Component) *vdom.VNode

	// ReRender runs another render cycle; StateHasChanged calls it.
	ReRender()
}
