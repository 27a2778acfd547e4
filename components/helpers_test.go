package components

import (
	"github.com/vcrobe/nojs-counter/runtime"
	"github.com/vcrobe/nojs-counter/vdom"
)

// frames is a vdom.Target keeping every frame as markup.
type frames struct {
	html []string
}

func (f *frames) Mount(n *vdom.VNode) error {
	return f.add(n)
}

func (f *frames) Patch(_, next *vdom.VNode) error {
	return f.add(next)
}

func (f *frames) add(n *vdom.VNode) error {
	s, err := vdom.HTMLString(n)
	if err != nil {
		return err
	}
	f.html = append(f.html, s)
	return nil
}

func newRuntimeRenderer(target vdom.Target, root runtime.Component) *runtime.RendererImpl {
	r := runtime.NewRenderer(target)
	r.SetCurrentComponent(root, "counter")
	return r
}
