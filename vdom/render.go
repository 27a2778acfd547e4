//go:build js && wasm

package vdom

import (
	"syscall/js"

	"github.com/pkg/errors"

	"github.com/vcrobe/nojs-counter/console"
)

const handlerProp = "__nojsHandler"

// DOMTarget mounts frames under the first element matching a CSS selector
// and patches the live DOM in place on later frames.
type DOMTarget struct {
	selector string
	nextID   int
	handlers map[int]func()
	funcs    map[int]js.Func
}

// NewDOMTarget creates a target for the given mount selector (e.g. "#app").
func NewDOMTarget(selector string) *DOMTarget {
	return &DOMTarget{
		selector: selector,
		handlers: make(map[int]func()),
		funcs:    make(map[int]js.Func),
	}
}

// Mount clears the mount element and renders n into it.
func (t *DOMTarget) Mount(n *VNode) error {
	mount, err := t.mountElement()
	if err != nil {
		return err
	}
	t.releaseChildren(mount)
	mount.Set("innerHTML", "")
	if n == nil {
		return nil
	}
	if el := t.createElement(n); el.Truthy() {
		mount.Call("appendChild", el)
	}
	return nil
}

// Patch updates the DOM rendered from prev so it matches next.
func (t *DOMTarget) Patch(prev, next *VNode) error {
	mount, err := t.mountElement()
	if err != nil {
		return err
	}
	el := mount.Get("firstElementChild")
	if prev == nil || !el.Truthy() {
		return t.Mount(next)
	}
	if next == nil {
		t.release(el)
		mount.Call("removeChild", el)
		return nil
	}
	t.patch(el, prev, next)
	return nil
}

func (t *DOMTarget) mountElement() (js.Value, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined(), errors.New("document is not available")
	}
	mount := doc.Call("querySelector", t.selector)
	if !mount.Truthy() {
		console.Error("Mount element not found", "selector", t.selector)
		return js.Undefined(), errors.Errorf("mount element %q not found", t.selector)
	}
	return mount, nil
}

func (t *DOMTarget) createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	el := doc.Call("createElement", n.Tag)
	for _, k := range sortedKeys(n.Attributes) {
		el.Call("setAttribute", k, attrString(n.Attributes[k]))
	}
	if n.Content != "" {
		el.Set("textContent", n.Content)
	} else {
		for _, child := range n.Children {
			el.Call("appendChild", t.createElement(child))
		}
	}
	if n.OnClick != nil {
		t.bind(el, n.OnClick)
	}
	return el
}

// bind attaches one long-lived js.Func per element; patches only swap the
// Go handler it dispatches to.
func (t *DOMTarget) bind(el js.Value, fn func()) {
	id := t.nextID
	t.nextID++
	t.handlers[id] = fn
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if h := t.handlers[id]; h != nil {
			h()
		}
		return nil
	})
	t.funcs[id] = cb
	el.Set(handlerProp, id)
	el.Call("addEventListener", "click", cb)
}

func (t *DOMTarget) unbind(el js.Value) {
	v := el.Get(handlerProp)
	if v.Type() != js.TypeNumber {
		return
	}
	id := v.Int()
	if cb, ok := t.funcs[id]; ok {
		el.Call("removeEventListener", "click", cb)
		cb.Release()
	}
	delete(t.funcs, id)
	delete(t.handlers, id)
	el.Delete(handlerProp)
}

func (t *DOMTarget) release(el js.Value) {
	t.unbind(el)
	t.releaseChildren(el)
}

func (t *DOMTarget) releaseChildren(el js.Value) {
	children := el.Get("children")
	for i := 0; i < children.Length(); i++ {
		t.release(children.Index(i))
	}
}

func (t *DOMTarget) replace(el js.Value, next *VNode) {
	fresh := t.createElement(next)
	t.release(el)
	el.Get("parentNode").Call("replaceChild", fresh, el)
}

func (t *DOMTarget) patch(el js.Value, prev, next *VNode) {
	if prev.Tag != next.Tag || (prev.Content != "") != (next.Content != "") {
		t.replace(el, next)
		return
	}

	for k := range prev.Attributes {
		if _, ok := next.Attributes[k]; !ok {
			el.Call("removeAttribute", k)
		}
	}
	for _, k := range sortedKeys(next.Attributes) {
		v := attrString(next.Attributes[k])
		if old, ok := prev.Attr(k); !ok || old != v {
			el.Call("setAttribute", k, v)
		}
	}

	switch v := el.Get(handlerProp); {
	case v.Type() == js.TypeNumber && next.OnClick != nil:
		t.handlers[v.Int()] = next.OnClick
	case v.Type() == js.TypeNumber:
		t.unbind(el)
	case next.OnClick != nil:
		t.bind(el, next.OnClick)
	}

	if next.Content != "" {
		if prev.Content != next.Content {
			el.Set("textContent", next.Content)
		}
		return
	}

	children := el.Get("children")
	shared := min(len(prev.Children), len(next.Children))
	for i := 0; i < shared; i++ {
		t.patch(children.Index(i), prev.Children[i], next.Children[i])
	}
	for i := shared; i < len(next.Children); i++ {
		el.Call("appendChild", t.createElement(next.Children[i]))
	}
	for i := len(prev.Children) - 1; i >= shared; i-- {
		stale := children.Index(i)
		t.release(stale)
		el.Call("removeChild", stale)
	}
}
