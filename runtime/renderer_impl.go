package runtime

import (
	"github.com/pkg/errors"

	"github.com/vcrobe/nojs-counter/console"
	"github.com/vcrobe/nojs-counter/vdom"
)

const rootKey = "__root__"

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the concrete implementation of the Renderer interface.
// It manages the component instance tree and handles rendering lifecycle.
// Frames are handed to a vdom.Target: the DOM in the browser, markup natively.
type RendererImpl struct {
	instances        map[string]Component
	initialized      map[string]bool // Track which components have been initialized
	activeKeys       map[string]bool // Track which components are active in the current render
	currentComponent Component       // The currently active root component
	currentKey       string
	target           vdom.Target
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
	rendering        bool
	pending          bool
}

// NewRenderer creates a new runtime renderer writing frames to target.
func NewRenderer(target vdom.Target) *RendererImpl {
	return &RendererImpl{
		instances:   make(map[string]Component),
		initialized: make(map[string]bool),
		activeKeys:  make(map[string]bool),
		target:      target,
	}
}

// SetCurrentComponent sets the root component to be rendered. key identifies
// the root instance; replacing the root with a different key destroys the
// previous one and its children.
func (r *RendererImpl) SetCurrentComponent(comp Component, key string) {
	if r.currentComponent != nil && key != r.currentKey {
		r.destroyAll()
	}
	r.currentComponent = comp
	r.currentKey = key
}

// CurrentVDOM returns the most recently rendered tree.
func (r *RendererImpl) CurrentVDOM() *vdom.VNode {
	return r.prevVDOM
}

// RenderRoot runs one render cycle for the root component.
// A ReRender requested while a cycle is running is coalesced into one more
// cycle after the current one finishes.
func (r *RendererImpl) RenderRoot() error {
	if r.currentComponent == nil {
		return errors.New("no root component set")
	}
	if r.rendering {
		r.pending = true
		return nil
	}
	r.rendering = true
	defer func() { r.rendering = false }()

	for {
		r.pending = false
		if err := r.renderOnce(); err != nil {
			return err
		}
		if !r.pending {
			return nil
		}
	}
}

func (r *RendererImpl) renderOnce() error {
	// Reset activeKeys for this render cycle
	r.activeKeys = make(map[string]bool)

	root := r.currentComponent
	root.SetRenderer(r)

	if !r.initialized[rootKey] {
		if initializer, ok := root.(Initializer); ok {
			r.callOnInit(initializer, rootKey)
		}
		r.initialized[rootKey] = true
	}
	if paramReceiver, ok := root.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, rootKey)
	}

	newVDOM := root.Render(r)

	var err error
	if r.prevVDOM == nil {
		err = r.target.Mount(newVDOM)
	} else {
		err = r.target.Patch(r.prevVDOM, newVDOM)
	}
	if err != nil {
		return errors.Wrapf(err, "render %s", r.currentKey)
	}

	// Store the new VDOM tree for the next render cycle
	r.prevVDOM = newVDOM

	r.cleanupUnmountedComponents()
	return nil
}

// RenderChild renders a child component.
// It handles the core logic of instance creation and reuse.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	if !exists {
		instance = childWithProps
		r.instances[key] = instance
	} else if updater, ok := instance.(PropUpdater); ok {
		// Preserve the existing instance to keep state, apply new props.
		updater.ApplyProps(childWithProps)
	}

	instance.SetRenderer(r)

	if !r.initialized[key] {
		if initializer, ok := instance.(Initializer); ok {
			r.callOnInit(initializer, key)
		}
		r.initialized[key] = true
	}
	if paramReceiver, ok := instance.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, key)
	}

	return instance.Render(r)
}

// cleanupUnmountedComponents removes components that are no longer in the tree
// and calls their OnDestroy lifecycle method if they implement the Cleaner interface.
func (r *RendererImpl) cleanupUnmountedComponents() {
	for key, instance := range r.instances {
		if r.activeKeys[key] {
			continue
		}
		if cleaner, ok := instance.(Cleaner); ok {
			r.callOnDestroy(cleaner, key)
		}
		delete(r.instances, key)
		delete(r.initialized, key)
	}
}

// Unmount tears the tree down: every child and the root receive OnDestroy.
func (r *RendererImpl) Unmount() {
	r.destroyAll()
	r.currentComponent = nil
	r.currentKey = ""
}

func (r *RendererImpl) destroyAll() {
	r.activeKeys = make(map[string]bool)
	r.cleanupUnmountedComponents()
	if r.currentComponent != nil && r.initialized[rootKey] {
		if cleaner, ok := r.currentComponent.(Cleaner); ok {
			r.callOnDestroy(cleaner, rootKey)
		}
	}
	delete(r.initialized, rootKey)
	r.currentComponent = nil
}

// ReRender patches the target with the component's current state.
func (r *RendererImpl) ReRender() {
	if err := r.RenderRoot(); err != nil {
		console.Error("Render failed", "component", r.currentKey, "error", err.Error())
	}
}
