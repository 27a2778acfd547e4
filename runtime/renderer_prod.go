//go:build !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/nojs-counter/console"
)

// recoverLifecycle logs a panic raised by a lifecycle hook instead of
// letting it take the application down.
func recoverLifecycle(hook, key string) {
	if rec := recover(); rec != nil {
		console.Error("Lifecycle hook panicked", "hook", hook, "component", key, "panic", fmt.Sprint(rec))
	}
}

// callOnInit invokes the OnInit lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	defer recoverLifecycle("OnInit", key)
	initializer.OnInit()
}

// callOnParametersSet invokes the OnParametersSet lifecycle method in production mode.
func (r *RendererImpl) callOnParametersSet(receiver ParameterReceiver, key string) {
	defer recoverLifecycle("OnParametersSet", key)
	receiver.OnParametersSet()
}

// callOnDestroy invokes the OnDestroy lifecycle method in production mode.
func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	defer recoverLifecycle("OnDestroy", key)
	cleaner.OnDestroy()
}
