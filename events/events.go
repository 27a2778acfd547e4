// Package events adapts Go handlers for use as VNode event callbacks.
package events

import (
	"fmt"

	"github.com/vcrobe/nojs-counter/console"
)

// AdaptNoArgEvent wraps a no-argument handler so that each dispatch runs to
// completion before the next one is accepted. A dispatch arriving while the
// handler is still running (for example a handler that synchronously
// triggers its own event) is dropped and logged. A panicking handler is
// logged and does not wedge the adapter.
func AdaptNoArgEvent(name string, handler func()) func() {
	if handler == nil {
		return nil
	}
	running := false
	return func() {
		if running {
			console.Warn("Dropped reentrant event", "event", name)
			return
		}
		running = true
		defer func() {
			running = false
			if rec := recover(); rec != nil {
				console.Error("Event handler panicked", "event", name, "panic", fmt.Sprint(rec))
			}
		}()
		handler()
	}
}
