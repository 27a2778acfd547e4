package components

import (
	"strconv"

	"github.com/vcrobe/nojs-counter/config"
	"github.com/vcrobe/nojs-counter/counter"
	"github.com/vcrobe/nojs-counter/events"
	"github.com/vcrobe/nojs-counter/runtime"
	"github.com/vcrobe/nojs-counter/vdom"
)

// data-test hooks rendered by CounterApp.
const (
	TestIDApp             = "component-app"
	TestIDDisplay         = "counter-display"
	TestIDError           = "error-message"
	TestIDIncrementButton = "increment-button"
	TestIDDecrementButton = "decrement-button"
)

// CounterApp renders a counter.Machine: the current value, the below-zero
// notice while it is visible, and the increment and decrement buttons.
// It re-renders whenever the machine transitions.
type CounterApp struct {
	runtime.ComponentBase

	Machine *counter.Machine
	Labels  config.Labels

	unsubscribe func()
	onIncrement func()
	onDecrement func()
}

// NewCounterApp creates the widget over m. A nil m starts a fresh machine.
func NewCounterApp(m *counter.Machine, labels config.Labels) *CounterApp {
	if m == nil {
		m = counter.NewMachine()
	}
	return &CounterApp{Machine: m, Labels: labels}
}

func (c *CounterApp) OnInit() {
	if c.Machine == nil {
		c.Machine = counter.NewMachine()
	}
	c.unsubscribe = c.Machine.Subscribe(func(counter.State) {
		c.StateHasChanged()
	})
	c.onIncrement = events.AdaptNoArgEvent(TestIDIncrementButton, c.Increment)
	c.onDecrement = events.AdaptNoArgEvent(TestIDDecrementButton, c.Decrement)
}

func (c *CounterApp) OnDestroy() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// Increment handles "increment requested".
func (c *CounterApp) Increment() {
	c.Machine.Increment()
}

// Decrement handles "decrement requested".
func (c *CounterApp) Decrement() {
	c.Machine.Decrement()
}

// Dispatch replays actions through the machine in order; each transition
// re-renders like a click would.
func (c *CounterApp) Dispatch(actions ...counter.Action) counter.State {
	return c.Machine.Dispatch(actions...)
}

// State returns the machine's current state.
func (c *CounterApp) State() counter.State {
	return c.Machine.State()
}

func (c *CounterApp) Render(r runtime.Renderer) *vdom.VNode {
	s := c.Machine.State()

	return vdom.Div(map[string]any{vdom.TestAttr: TestIDApp},
		vdom.Heading(1, c.Labels.Display+" "+strconv.Itoa(s.Value), map[string]any{
			vdom.TestAttr: TestIDDisplay,
		}),
		vdom.When(s.ErrorVisible, vdom.Heading(2, c.Labels.Error, map[string]any{
			vdom.TestAttr: TestIDError,
		})),
		vdom.Button(c.Labels.Increment, map[string]any{
			vdom.TestAttr: TestIDIncrementButton,
			"onClick":     c.handler(c.onIncrement, c.Increment),
		}),
		vdom.Button(c.Labels.Decrement, map[string]any{
			vdom.TestAttr: TestIDDecrementButton,
			"onClick":     c.handler(c.onDecrement, c.Decrement),
		}),
	)
}

// handler prefers the adapted handler built in OnInit.
func (c *CounterApp) handler(adapted, raw func()) func() {
	if adapted != nil {
		return adapted
	}
	return raw
}
