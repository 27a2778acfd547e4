// Package counter holds the state machine behind the counter widget: a
// non-negative value and a flag that shows the "below zero" notice.
package counter

import (
	"math"

	"github.com/vcrobe/nojs-counter/signals"
)

// Floor is the lowest value the counter may hold.
const Floor = 0

// State is the observable state of the counter widget.
type State struct {
	Value        int  `json:"value" yaml:"value"`
	ErrorVisible bool `json:"errorVisible" yaml:"errorVisible"`
}

// Increment returns the state after one increment. It always succeeds and
// clears the error notice. The value saturates at math.MaxInt.
func (s State) Increment() State {
	if s.Value < math.MaxInt {
		s.Value++
	}
	return State{Value: s.Value, ErrorVisible: false}
}

// Decrement returns the state after one decrement. At the floor the value is
// kept and the error notice becomes visible.
func (s State) Decrement() State {
	if s.Value > Floor {
		s.Value--
		return s
	}
	return State{Value: Floor, ErrorVisible: true}
}

// Apply runs a single action against s.
func (s State) Apply(a Action) State {
	switch a {
	case ActionIncrement:
		return s.Increment()
	case ActionDecrement:
		return s.Decrement()
	default:
		return s
	}
}

// Machine owns a counter State and notifies subscribers after each
// transition so the view can redraw.
type Machine struct {
	state *signals.Signal[State]
}

// NewMachine creates a machine in the initial state {0, false}.
func NewMachine() *Machine {
	return &Machine{state: signals.NewSignal(State{})}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state.Get()
}

// Increment applies an increment and notifies subscribers.
func (m *Machine) Increment() State {
	return m.state.Update(State.Increment)
}

// Decrement applies a decrement and notifies subscribers.
func (m *Machine) Decrement() State {
	return m.state.Update(State.Decrement)
}

// Dispatch applies the given actions in order.
func (m *Machine) Dispatch(actions ...Action) State {
	for _, a := range actions {
		m.state.Update(func(s State) State { return s.Apply(a) })
	}
	return m.State()
}

// Subscribe registers fn to be called with the new state after every
// transition. The returned func removes the subscription.
func (m *Machine) Subscribe(fn func(State)) (unsubscribe func()) {
	return m.state.Subscribe(fn)
}
