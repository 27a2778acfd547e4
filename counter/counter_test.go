package counter

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Initial(t *testing.T) {
	m := NewMachine()

	assert.Equal(t, State{Value: 0, ErrorVisible: false}, m.State())
}

func TestState_Transitions(t *testing.T) {
	cases := []struct {
		name    string
		from    State
		actions []Action
		want    State
	}{
		{"increment from seven", State{Value: 7}, []Action{ActionIncrement}, State{Value: 8}},
		{"decrement from seven", State{Value: 7}, []Action{ActionDecrement}, State{Value: 6}},
		{"decrement at floor", State{Value: 0}, []Action{ActionDecrement}, State{Value: 0, ErrorVisible: true}},
		{"increment clears error", State{Value: 0}, []Action{ActionDecrement, ActionIncrement}, State{Value: 1}},
		{"repeated decrements at floor", State{}, []Action{ActionDecrement, ActionDecrement, ActionDecrement}, State{Value: 0, ErrorVisible: true}},
		{"decrement to floor keeps error hidden", State{Value: 1}, []Action{ActionDecrement}, State{Value: 0}},
		{"increment saturates at max int", State{Value: math.MaxInt, ErrorVisible: true}, []Action{ActionIncrement}, State{Value: math.MaxInt}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.from
			for _, a := range tc.actions {
				got = got.Apply(a)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestState_RandomSequencesHoldInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 50; run++ {
		s := State{}
		for step := 0; step < 200; step++ {
			a := ActionIncrement
			if rng.Intn(3) > 0 {
				a = ActionDecrement
			}
			prev := s
			s = s.Apply(a)

			require.GreaterOrEqual(t, s.Value, 0)
			require.Equal(t, a == ActionDecrement && prev.Value == 0, s.ErrorVisible,
				"run %d step %d: %s from %+v", run, step, a, prev)
		}
	}
}

func TestMachine_NotifiesAfterEachTransition(t *testing.T) {
	m := NewMachine()

	var seen []State
	unsub := m.Subscribe(func(s State) { seen = append(seen, s) })

	m.Decrement()
	m.Increment()
	m.Increment()
	unsub()
	m.Decrement()

	assert.Equal(t, []State{
		{Value: 0, ErrorVisible: true},
		{Value: 1},
		{Value: 2},
	}, seen)
	assert.Equal(t, State{Value: 1}, m.State())
}

func TestMachine_Dispatch(t *testing.T) {
	m := NewMachine()

	got := m.Dispatch(ActionIncrement, ActionIncrement, ActionDecrement, ActionDecrement, ActionDecrement)

	assert.Equal(t, State{Value: 0, ErrorVisible: true}, got)
}

func TestParseScript(t *testing.T) {
	actions, err := ParseScript("++ -")
	require.NoError(t, err)
	assert.Equal(t, []Action{ActionIncrement, ActionIncrement, ActionDecrement}, actions)

	actions, err = ParseScript("increment, DEC,inc")
	require.NoError(t, err)
	assert.Equal(t, []Action{ActionIncrement, ActionDecrement, ActionIncrement}, actions)

	actions, err = ParseScript("  ")
	require.NoError(t, err)
	assert.Empty(t, actions)

	_, err = ParseScript("increment,reset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown counter action "reset"`)
	assert.Contains(t, err.Error(), "action 1")
}
