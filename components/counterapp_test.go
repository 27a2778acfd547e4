package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-counter/config"
	"github.com/vcrobe/nojs-counter/counter"
	"github.com/vcrobe/nojs-counter/testcomponents"
	"github.com/vcrobe/nojs-counter/vdom"
)

// setup mounts a CounterApp whose machine has been driven to value.
func setup(t *testing.T, value int) (*CounterApp, *testcomponents.TestRenderer) {
	t.Helper()
	m := counter.NewMachine()
	for i := 0; i < value; i++ {
		m.Increment()
	}
	app := NewCounterApp(m, config.Default().Labels)
	renderer := testcomponents.NewTestRenderer(app)
	renderer.RenderRoot()
	return app, renderer
}

func displayText(t *testing.T, r *testcomponents.TestRenderer) string {
	t.Helper()
	nodes := r.Find(TestIDDisplay)
	require.Len(t, nodes, 1)
	return vdom.Text(nodes[0])
}

func TestCounterApp_RendersWithoutError(t *testing.T) {
	_, r := setup(t, 0)

	assert.Len(t, r.Find(TestIDApp), 1)
	assert.Len(t, r.Find(TestIDIncrementButton), 1)
	assert.Len(t, r.Find(TestIDDecrementButton), 1)
	assert.Len(t, r.Find(TestIDDisplay), 1)
	assert.Empty(t, r.Find(TestIDError))
}

func TestCounterApp_StartsAtZero(t *testing.T) {
	app, r := setup(t, 0)

	assert.Equal(t, counter.State{}, app.State())
	assert.Equal(t, "The counter is currently: 0", displayText(t, r))
}

func TestCounterApp_ClickIncrement(t *testing.T) {
	app, r := setup(t, 7)

	require.NoError(t, r.Click(TestIDIncrementButton))

	assert.Equal(t, "The counter is currently: 8", displayText(t, r))
	assert.Equal(t, counter.State{Value: 8}, app.State())
}

func TestCounterApp_ClickDecrement(t *testing.T) {
	_, r := setup(t, 7)

	require.NoError(t, r.Click(TestIDDecrementButton))

	assert.Equal(t, "The counter is currently: 6", displayText(t, r))
	assert.Empty(t, r.Find(TestIDError))
}

func TestCounterApp_DecrementAtZeroShowsError(t *testing.T) {
	_, r := setup(t, 0)

	require.NoError(t, r.Click(TestIDDecrementButton))

	errs := r.Find(TestIDError)
	require.Len(t, errs, 1)
	assert.Equal(t, "You can't decrement below 0", vdom.Text(errs[0]))
	assert.Equal(t, "The counter is currently: 0", displayText(t, r))

	require.NoError(t, r.Click(TestIDDecrementButton))
	assert.Len(t, r.Find(TestIDError), 1)
	assert.Equal(t, "The counter is currently: 0", displayText(t, r))
}

func TestCounterApp_IncrementHidesError(t *testing.T) {
	_, r := setup(t, 0)

	require.NoError(t, r.Click(TestIDDecrementButton))
	require.Len(t, r.Find(TestIDError), 1)

	require.NoError(t, r.Click(TestIDIncrementButton))

	assert.Equal(t, "The counter is currently: 1", displayText(t, r))
	assert.Empty(t, r.Find(TestIDError))
}

func TestCounterApp_RendersOncePerTransition(t *testing.T) {
	app, r := setup(t, 0)
	before := r.Renders()

	app.Increment()
	app.Decrement()
	app.Decrement()

	assert.Equal(t, before+3, r.Renders())
}

func TestCounterApp_DestroyStopsRendering(t *testing.T) {
	app, r := setup(t, 0)
	r.Unmount()
	before := r.Renders()

	app.Increment()

	assert.Equal(t, before, r.Renders())
	assert.Equal(t, 1, app.State().Value)
}

func TestCounterApp_UsesConfiguredLabels(t *testing.T) {
	labels := config.Default().Labels
	labels.Display = "Total:"
	labels.Increment = "+"
	app := NewCounterApp(nil, labels)
	r := testcomponents.NewTestRenderer(app)
	r.RenderRoot()

	assert.Equal(t, "Total: 0", displayText(t, r))
	assert.Equal(t, "+", vdom.Text(r.Find(TestIDIncrementButton)[0]))
}

func TestCounterApp_RendersThroughRuntime(t *testing.T) {
	target := &frames{}
	app := NewCounterApp(nil, config.Default().Labels)
	renderer := newRuntimeRenderer(target, app)

	require.NoError(t, renderer.RenderRoot())
	app.Decrement()
	app.Increment()

	require.Len(t, target.html, 3)
	assert.Contains(t, target.html[1], `<h2 data-test="error-message">`)
	assert.NotContains(t, target.html[2], "error-message")
	assert.Contains(t, target.html[2], "The counter is currently: 1")
}

func TestCounterApp_DispatchReplaysThroughMachine(t *testing.T) {
	app, r := setup(t, 0)
	before := r.Renders()

	got := app.Dispatch(counter.ActionIncrement, counter.ActionDecrement, counter.ActionDecrement)

	assert.Equal(t, counter.State{Value: 0, ErrorVisible: true}, got)
	assert.Equal(t, before+3, r.Renders())
	assert.Len(t, r.Find(TestIDError), 1)
	assert.Equal(t, "The counter is currently: 0", displayText(t, r))
}
