// Package tui drives the counter widget from a terminal with Bubble Tea.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vcrobe/nojs-counter/components"
	"github.com/vcrobe/nojs-counter/config"
	"github.com/vcrobe/nojs-counter/counter"
	"github.com/vcrobe/nojs-counter/runtime"
	"github.com/vcrobe/nojs-counter/vdom"
)

const help = "+/- or ↑/↓ change • tab moves focus • enter presses • q quits"

// Model is the Bubble Tea model wrapping a mounted CounterApp.
type Model struct {
	title    string
	app      *components.CounterApp
	renderer *runtime.RendererImpl
	screen   *vdom.Recorder
	focus    int
}

// New mounts a fresh counter widget configured by cfg.
func New(cfg config.Config) (Model, error) {
	app := components.NewCounterApp(counter.NewMachine(), cfg.Labels)
	screen := &vdom.Recorder{}
	renderer := runtime.NewRenderer(screen)
	renderer.SetCurrentComponent(app, "counter")
	if err := renderer.RenderRoot(); err != nil {
		return Model{}, err
	}
	return Model{title: cfg.Labels.Title, app: app, renderer: renderer, screen: screen}, nil
}

// State exposes the widget state, mainly for tests.
func (m Model) State() counter.State {
	return m.app.State()
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.renderer.Unmount()
		return m, tea.Quit
	case "+", "=", "up", "k":
		m.app.Increment()
	case "-", "_", "down", "j":
		m.app.Decrement()
	case "tab", "right", "l":
		m.focus = stepFocus(m.focus, len(m.buttons()), 1)
	case "shift+tab", "left", "h":
		m.focus = stepFocus(m.focus, len(m.buttons()), -1)
	case "enter", " ":
		if buttons := m.buttons(); m.focus < len(buttons) && buttons[m.focus].OnClick != nil {
			buttons[m.focus].OnClick()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var focused *vdom.VNode
	if buttons := m.buttons(); m.focus < len(buttons) {
		focused = buttons[m.focus]
	}

	var b strings.Builder
	b.WriteString(vdom.RenderText(m.screen.Last, focused))
	b.WriteString("\n\n")
	b.WriteString(help)
	b.WriteString("\n")
	return b.String()
}

func (m Model) buttons() []*vdom.VNode {
	var out []*vdom.VNode
	vdom.Walk(m.screen.Last, func(n *vdom.VNode) {
		if n.Tag == "button" {
			out = append(out, n)
		}
	})
	return out
}

// stepFocus moves focus by delta over n buttons, wrapping at both ends.
func stepFocus(focus, n, delta int) int {
	if n == 0 {
		return 0
	}
	return ((focus+delta)%n + n) % n
}
