package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/vcrobe/nojs-counter/components"
	"github.com/vcrobe/nojs-counter/config"
	"github.com/vcrobe/nojs-counter/console"
	"github.com/vcrobe/nojs-counter/counter"
	"github.com/vcrobe/nojs-counter/runtime"
	"github.com/vcrobe/nojs-counter/vdom"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	script := flag.String("actions", "", `Actions to replay before rendering, e.g. "++-" or "increment,decrement".`)
	outPath := flag.String("out", "", "Output file (default stdout).")
	fragment := flag.Bool("fragment", false, "Write only the widget markup instead of a full page.")
	flag.Parse()

	if err := run(*configPath, *script, *outPath, *fragment); err != nil {
		console.Error("Rendering counter failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(configPath, script, outPath string, fragment bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if cfg.Dev {
		level = "debug"
	}
	if err := console.Configure(level, nil); err != nil {
		return err
	}

	actions, err := counter.ParseScript(script)
	if err != nil {
		return err
	}

	frame, state, err := render(cfg, actions)
	if err != nil {
		return err
	}
	console.Debug("Replayed actions", "actions", len(actions), "value", state.Value, "errorVisible", state.ErrorVisible)

	return writeOutput(outPath, func(w io.Writer) error {
		if fragment {
			if err := vdom.RenderHTML(w, frame); err != nil {
				return err
			}
			_, err := fmt.Fprintln(w)
			return errors.Wrap(err, "write output")
		}
		return vdom.RenderDocument(w, cfg.Labels.Title, cfg.MountID, frame)
	})
}

// writeOutput runs write against stdout, or against outPath when set. The
// file's close error is reported unless write already failed.
func writeOutput(outPath string, write func(io.Writer) error) error {
	if outPath == "" {
		return write(os.Stdout)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "create %s", outPath)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", outPath)
	}
	return nil
}

// render mounts the widget, replays actions through its handlers and
// returns the final frame.
func render(cfg config.Config, actions []counter.Action) (*vdom.VNode, counter.State, error) {
	app := components.NewCounterApp(counter.NewMachine(), cfg.Labels)
	screen := &vdom.Recorder{}
	renderer := runtime.NewRenderer(screen)
	renderer.SetCurrentComponent(app, "counter")
	if err := renderer.RenderRoot(); err != nil {
		return nil, counter.State{}, err
	}
	defer renderer.Unmount()

	state := app.Dispatch(actions...)
	return screen.Last, state, nil
}
