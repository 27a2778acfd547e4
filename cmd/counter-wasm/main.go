//go:build js && wasm

package main

import (
	"github.com/vcrobe/nojs-counter/components"
	"github.com/vcrobe/nojs-counter/config"
	"github.com/vcrobe/nojs-counter/console"
	"github.com/vcrobe/nojs-counter/counter"
	"github.com/vcrobe/nojs-counter/runtime"
	"github.com/vcrobe/nojs-counter/vdom"
)

func main() {
	// 1. Settings come from defaults plus COUNTER_* variables passed to the wasm instance
	cfg, err := config.Load("")
	if err != nil {
		panic("Error loading config: " + err.Error())
	}
	level := cfg.LogLevel
	if cfg.Dev {
		level = "debug"
	}
	if err := console.Configure(level, nil); err != nil {
		panic("Error configuring console: " + err.Error())
	}

	// 2. Create the Counter component over a fresh machine
	app := components.NewCounterApp(counter.NewMachine(), cfg.Labels)

	// 3. Create the renderer on the DOM mount point and render
	renderer := runtime.NewRenderer(vdom.NewDOMTarget(cfg.MountID))
	renderer.SetCurrentComponent(app, "counter")
	if err := renderer.RenderRoot(); err != nil {
		panic("Error mounting counter: " + err.Error())
	}
	console.Log("Counter mounted", "selector", cfg.MountID)

	// Keep the Go program running
	select {}
}
