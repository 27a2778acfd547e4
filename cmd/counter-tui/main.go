package main

import (
	"flag"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vcrobe/nojs-counter/config"
	"github.com/vcrobe/nojs-counter/console"
	"github.com/vcrobe/nojs-counter/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	logPath := flag.String("log", "", "Write logs to this file (the terminal is owned by the UI).")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		console.Error("Loading config failed", "error", err.Error())
		os.Exit(1)
	}

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			console.Error("Opening log file failed", "path", *logPath, "error", err.Error())
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	if err := console.Configure(cfg.LogLevel, logOut); err != nil {
		console.Error("Configuring logger failed", "error", err.Error())
		os.Exit(1)
	}

	model, err := tui.New(cfg)
	if err != nil {
		console.Error("Mounting counter failed", "error", err.Error())
		os.Exit(1)
	}

	if _, err := tea.NewProgram(model).Run(); err != nil {
		console.Error("Terminal UI failed", "error", err.Error())
		os.Exit(1)
	}
}
