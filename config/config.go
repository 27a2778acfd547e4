// Package config loads the counter widget settings: built-in defaults, then
// an optional YAML file, then COUNTER_* environment variables.
package config

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const envPrefix = "COUNTER_"

// Labels are the user-visible strings of the widget.
type Labels struct {
	Title     string `yaml:"title" env:"TITLE"`
	Display   string `yaml:"display" env:"DISPLAY"`
	Error     string `yaml:"error" env:"ERROR"`
	Increment string `yaml:"increment" env:"INCREMENT"`
	Decrement string `yaml:"decrement" env:"DECREMENT"`
}

// Config is the full widget configuration.
type Config struct {
	MountID  string `yaml:"mount_id" env:"MOUNT_ID"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	Dev      bool   `yaml:"dev" env:"DEV"`
	Labels   Labels `yaml:"labels" envPrefix:"LABEL_"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MountID:  "#app",
		LogLevel: "info",
		Labels: Labels{
			Title:     "Counter",
			Display:   "The counter is currently:",
			Error:     "You can't decrement below 0",
			Increment: "Increment counter",
			Decrement: "Decrement counter",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the process environment.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, environ())
}

// LoadWithEnv is Load with an explicit environment, keyed without prefix
// handling (e.g. "COUNTER_MOUNT_ID").
func LoadWithEnv(path string, environment map[string]string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parse config %s", path)
		}
	}

	opts := env.Options{Prefix: envPrefix, Environment: environment}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var levels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true,
	"error": true, "fatal": true, "panic": true, "disabled": true,
}

// Validate checks the fields that have no usable zero value.
func (c Config) Validate() error {
	if strings.TrimSpace(c.MountID) == "" {
		return errors.New("mount_id must not be empty")
	}
	if !levels[strings.ToLower(c.LogLevel)] {
		return errors.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

func environ() map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, envPrefix) {
			out[k] = v
		}
	}
	return out
}
