// Package console is the logging facade used by the runtime and the apps.
// In the browser it writes to window.console; in native builds it writes
// human-readable lines to stderr.
package console

import (
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var logger = newLogger(defaultWriter(), zerolog.InfoLevel)

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Configure replaces the package logger. An empty level keeps "info"; a nil
// writer selects the platform default.
func Configure(level string, w io.Writer) error {
	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return errors.Wrapf(err, "log level %q", level)
		}
		lvl = parsed
	}
	if w == nil {
		w = defaultWriter()
	}
	logger = newLogger(w, lvl)
	return nil
}

// Debug logs msg at debug level. Fields are alternating key/value pairs.
func Debug(msg string, fields ...any) {
	write(logger.Debug(), msg, fields)
}

// Log logs msg at info level.
func Log(msg string, fields ...any) {
	write(logger.Info(), msg, fields)
}

// Warn logs msg at warn level.
func Warn(msg string, fields ...any) {
	write(logger.Warn(), msg, fields)
}

// Error logs msg at error level.
func Error(msg string, fields ...any) {
	write(logger.Error(), msg, fields)
}

func write(e *zerolog.Event, msg string, fields []any) {
	if len(fields) > 0 {
		e = e.Fields(fields)
	}
	e.Msg(msg)
}
