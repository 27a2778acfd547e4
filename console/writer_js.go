//go:build js && wasm

package console

import (
	"io"
	"syscall/js"

	"github.com/rs/zerolog"
)

// browserWriter forwards each log line to the matching window.console method.
type browserWriter struct{}

func defaultWriter() io.Writer {
	return browserWriter{}
}

func (w browserWriter) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.InfoLevel, p)
}

func (browserWriter) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	method := "log"
	switch {
	case l <= zerolog.DebugLevel:
		method = "debug"
	case l == zerolog.WarnLevel:
		method = "warn"
	case l >= zerolog.ErrorLevel && l != zerolog.NoLevel:
		method = "error"
	}
	js.Global().Get("console").Call(method, string(p))
	return len(p), nil
}
