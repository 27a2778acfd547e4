//go:build !(js && wasm)

package console

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func defaultWriter() io.Writer {
	return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
}
