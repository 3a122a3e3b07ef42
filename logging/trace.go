package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// NewTraceLogger creates the trace logger used to follow evaluation step by
// step.  Tracing is only enabled at the `debug` log level; at every other
// level the returned logger discards everything.
func NewTraceLogger(w io.Writer, loglevelname string) zerolog.Logger {
	if loglevelname != "debug" {
		return zerolog.Nop()
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Str("component", "devcalc").Logger()
}
