package logging

import (
	"io"
	"os"
	"sync"
)

// Logger is a type that is responsible for displaying diagnostics from the
// calculator as necessary.
type Logger struct {
	errorCount int // Total encountered errors
	LogLevel   int

	// out is where all messages are written.
	out io.Writer

	// m is the mutex used to synchonize the printing of messages
	m *sync.Mutex
}

// Enumeration of the different log levels
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // results and errors
	LogLevelWarning        // results, errors, and warnings
	LogLevelVerbose        // everything (DEFAULT)
)

// logLevelNames maps the names accepted on the command line and in the
// configuration file to log levels.  `debug` is verbose plus trace logging.
var logLevelNames = map[string]int{
	"silent":  LogLevelSilent,
	"error":   LogLevelError,
	"warn":    LogLevelWarning,
	"verbose": LogLevelVerbose,
	"debug":   LogLevelVerbose,
}

// IsLogLevel reports whether name names a log level.
func IsLogLevel(name string) bool {
	_, ok := logLevelNames[name]
	return ok
}

// newLogger creates a new logger struct
func newLogger(out io.Writer, loglevel int) *Logger {
	return &Logger{
		out:      out,
		LogLevel: loglevel,
		m:        &sync.Mutex{},
	}
}

// handleMsg prompts the logger to process a message.  Messages can come in
// concurrently (eg. from batch workers) so the mutex keeps them from being
// interleaved
func (l *Logger) handleMsg(lm LogMessage) {
	l.m.Lock()
	defer l.m.Unlock()

	if lm.isError() {
		l.errorCount++

		if l.LogLevel > LogLevelSilent {
			lm.display(l.out)
		}
	} else if l.LogLevel >= LogLevelWarning {
		lm.display(l.out)
	}
}

// logger is a global reference to a shared Logger
var logger = newLogger(os.Stdout, LogLevelVerbose)
