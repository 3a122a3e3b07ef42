package logging

import (
	"devcalc/report"
	"errors"
	"io"
)

// Initialize initializes the global logger with the provided output and log
// level.  Invalid log level names default to verbose.
func Initialize(out io.Writer, loglevelname string) {
	loglevel, ok := logLevelNames[loglevelname]
	if !ok {
		loglevel = LogLevelVerbose
	}

	logger = newLogger(out, loglevel)
}

// ShouldProceed indicates whether or not the logger has encountered any
// errors.
func ShouldProceed() bool {
	logger.m.Lock()
	defer logger.m.Unlock()

	return logger.errorCount == 0
}

// ShouldDisplay reports whether regular output (results) should be displayed
// at the current log level.
func ShouldDisplay() bool {
	return logger.LogLevel > LogLevelSilent
}

// Output returns the writer the global logger displays to.
func Output() io.Writer {
	return logger.out
}

// -----------------------------------------------------------------------------
// NOTE: All log functions will only display if the appropriate log level is
// set.

// LogCalcError logs an error that occurred while evaluating the input.  Errors
// that are not calculator errors are logged as standard errors.
func LogCalcError(input string, err error) {
	var cerr *report.CalculatorError
	if errors.As(err, &cerr) {
		logger.handleMsg(&CalcMessage{
			Input:   input,
			Title:   cerr.Kind.String(),
			Message: cerr.Message,
			Span:    cerr.Span,
			IsError: true,
		})
	} else {
		logger.handleMsg(&StdError{Tag: "Error", Err: err})
	}
}

// LogCalcWarning logs a warning about an input which was evaluated
// successfully.  The title names the kind of warning: eg. "Range".
func LogCalcWarning(input, title, message string) {
	logger.handleMsg(&CalcMessage{Input: input, Title: title, Message: message})
}

// LogConfigError logs an error related to the configuration
func LogConfigError(kind, message string) {
	logger.handleMsg(&ConfigError{Kind: kind, Message: message})
}

// LogStdError logs a standard Go error under the given tag.
func LogStdError(tag string, err error) {
	logger.handleMsg(&StdError{Tag: tag, Err: err})
}
