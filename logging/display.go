package logging

import (
	"devcalc/report"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// DisableColor turns off all colors and styles in the output.
func DisableColor() {
	pterm.DisableColor()
}

// PrintErrorMessage prints a standard Go error to the console
func PrintErrorMessage(tag string, err error) {
	fmt.Fprintln(Output(), ErrorStyleBG.Sprint(tag)+" "+ErrorColorFG.Sprint(err.Error()))
}

// PrintWarningMessage prints a warning message to the console
func PrintWarningMessage(tag, msg string) {
	fmt.Fprintln(Output(), WarnStyleBG.Sprint(tag)+" "+WarnColorFG.Sprint(msg))
}

// PrintInfoMessage prints an informational message to the user
func PrintInfoMessage(tag, msg string) {
	fmt.Fprintln(Output(), InfoStyleBG.Sprint(tag)+" "+InfoColorFG.Sprint(msg))
}

// -----------------------------------------------------------------------------

// LogMessage is a message that can be handled by the logger.
type LogMessage interface {
	display(w io.Writer)
	isError() bool
}

// CalcMessage is an error or warning about a single input.
type CalcMessage struct {
	Input   string
	Title   string
	Message string

	// Span is the part of the input the message is about.  It may be nil.
	Span *report.TextSpan

	IsError bool
}

func (cm *CalcMessage) isError() bool {
	return cm.IsError
}

// ConfigError is an error in the configuration.
type ConfigError struct {
	Kind    string
	Message string
}

func (ce *ConfigError) isError() bool {
	return true
}

// StdError is a standard Go error.
type StdError struct {
	Tag string
	Err error
}

func (se *StdError) isError() bool {
	return true
}

// -----------------------------------------------------------------------------
// This section contains all the display functions for the different kinds of
// messages that can be logged.

func (ce *ConfigError) display(w io.Writer) {
	fmt.Fprintln(w, ErrorStyleBG.Sprint(ce.Kind+" Error")+" "+ErrorColorFG.Sprint(ce.Message))
}

func (se *StdError) display(w io.Writer) {
	fmt.Fprintln(w, ErrorStyleBG.Sprint(se.Tag)+" "+ErrorColorFG.Sprint(se.Err.Error()))
}

func (cm *CalcMessage) display(w io.Writer) {
	cm.displayBanner(w)
	fmt.Fprintln(w, cm.Message)

	if cm.Span != nil {
		cm.displayInputSelection(w)
	}
}

// bannerLen is the width of the banner above calculator messages.
const bannerLen = 40

// displayBanner displays the banner on top of all calculator messages
func (cm *CalcMessage) displayBanner(w io.Writer) {
	var label string
	if cm.isError() {
		label = ErrorStyleBG.Sprint(cm.Title + " Error")
	} else {
		label = WarnStyleBG.Sprint(cm.Title + " Warning")
	}

	// the style codes do not take up any columns so the dash count is based on
	// the plain text length
	textLen := len(cm.Title) + len(" Warning")
	if cm.isError() {
		textLen = len(cm.Title) + len(" Error")
	}

	dashCount := bannerLen - textLen
	if dashCount < 3 {
		dashCount = 3
	}

	fmt.Fprintln(w, "-- "+label+" "+strings.Repeat("-", dashCount))
}

// displayInputSelection displays the input and highlights the span the
// message is about with carets
func (cm *CalcMessage) displayInputSelection(w io.Writer) {
	line := []rune(cm.Input)

	startCol, endCol := cm.Span.StartCol, cm.Span.EndCol
	if startCol > len(line) {
		startCol = len(line)
	}
	if endCol > len(line) {
		endCol = len(line)
	}

	// a span at the end of the input (eg. an unexpected end) still gets one
	// caret
	caretCount := endCol - startCol
	if caretCount < 1 {
		caretCount = 1
	}

	// tabs are expanded so the carets line up; everything before the start
	// column counts towards the caret offset
	prefix := strings.ReplaceAll(string(line[:startCol]), "\t", "    ")

	fmt.Fprintln(w, InfoColorFG.Sprint("  | ")+strings.ReplaceAll(cm.Input, "\t", "    "))
	fmt.Fprintln(w, InfoColorFG.Sprint("  | ")+strings.Repeat(" ", len([]rune(prefix)))+ErrorColorFG.Sprint(strings.Repeat("^", caretCount)))
}
