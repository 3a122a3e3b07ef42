package cmd

import (
	"devcalc/calc"
	"devcalc/config"
	"devcalc/logging"
	"devcalc/numeric"
	"devcalc/report"
	"devcalc/result"
	"devcalc/syntax"
	"io"

	"github.com/rs/zerolog"
)

// session holds everything needed to evaluate and display input according to
// the effective configuration.
type session struct {
	cfg   *config.Config
	out   io.Writer
	opts  logging.RenderOptions
	trace zerolog.Logger
}

// newSession creates a new session that displays results to out and trace
// logs to traceOut.
func newSession(cfg *config.Config, out, traceOut io.Writer) *session {
	return &session{
		cfg:   cfg,
		out:   out,
		opts:  logging.RenderOptions{Format: cfg.Format, Prefix: cfg.Prefix},
		trace: logging.NewTraceLogger(traceOut, cfg.LogLevel),
	}
}

// evaluate evaluates an expression and displays the outcome.  It returns
// whether evaluation succeeded.
func (s *session) evaluate(input string) bool {
	s.traceTokens(input)

	v, err := calc.EvaluateValue(input)
	return s.show(input, v, err)
}

// decode decodes a single literal and displays the outcome.  It returns
// whether decoding succeeded.
func (s *session) decode(input string) bool {
	v, err := calc.DecodeValue(input)
	return s.show(input, v, err)
}

// show displays the outcome of evaluating input.
func (s *session) show(input string, v numeric.Value, err error) bool {
	if err != nil {
		e := s.trace.Debug().Str("input", input)
		if kind, ok := report.KindOf(err); ok {
			e = e.Stringer("kind", kind)
		}
		e.Err(err).Msg("evaluation failed")

		logging.LogCalcError(input, err)
		return false
	}

	res := result.Format(v)
	s.trace.Debug().
		Str("input", input).
		Bool("exact", v.IsExact()).
		Str("decimal", res.Decimal).
		Msg("evaluated")

	if outOfRange(v, res) {
		logging.LogCalcWarning(input, "Range", rangeWarning)
	}

	if logging.ShouldDisplay() {
		if err := logging.RenderResult(s.out, res, s.opts); err != nil {
			logging.LogStdError("Output Error", err)
			return false
		}
	}

	return true
}

// rangeWarning is displayed for exact integers too large for the non-decimal
// bases.
const rangeWarning = "value exceeds 2^53-1: only the decimal form is shown"

// outOfRange reports whether an exact integer lost its non-decimal forms.
func outOfRange(v numeric.Value, res result.CalculatorResult) bool {
	return v.IsExact() && !res.IsInteger
}

// traceTokens logs the token stream of an expression when tracing is enabled.
func (s *session) traceTokens(input string) {
	e := s.trace.Debug()
	if !e.Enabled() {
		return
	}

	toks, err := syntax.Tokenize(input)
	if err != nil {
		e.Str("input", input).Err(err).Msg("tokenize failed")
		return
	}

	names := make([]string, len(toks))
	for i, tok := range toks {
		names[i] = tok.String()
	}

	e.Str("input", input).Strs("tokens", names).Msg("tokenized")
}
