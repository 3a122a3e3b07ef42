// Package calc exposes the evaluation engine: full expression evaluation and
// single literal decoding.  Both entry points are pure functions of their
// input and are safe to call from multiple goroutines.
package calc

import (
	"devcalc/numeric"
	"devcalc/report"
	"devcalc/result"
	"devcalc/syntax"
	"strings"
	"unicode/utf8"
)

// Evaluate evaluates an expression and renders its value in all bases.
func Evaluate(text string) (result.CalculatorResult, error) {
	v, err := EvaluateValue(text)
	if err != nil {
		return result.CalculatorResult{}, err
	}

	return result.Format(v), nil
}

// EvaluateValue evaluates an expression to its numeric value.
func EvaluateValue(text string) (numeric.Value, error) {
	if strings.TrimSpace(text) == "" {
		return numeric.Value{}, report.Raise(report.EmptyExpression, nil, "Empty expression")
	}

	toks, err := syntax.Tokenize(text)
	if err != nil {
		return numeric.Value{}, err
	}

	return syntax.Parse(toks)
}

// Decode decodes a single literal and renders it in all bases.  The literal may
// be preceded by a sign so that rendered values can be decoded again:
// `-0x10` decodes to -16.  Surrounding whitespace is ignored.
func Decode(text string) (result.CalculatorResult, error) {
	v, err := DecodeValue(text)
	if err != nil {
		return result.CalculatorResult{}, err
	}

	return result.Format(v), nil
}

// DecodeValue decodes a single, optionally signed, literal.
func DecodeValue(text string) (numeric.Value, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return numeric.Value{}, report.Raise(report.EmptyExpression, nil, "Empty input")
	}

	// Spans are relative to the untrimmed text.
	startCol := utf8.RuneCountInString(text[:strings.Index(text, trimmed)])
	span := &report.TextSpan{StartCol: startCol, EndCol: startCol + utf8.RuneCountInString(trimmed)}

	negative := false
	literal := trimmed
	switch literal[0] {
	case '-':
		negative, literal = true, literal[1:]
	case '+':
		literal = literal[1:]
	}

	v, err := numeric.Decode(literal)
	if err != nil {
		return numeric.Value{}, report.Raise(report.InvalidNumber, span, "Invalid number")
	}

	if negative {
		v = numeric.Neg(v)
	}

	return v, nil
}
