package report

import (
	"errors"
	"fmt"
)

// TextSpan represents a range or "span" of input text.  It is used to point at
// the erroneous part of an expression.  Expressions are always a single line
// so only columns are tracked: the start column is the position of the first
// character in the span and the end column is one past the last character.
// Columns are zero-indexed rune offsets.
type TextSpan struct {
	StartCol, EndCol int
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartCol: start.StartCol,
		EndCol:   end.EndCol,
	}
}

// -----------------------------------------------------------------------------

// ErrorKind classifies a calculator error.
type ErrorKind int

// Enumeration of error kinds.
const (
	EmptyExpression ErrorKind = iota
	UnexpectedCharacter
	InvalidLiteral
	InvalidNumber
	UnexpectedToken
	UnmatchedParenthesis
	DivisionByZero
	ModuloByZero
	NonIntegerBitwiseOperand
	ShiftOutOfRange
)

var errorKindNames = map[ErrorKind]string{
	EmptyExpression:          "Empty Expression",
	UnexpectedCharacter:      "Unexpected Character",
	InvalidLiteral:           "Invalid Literal",
	InvalidNumber:            "Invalid Number",
	UnexpectedToken:          "Unexpected Token",
	UnmatchedParenthesis:     "Unmatched Parenthesis",
	DivisionByZero:           "Division By Zero",
	ModuloByZero:             "Modulo By Zero",
	NonIntegerBitwiseOperand: "Non-Integer Operand",
	ShiftOutOfRange:          "Shift Out Of Range",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// -----------------------------------------------------------------------------

// CalculatorError is an error produced while evaluating or decoding input.  It
// is never mutated after it is raised.
type CalculatorError struct {
	// The kind of the error.
	Kind ErrorKind

	// The error message.
	Message string

	// Base is the name of the numeric base of a malformed literal.  It is only
	// set for InvalidLiteral errors.
	Base string

	// The span over which the error occurs.  This may be nil if the error does
	// not correspond to any particular part of the input.
	Span *TextSpan
}

func (ce *CalculatorError) Error() string {
	return ce.Message
}

// Raise creates a new calculator error.
func Raise(kind ErrorKind, span *TextSpan, msg string, args ...interface{}) *CalculatorError {
	return &CalculatorError{Kind: kind, Message: fmt.Sprintf(msg, args...), Span: span}
}

// RaiseInvalidLiteral creates a new InvalidLiteral error for a literal of the
// named base.
func RaiseInvalidLiteral(base string, span *TextSpan) *CalculatorError {
	return &CalculatorError{
		Kind:    InvalidLiteral,
		Message: fmt.Sprintf("Invalid %s number", base),
		Base:    base,
		Span:    span,
	}
}

// KindOf returns the kind of the calculator error wrapped by err.
func KindOf(err error) (ErrorKind, bool) {
	var ce *CalculatorError
	if errors.As(err, &ce) {
		return ce.Kind, true
	}

	return 0, false
}
