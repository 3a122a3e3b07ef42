package syntax

import (
	"devcalc/numeric"
	"devcalc/report"
	"errors"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser evaluates a token sequence produced by the lexer.  It is a recursive
// descent parser that computes values as it parses instead of building a
// tree.  All parsing functions assume that they begin with the parser centered
// on the first token of their production and must consume all tokens of their
// production, leaving the parser on the next token.  Parsers are created once
// per expression.
type Parser struct {
	// toks is the token sequence being parsed.  It always ends with END.
	toks []*Token

	// ndx is the index of the current token.
	ndx int

	// tok is the current token the parser is positioned on.
	tok *Token
}

// operand is a value together with the span of input that produced it.
type operand struct {
	val  numeric.Value
	span *report.TextSpan
}

// NewParser creates a new parser for the given tokens.
func NewParser(toks []*Token) *Parser {
	if len(toks) == 0 || toks[len(toks)-1].Kind != END {
		endCol := 0
		if len(toks) > 0 {
			endCol = toks[len(toks)-1].Span.EndCol
		}

		toks = append(toks[:len(toks):len(toks)], &Token{
			Kind: END,
			Span: &report.TextSpan{StartCol: endCol, EndCol: endCol},
		})
	}

	return &Parser{toks: toks, tok: toks[0]}
}

// Parse evaluates a token sequence to a single value.
func Parse(toks []*Token) (numeric.Value, error) {
	return NewParser(toks).Parse()
}

// Parse evaluates the parser's tokens.  The whole sequence must form one
// expression.
func (p *Parser) Parse() (numeric.Value, error) {
	result, err := p.parseExpr()
	if err != nil {
		return numeric.Value{}, err
	}

	if !p.got(END) {
		return numeric.Value{}, p.reject()
	}

	return result.val, nil
}

// -----------------------------------------------------------------------------

// expr = bitor
func (p *Parser) parseExpr() (operand, error) {
	return p.parseBinOpExpr(0)
}

// precTable is the operator precedence table for binary operators.  The table
// is ordered lowest to highest precedence.
var precTable = [][]int{
	{PIPE},
	{CARET},
	{AMP},
	{SHL, SHR},
	{PLUS, MINUS},
	{STAR, SLASH, PERCENT},
}

// bitor = bitxor {'|' bitxor}
// bitxor = bitand {'^' bitand}
// bitand = shift {'&' shift}
// shift = additive {('<<' | '>>') additive}
// additive = term {('+' | '-') term}
// term = unary {('*' | '/' | '%') unary}
func (p *Parser) parseBinOpExpr(prec int) (operand, error) {
	if prec == len(precTable) {
		return p.parseUnaryExpr()
	}

	lhs, err := p.parseBinOpExpr(prec + 1)
	if err != nil {
		return operand{}, err
	}

	for p.gotOneOf(precTable[prec]...) {
		op := p.tok
		p.next()

		rhs, err := p.parseBinOpExpr(prec + 1)
		if err != nil {
			return operand{}, err
		}

		if lhs, err = applyBinaryOp(op, lhs, rhs); err != nil {
			return operand{}, err
		}
	}

	return lhs, nil
}

// applyBinaryOp applies a binary operator to its operands.
func applyBinaryOp(op *Token, lhs, rhs operand) (operand, error) {
	var val numeric.Value
	var err error

	switch op.Kind {
	case PLUS:
		val = numeric.Add(lhs.val, rhs.val)
	case MINUS:
		val = numeric.Sub(lhs.val, rhs.val)
	case STAR:
		val = numeric.Mul(lhs.val, rhs.val)
	case SLASH:
		val, err = numeric.Div(lhs.val, rhs.val)
	case PERCENT:
		val, err = numeric.Mod(lhs.val, rhs.val)
	case AMP:
		val, err = numeric.And(lhs.val, rhs.val)
	case PIPE:
		val, err = numeric.Or(lhs.val, rhs.val)
	case CARET:
		val, err = numeric.Xor(lhs.val, rhs.val)
	case SHL:
		val, err = numeric.Shl(lhs.val, rhs.val)
	case SHR:
		val, err = numeric.Shr(lhs.val, rhs.val)
	}

	if err != nil {
		// Blame the operand that caused the failure.
		blame := rhs
		if errors.Is(err, numeric.ErrNonInteger) && !lhs.val.IsExact() {
			blame = lhs
		}

		return operand{}, raiseOperatorError(err, blame.span)
	}

	return operand{val: val, span: report.NewSpanOver(lhs.span, rhs.span)}, nil
}

// raiseOperatorError converts an error returned by a numeric operator into a
// calculator error over the given span.
func raiseOperatorError(err error, span *report.TextSpan) error {
	switch {
	case errors.Is(err, numeric.ErrDivisionByZero):
		return report.Raise(report.DivisionByZero, span, "Division by zero")
	case errors.Is(err, numeric.ErrModuloByZero):
		return report.Raise(report.ModuloByZero, span, "Modulo by zero")
	case errors.Is(err, numeric.ErrNonInteger):
		return report.Raise(report.NonIntegerBitwiseOperand, span, "Bitwise operators require integer operands")
	case errors.Is(err, numeric.ErrShiftRange):
		return report.Raise(report.ShiftOutOfRange, span, "Shift count out of range")
	}

	return err
}

// -----------------------------------------------------------------------------

// unary = ('+' | '-' | '~') unary | primary
func (p *Parser) parseUnaryExpr() (operand, error) {
	if !p.gotOneOf(PLUS, MINUS, TILDE) {
		return p.parsePrimary()
	}

	op := p.tok
	p.next()

	x, err := p.parseUnaryExpr()
	if err != nil {
		return operand{}, err
	}

	val := x.val
	switch op.Kind {
	case MINUS:
		val = numeric.Neg(x.val)
	case TILDE:
		if val, err = numeric.Not(x.val); err != nil {
			return operand{}, raiseOperatorError(err, x.span)
		}
	}

	return operand{val: val, span: report.NewSpanOver(op.Span, x.span)}, nil
}

// primary = NUMBER | '(' bitor ')'
func (p *Parser) parsePrimary() (operand, error) {
	startTok := p.tok

	switch p.tok.Kind {
	case NUMBER:
		p.next()

		val, err := numeric.Decode(startTok.Value)
		if err != nil {
			return operand{}, report.Raise(report.InvalidNumber, startTok.Span, "Invalid number: %s", startTok.Value)
		}

		return operand{val: val, span: startTok.Span}, nil
	case LPAREN:
		p.next()

		inner, err := p.parseExpr()
		if err != nil {
			return operand{}, err
		}

		if !p.got(RPAREN) {
			return operand{}, report.Raise(report.UnmatchedParenthesis, startTok.Span, "Expected closing parenthesis")
		}

		endTok := p.tok
		p.next()

		return operand{val: inner.val, span: report.NewSpanOver(startTok.Span, endTok.Span)}, nil
	}

	return operand{}, p.reject()
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.  The parser never moves past the
// END token.
func (p *Parser) next() {
	if p.ndx < len(p.toks)-1 {
		p.ndx++
		p.tok = p.toks[p.ndx]
	}
}

// got returns true if the parser is on a token of a given kind.
func (p *Parser) got(kind int) bool {
	return p.tok.Kind == kind
}

// gotOneOf returns if the parser's current token kind is one of given kinds.
func (p *Parser) gotOneOf(kinds ...int) bool {
	for _, kind := range kinds {
		if p.tok.Kind == kind {
			return true
		}
	}

	return false
}

// reject returns an unexpected token error on the current token.
func (p *Parser) reject() error {
	if p.got(END) {
		return report.Raise(report.UnexpectedToken, p.tok.Span, "Unexpected end of expression")
	}

	return report.Raise(report.UnexpectedToken, p.tok.Span, "Unexpected token: %s", p.tok.Value)
}
