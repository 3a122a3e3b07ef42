package syntax

import (
	"devcalc/numeric"
	"devcalc/report"
	"strings"
	"unicode"
)

// Lexer is responsible for tokenizing an expression.
type Lexer struct {
	src []rune

	// pos is the index of the next rune to be read.
	pos int

	// start is the index of the first rune of the token being lexed.
	start int
}

// NewLexer creates a new lexer for the given expression text.
func NewLexer(text string) *Lexer {
	return &Lexer{src: []rune(text)}
}

// Tokenize converts an expression into its tokens.  The returned sequence is
// always terminated by an END token.
func Tokenize(text string) ([]*Token, error) {
	l := NewLexer(text)

	var toks []*Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)
		if tok.Kind == END {
			return toks, nil
		}
	}
}

// NextToken retrieves the next token from the input.  If the input has ended,
// this will be an END token.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c, ok := l.peek()
		if !ok {
			break
		}

		switch {
		case unicode.IsSpace(c):
			l.skip()
		case isDecimalDigit(c):
			return l.lexNumericLit()
		case isLetter(c):
			return l.lexWordOper()
		default:
			return l.lexPunctOrOper()
		}
	}

	l.mark()
	return l.makeToken(END), nil
}

// -----------------------------------------------------------------------------

// symbolPatterns maps symbol strings (patterns) to their punctuation/operator
// token kind.  `<` and `>` only exist doubled.
var symbolPatterns = map[string]int{
	"+": PLUS,
	"-": MINUS,
	"*": STAR,
	"/": SLASH,
	"%": PERCENT,

	"&":  AMP,
	"|":  PIPE,
	"^":  CARET,
	"~":  TILDE,
	"<<": SHL,
	">>": SHR,

	"(": LPAREN,
	")": RPAREN,
}

// lexPunctOrOper lexes a punctuation or operator symbol.
func (l *Lexer) lexPunctOrOper() (*Token, error) {
	l.mark()
	c := l.eat()

	if next, ok := l.peek(); ok {
		if kind, ok := symbolPatterns[string([]rune{c, next})]; ok {
			l.eat()
			return l.makeToken(kind), nil
		}
	}

	kind, ok := symbolPatterns[string(c)]
	if !ok {
		return nil, report.Raise(report.UnexpectedCharacter, l.getSpan(), "Unexpected character: %c", c)
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// wordOperators maps the uppercased spelling of each word operator to the
// token kind of its symbolic equivalent.
var wordOperators = map[string]int{
	"AND": AMP,
	"OR":  PIPE,
	"XOR": CARET,
	"NOT": TILDE,
	"SHL": SHL,
	"SHR": SHR,
}

// lexWordOper lexes a word operator such as `xor`.  The whole run of letters
// must spell an operator.
func (l *Lexer) lexWordOper() (*Token, error) {
	l.mark()
	first := l.eat()

	for {
		c, ok := l.peek()
		if !ok || !isLetter(c) {
			break
		}

		l.eat()
	}

	kind, ok := wordOperators[strings.ToUpper(l.text())]
	if !ok {
		return nil, report.Raise(report.UnexpectedCharacter, l.getSpan(), "Unexpected character: %c", first)
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// lexNumericLit lexes a numeric literal: a prefixed integer or a decimal
// integer or real.
func (l *Lexer) lexNumericLit() (*Token, error) {
	l.mark()
	c := l.eat()

	// Determine the base of the literal.
	if c == '0' {
		if next, ok := l.peek(); ok {
			if base, ok := numeric.PrefixBase(next); ok {
				l.eat()

				if l.eatWhile(base.IsDigit) == 0 {
					return nil, report.RaiseInvalidLiteral(base.Name, l.getSpan())
				}

				return l.makeToken(NUMBER), nil
			}
		}
	}

	// Decimal literals allow at most one decimal point.
	l.eatWhile(isDecimalDigit)
	if next, ok := l.peek(); ok && next == '.' {
		l.eat()
		l.eatWhile(isDecimalDigit)
	}

	return l.makeToken(NUMBER), nil
}

// -----------------------------------------------------------------------------

// peek returns the next rune without consuming it.
func (l *Lexer) peek() (rune, bool) {
	if l.pos < len(l.src) {
		return l.src[l.pos], true
	}

	return 0, false
}

// eat consumes the next rune and returns it.  It must only be called when
// there is a rune to consume.
func (l *Lexer) eat() rune {
	c := l.src[l.pos]
	l.pos++
	return c
}

// skip consumes the next rune without including it in any token.
func (l *Lexer) skip() {
	l.pos++
}

// eatWhile consumes runes as long as they satisfy pred and returns how many
// were consumed.
func (l *Lexer) eatWhile(pred func(rune) bool) int {
	n := 0
	for {
		c, ok := l.peek()
		if !ok || !pred(c) {
			return n
		}

		l.eat()
		n++
	}
}

// mark marks the beginning of a token.
func (l *Lexer) mark() {
	l.start = l.pos
}

// text returns the text of the token being lexed.
func (l *Lexer) text() string {
	return string(l.src[l.start:l.pos])
}

// getSpan returns the span of the token being lexed.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{StartCol: l.start, EndCol: l.pos}
}

// makeToken creates a new token of the given kind from the marked text.
func (l *Lexer) makeToken(kind int) *Token {
	return &Token{Kind: kind, Value: l.text(), Span: l.getSpan()}
}

// -----------------------------------------------------------------------------

// isDecimalDigit reports whether c is an ASCII decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isLetter reports whether c is an ASCII letter.
func isLetter(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
