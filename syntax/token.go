package syntax

import "devcalc/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The source text of the token.  For numbers, this includes any base
	// prefix exactly as it was written.
	Value string

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	NUMBER = iota

	PLUS
	MINUS
	STAR
	SLASH
	PERCENT

	AMP
	PIPE
	CARET
	TILDE
	SHL
	SHR

	LPAREN
	RPAREN

	END
)

// tokenNames maps token kinds to their display names.
var tokenNames = map[int]string{
	NUMBER:  "NUMBER",
	PLUS:    "PLUS",
	MINUS:   "MINUS",
	STAR:    "STAR",
	SLASH:   "SLASH",
	PERCENT: "PERCENT",
	AMP:     "AMP",
	PIPE:    "PIPE",
	CARET:   "CARET",
	TILDE:   "TILDE",
	SHL:     "SHL",
	SHR:     "SHR",
	LPAREN:  "LPAREN",
	RPAREN:  "RPAREN",
	END:     "END",
}

// KindName returns the display name of a token kind.
func KindName(kind int) string {
	if name, ok := tokenNames[kind]; ok {
		return name
	}

	return "UNKNOWN"
}

func (t *Token) String() string {
	if t.Kind == NUMBER {
		return "NUMBER(" + t.Value + ")"
	}

	return KindName(t.Kind)
}
