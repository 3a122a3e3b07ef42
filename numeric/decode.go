package numeric

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned when literal text cannot be decoded.
var ErrInvalidNumber = errors.New("invalid number")

// Base describes a numeric base that can be selected with a literal prefix.
type Base struct {
	// Name is the human readable name of the base: eg. "hexadecimal".
	Name string

	// Radix is the numeric radix of the base.
	Radix int
}

// Enumeration of the prefixed bases.
var (
	Hexadecimal = Base{Name: "hexadecimal", Radix: 16}
	Binary      = Base{Name: "binary", Radix: 2}
	Octal       = Base{Name: "octal", Radix: 8}
)

// prefixBases maps the lowercased letter following a leading `0` to the base it
// selects.
var prefixBases = map[rune]Base{
	'x': Hexadecimal,
	'b': Binary,
	'o': Octal,
}

// PrefixBase returns the base selected by the prefix letter c (case
// insensitive).
func PrefixBase(c rune) (Base, bool) {
	if 'A' <= c && c <= 'Z' {
		c += 'a' - 'A'
	}

	b, ok := prefixBases[c]
	return b, ok
}

// IsDigit reports whether c is a digit in the base.
func (b Base) IsDigit(c rune) bool {
	return digitValue(c) < b.Radix
}

// digitValue returns the value of a hexadecimal digit or 36 for anything else.
func digitValue(c rune) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}

	return 36
}

// -----------------------------------------------------------------------------

// Decode decodes the text of a numeric literal.  A `0x`, `0b` or `0o` prefix
// (either case) selects base 16, 2 or 8 and always yields an exact integer.
// Unprefixed text containing a `.` is a real; anything else is a decimal
// integer.  Signs are not part of literals.
func Decode(text string) (Value, error) {
	if len(text) >= 2 && text[0] == '0' {
		if base, ok := PrefixBase(rune(text[1])); ok {
			return decodeInt(text[2:], base.Radix)
		}
	}

	if strings.ContainsRune(text, '.') {
		return decodeReal(text)
	}

	return decodeInt(text, 10)
}

// decodeInt decodes the digits of an exact integer in the given radix.
func decodeInt(digits string, radix int) (Value, error) {
	if digits == "" {
		return Value{}, ErrInvalidNumber
	}

	// big.Int accepts signs and underscores in some cases so the digits are
	// checked up front.
	for _, c := range digits {
		if digitValue(c) >= radix {
			return Value{}, ErrInvalidNumber
		}
	}

	n, ok := new(big.Int).SetString(digits, radix)
	if !ok {
		return Value{}, ErrInvalidNumber
	}

	return Value{exact: n}, nil
}

// decodeReal decodes a decimal real of the form `digits.digits`.  Either side
// of the point may be empty but not both.
func decodeReal(text string) (Value, error) {
	sawPoint, sawDigit := false, false
	for _, c := range text {
		switch {
		case c == '.' && !sawPoint:
			sawPoint = true
		case '0' <= c && c <= '9':
			sawDigit = true
		default:
			return Value{}, ErrInvalidNumber
		}
	}

	if !sawDigit {
		return Value{}, ErrInvalidNumber
	}

	// Overlong literals saturate to infinity like any double parse.
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Value{}, ErrInvalidNumber
	}

	return Inexact(f), nil
}
