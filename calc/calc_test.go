package calc

import (
	"devcalc/numeric"
	"devcalc/report"
	"devcalc/result"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireKind(t *testing.T, err error, kind report.ErrorKind) *report.CalculatorError {
	t.Helper()

	var cerr *report.CalculatorError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, kind, cerr.Kind, "error: %s", cerr.Message)
	return cerr
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		text string
		want result.CalculatorResult
	}{
		{"0xFF", result.CalculatorResult{Decimal: "255", Hex: "0xFF", Octal: "0o377", Binary: "0b11111111", IsInteger: true}},
		{"0b1010", result.CalculatorResult{Decimal: "10", Hex: "0xA", Octal: "0o12", Binary: "0b1010", IsInteger: true}},
		{"0o777", result.CalculatorResult{Decimal: "511", Hex: "0x1FF", Octal: "0o777", Binary: "0b111111111", IsInteger: true}},
		{"0xFF & 0x0F", result.CalculatorResult{Decimal: "15", Hex: "0xF", Octal: "0o17", Binary: "0b1111", IsInteger: true}},
		{"2 + 2 * 3", result.CalculatorResult{Decimal: "8", Hex: "0x8", Octal: "0o10", Binary: "0b1000", IsInteger: true}},
		{"1 << 4", result.CalculatorResult{Decimal: "16", Hex: "0x10", Octal: "0o20", Binary: "0b10000", IsInteger: true}},
		{"~0", result.CalculatorResult{Decimal: "-1", Hex: "-0x1", Octal: "-0o1", Binary: "-0b1", IsInteger: true}},
		{"10 - 26", result.CalculatorResult{Decimal: "-16", Hex: "-0x10", Octal: "-0o20", Binary: "-0b10000", IsInteger: true}},
		{"5 / 2", result.CalculatorResult{Decimal: "2.5", Hex: "N/A", Octal: "N/A", Binary: "N/A", IsInteger: false}},
		{"4 / 2", result.CalculatorResult{Decimal: "2", Hex: "N/A", Octal: "N/A", Binary: "N/A", IsInteger: false}},
		{"0.1 + 0.2", result.CalculatorResult{Decimal: "0.30000000000000004", Hex: "N/A", Octal: "N/A", Binary: "N/A", IsInteger: false}},
		{"  42  ", result.CalculatorResult{Decimal: "42", Hex: "0x2A", Octal: "0o52", Binary: "0b101010", IsInteger: true}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			r, err := Evaluate(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r)
		})
	}
}

func TestEvaluateArbitraryPrecision(t *testing.T) {
	r, err := Evaluate("1 << 64")
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551616", r.Decimal)
	assert.False(t, r.IsInteger)
	assert.Equal(t, result.NotApplicable, r.Hex)

	r, err = Evaluate("(1 << 64) - (1 << 64) + 7")
	require.NoError(t, err)
	assert.Equal(t, "7", r.Decimal)
	assert.True(t, r.IsInteger)

	r, err = Evaluate("9007199254740993 - 1")
	require.NoError(t, err)
	assert.Equal(t, "9007199254740992", r.Decimal)
}

func TestWordSyntaxEquivalence(t *testing.T) {
	pairs := [][2]string{
		{"0xF0 AND 0x3C", "0xF0 & 0x3C"},
		{"0xF0 or 0x0F", "0xF0 | 0x0F"},
		{"0xF0 Xor 0xFF", "0xF0 ^ 0xFF"},
		{"NOT 5", "~5"},
		{"1 shl 10", "1 << 10"},
		{"1024 ShR 3", "1024 >> 3"},
		{"not (3 and 1) or 8", "~(3 & 1) | 8"},
	}

	for _, pair := range pairs {
		words, err := Evaluate(pair[0])
		require.NoError(t, err, pair[0])

		symbols, err := Evaluate(pair[1])
		require.NoError(t, err, pair[1])

		assert.Equal(t, symbols, words, "%s vs %s", pair[0], pair[1])
	}
}

func TestRoundTrip(t *testing.T) {
	for _, text := range []string{"255", "0", "-16", "~0xFFFF", "1 << 52", "-(1 << 53) + 1", "0b1 << 40 | 0o777"} {
		r, err := Evaluate(text)
		require.NoError(t, err)
		require.True(t, r.IsInteger, text)

		for _, rendered := range []string{r.Decimal, r.Hex, r.Octal, r.Binary} {
			back, err := Decode(rendered)
			require.NoError(t, err, rendered)
			assert.Equal(t, r, back, "decoding %s", rendered)
		}
	}
}

func TestIdempotence(t *testing.T) {
	for _, text := range []string{"0xFF ^ 0x0F", "5 / 3", "1 << 100", "(2 + 3"} {
		r1, err1 := Evaluate(text)
		r2, err2 := Evaluate(text)
		assert.Equal(t, r1, r2)
		assert.Equal(t, err1, err2)
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		text string
		kind report.ErrorKind
	}{
		{"", report.EmptyExpression},
		{" \t\n", report.EmptyExpression},
		{"2 @ 3", report.UnexpectedCharacter},
		{"1 foo 2", report.UnexpectedCharacter},
		{"0x", report.InvalidLiteral},
		{"0b102", report.UnexpectedToken},
		{"0o78", report.UnexpectedToken},
		{"2 +", report.UnexpectedToken},
		{"2 + 3)", report.UnexpectedToken},
		{"(", report.UnexpectedToken},
		{"(2 + 3", report.UnmatchedParenthesis},
		{"5 / 0", report.DivisionByZero},
		{"5 / 0.0", report.DivisionByZero},
		{"5 % 0", report.ModuloByZero},
		{"1.5 & 1", report.NonIntegerBitwiseOperand},
		{"~(1 / 2)", report.NonIntegerBitwiseOperand},
		{"1 << 100000", report.ShiftOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := Evaluate(tt.text)
			requireKind(t, err, tt.kind)
		})
	}
}

func TestInvalidLiteralBase(t *testing.T) {
	_, err := Evaluate("0xZZ + 1")
	cerr := requireKind(t, err, report.InvalidLiteral)
	assert.Equal(t, "hexadecimal", cerr.Base)
	assert.Equal(t, "Invalid hexadecimal number", cerr.Error())

	_, err = Evaluate("0b")
	cerr = requireKind(t, err, report.InvalidLiteral)
	assert.Equal(t, "binary", cerr.Base)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		text    string
		decimal string
	}{
		{"0xFF", "255"},
		{"0XfF", "255"},
		{"0b1010", "10"},
		{"0o17", "15"},
		{"42", "42"},
		{"  0x10\t", "16"},
		{"-0x10", "-16"},
		{"+0b11", "3"},
		{"-0", "0"},
		{"2.5", "2.5"},
		{"-2.5", "-2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			r, err := Decode(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.decimal, r.Decimal)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode("   ")
	requireKind(t, err, report.EmptyExpression)

	for _, text := range []string{"0x", "0xG", "1 + 2", "--5", "abc", "0b102", "1.2.3"} {
		_, err := Decode(text)
		cerr := requireKind(t, err, report.InvalidNumber)
		assert.Equal(t, "Invalid number", cerr.Message)
	}

	_, err = Decode("  0xG ")
	cerr := requireKind(t, err, report.InvalidNumber)
	assert.Equal(t, &report.TextSpan{StartCol: 2, EndCol: 5}, cerr.Span)
}

func TestDecodeValue(t *testing.T) {
	v, err := DecodeValue("0x10")
	require.NoError(t, err)
	assert.True(t, v.Equal(numeric.ExactInt64(16)))

	v, err = DecodeValue("1.5")
	require.NoError(t, err)
	assert.True(t, v.Equal(numeric.Inexact(1.5)))
}

func TestConcurrentEvaluation(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]string, 64)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			r, err := Evaluate(fmt.Sprintf("%d * 2 + (1 << 3)", i))
			if err == nil {
				results[i] = r.Decimal
			}
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, fmt.Sprint(i*2+8), got)
	}
}

func TestErrorsDoNotPanic(t *testing.T) {
	inputs := []string{")", "((((", "~", "0x0x1", "1..2", "<<", strings.Repeat("(", 100) + "1"}
	for _, text := range inputs {
		assert.NotPanics(t, func() {
			_, err := Evaluate(text)
			assert.Error(t, err, text)
		})
	}
}
