// Package result renders numeric values in the four display bases.
package result

import (
	"devcalc/common"
	"devcalc/numeric"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// NotApplicable is displayed in place of the non-decimal representations of
// values that are not exact integers within the safe range.
const NotApplicable = "N/A"

// CalculatorResult holds a value rendered in every supported base.
type CalculatorResult struct {
	Decimal   string `json:"decimal" yaml:"decimal"`
	Hex       string `json:"hex" yaml:"hex"`
	Octal     string `json:"octal" yaml:"octal"`
	Binary    string `json:"binary" yaml:"binary"`
	IsInteger bool   `json:"isInteger" yaml:"isInteger"`
}

// maxSafe is the largest integer magnitude rendered in the non-decimal bases.
var maxSafe = big.NewInt(common.MaxSafeInteger)

// Format renders a value.  Exact integers within the safe range are rendered
// in all four bases with uppercase digits and a lowercase prefix; the sign of a
// negative value precedes the prefix.  Everything else only has a decimal form.
func Format(v numeric.Value) CalculatorResult {
	if !v.IsExact() {
		return decimalOnly(FormatReal(v.Float()))
	}

	n := v.Int()
	if n.CmpAbs(maxSafe) > 0 {
		return decimalOnly(n.String())
	}

	sign := ""
	if n.Sign() < 0 {
		sign = "-"
	}
	abs := new(big.Int).Abs(n)

	return CalculatorResult{
		Decimal:   n.String(),
		Hex:       sign + "0x" + strings.ToUpper(abs.Text(16)),
		Octal:     sign + "0o" + abs.Text(8),
		Binary:    sign + "0b" + abs.Text(2),
		IsInteger: true,
	}
}

func decimalOnly(decimal string) CalculatorResult {
	return CalculatorResult{
		Decimal: decimal,
		Hex:     NotApplicable,
		Octal:   NotApplicable,
		Binary:  NotApplicable,
	}
}

// FormatReal returns the natural string form of a float: the shortest text
// that round-trips, in fixed notation for magnitudes in [1e-6, 1e21) and in
// exponent notation (`1.5e-7`, `1e+21`) otherwise.
func FormatReal(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// covers negative zero
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// strconv pads the exponent to two digits.
	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	digits := strings.TrimLeft(exp[1:], "0")
	return mant + "e" + exp[:1] + digits
}

// StripPrefix removes the two-character base prefix from a rendered value,
// keeping any leading sign: `-0x10` becomes `-10`.  Values without a prefix
// (including NotApplicable) are returned unchanged.
func StripPrefix(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'o' || s[1] == 'b') {
		return sign + s[2:]
	}

	return sign + s
}
