package report

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("line 3: %w", Raise(ModuloByZero, &TextSpan{StartCol: 4, EndCol: 5}, "Modulo by zero"))

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, ModuloByZero, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestRaiseInvalidLiteral(t *testing.T) {
	err := RaiseInvalidLiteral("octal", &TextSpan{StartCol: 0, EndCol: 2})

	assert.Equal(t, InvalidLiteral, err.Kind)
	assert.Equal(t, "octal", err.Base)
	assert.EqualError(t, err, "Invalid octal number")
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "Division By Zero", DivisionByZero.String())
	assert.Equal(t, "ErrorKind(99)", ErrorKind(99).String())
}
