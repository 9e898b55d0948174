package rvec

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind is returned by New for a Kind this package does not define.
	ErrUnknownKind = errors.New("unknown vector kind")
)

// ErrTypeMismatch indicates a binary operation between two different
// concrete vector types, or a multiplication by an operand that is neither
// a real number nor a same-typed vector.
type ErrTypeMismatch struct {
	Op    string
	Left  string
	Right string
}

func (e *ErrTypeMismatch) Error() string {
	return fmt.Sprintf("%s not supported between %s and %s", e.Op, e.Left, e.Right)
}

// ErrComponentCount indicates a New call whose component list does not
// match the kind's dimension.
type ErrComponentCount struct {
	Kind     Kind
	Expected int
	Actual   int
}

func (e *ErrComponentCount) Error() string {
	return fmt.Sprintf("%s needs %d components, got %d", e.Kind, e.Expected, e.Actual)
}

// typeMismatch builds the error for a cross-type binary operation.
func typeMismatch(op string, left Vector, right Vector) error {
	return &ErrTypeMismatch{Op: op, Left: operandName(left), Right: operandName(right)}
}

func operandName(v Vector) string {
	if v == nil {
		return "<nil>"
	}
	return v.Kind().String()
}
