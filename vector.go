package rvec

import (
	"strconv"
	"strings"
)

// Component is one named real-valued coordinate of a vector.
type Component struct {
	Name  string
	Value float64
}

// Vector is implemented by every fixed-dimension vector type in this
// package. Binary operations are defined only between two values of the
// exact same concrete type; mixing types yields an *ErrTypeMismatch.
//
// Equal is the deliberate exception: it resolves a type mismatch to false
// instead of an error, while the norm-based ordering methods surface the
// mismatch. This mirrors conventional value-equality expectations and is
// covered explicitly by tests.
type Vector interface {
	// Kind reports the concrete vector type.
	Kind() Kind

	// Components returns the full ordered component list.
	Components() []Component

	// Norm returns the Euclidean length √(Σ cᵢ²).
	Norm() float64

	// String renders the components as an ordered tuple, e.g. "(2, 3)".
	String() string

	// GoString renders a constructor-style form reproducing the value,
	// e.g. "Vector3(x=2, y=3, z=1)". Satisfies fmt.GoStringer, so %#v
	// prints it.
	GoString() string

	// Add returns the component-wise sum with a same-typed vector.
	Add(other Vector) (Vector, error)

	// Sub returns the component-wise difference with a same-typed vector.
	Sub(other Vector) (Vector, error)

	// Scale returns the vector with every component multiplied by s.
	Scale(s float64) Vector

	// Dot returns the dot product with a same-typed vector.
	Dot(other Vector) (float64, error)

	// Equal reports whether other has the same concrete type and equal
	// corresponding components. A differently-typed or nil operand
	// compares unequal, never errors.
	Equal(other Vector) bool

	// Less, Greater, LessEqual and GreaterEqual compare the norms of two
	// same-typed vectors. Distinct vectors with equal norms compare
	// equal-by-order; that is a property of norm ordering, not a bug.
	Less(other Vector) (bool, error)
	Greater(other Vector) (bool, error)
	LessEqual(other Vector) (bool, error)
	GreaterEqual(other Vector) (bool, error)
}

// formatValue renders a component value the shortest way that round-trips,
// so whole numbers print without a decimal point: 2 → "2", 2.5 → "2.5".
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatTuple renders an ordered component list as "(2, 3)".
func formatTuple(components []Component) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range components {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatValue(c.Value))
	}
	sb.WriteByte(')')
	return sb.String()
}

// formatConstructor renders a constructor-style form such as
// "Vector2(x=2, y=3)".
func formatConstructor(k Kind, components []Component) string {
	var sb strings.Builder
	sb.WriteString(k.String())
	sb.WriteByte('(')
	for i, c := range components {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.Name)
		sb.WriteByte('=')
		sb.WriteString(formatValue(c.Value))
	}
	sb.WriteByte(')')
	return sb.String()
}
