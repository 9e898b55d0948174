package rvec

import "fmt"

// Kind identifies a concrete vector type. The numeric value of a Kind is
// its dimension.
type Kind int

const (
	KindVector2 Kind = iota + 2
	KindVector3
	KindVector4
	KindVector5
	KindVector6
)

// Dim returns the number of components of vectors of this kind.
func (k Kind) Dim() int {
	return int(k)
}

func (k Kind) String() string {
	switch k {
	case KindVector2:
		return "Vector2"
	case KindVector3:
		return "Vector3"
	case KindVector4:
		return "Vector4"
	case KindVector5:
		return "Vector5"
	case KindVector6:
		return "Vector6"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// componentNames holds the canonical component order shared by every kind.
// A kind of dimension n uses the first n names.
var componentNames = [...]string{"x", "y", "z", "w", "v", "u"}

// New constructs a vector of kind k from its full ordered component list.
func New(k Kind, components ...float64) (Vector, error) {
	switch k {
	case KindVector2, KindVector3, KindVector4, KindVector5, KindVector6:
	default:
		return nil, ErrUnknownKind
	}
	if len(components) != k.Dim() {
		return nil, &ErrComponentCount{Kind: k, Expected: k.Dim(), Actual: len(components)}
	}
	return rebuild(k, components), nil
}

// rebuild constructs a vector of kind k from an ordered component list that
// is already known to have the right length.
func rebuild(k Kind, c []float64) Vector {
	switch k {
	case KindVector2:
		return NewVector2(c[0], c[1])
	case KindVector3:
		return NewVector3(c[0], c[1], c[2])
	case KindVector4:
		return NewVector4(c[0], c[1], c[2], c[3])
	case KindVector5:
		return NewVector5(c[0], c[1], c[2], c[3], c[4])
	default:
		return NewVector6(c[0], c[1], c[2], c[3], c[4], c[5])
	}
}
