package rvec

import (
	"math"
	"slices"
)

// openVector is the open-attribute storage shared by Vector2, Vector3 and
// Vector4: an ordered list of named components built up at construction.
// Every Vector method is implemented here once, by ranging over that list,
// so a derived type that appends more components inherits correct norm,
// formatting, arithmetic and comparison without overriding anything.
type openVector struct {
	kind  Kind
	attrs []Component
}

// newBase seeds the attribute list with the two planar components every
// vector type shares. The fixed-slot constructors route x and y through
// here as well.
func newBase(kind Kind, x, y float64) openVector {
	return openVector{kind: kind, attrs: []Component{
		{Name: "x", Value: x},
		{Name: "y", Value: y},
	}}
}

// with returns a copy of o with one more named component appended.
func (o openVector) with(name string, value float64) openVector {
	attrs := make([]Component, len(o.attrs), len(o.attrs)+1)
	copy(attrs, o.attrs)
	o.attrs = append(attrs, Component{Name: name, Value: value})
	return o
}

var (
	_ Vector = Vector2{}
	_ Vector = Vector3{}
	_ Vector = Vector4{}
)

// Vector2 is a two-dimensional vector with components x and y. It is the
// base of the open discipline: the other open types extend its attribute
// list and inherit its whole method set.
type Vector2 struct{ openVector }

// NewVector2 constructs a Vector2 from its two components.
func NewVector2(x, y float64) Vector2 {
	return Vector2{newBase(KindVector2, x, y)}
}

// Vector3 is a three-dimensional vector with components x, y and z.
type Vector3 struct{ openVector }

// NewVector3 constructs a Vector3 from its three components.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{newBase(KindVector3, x, y).with("z", z)}
}

// Vector4 is a four-dimensional vector with components x, y, z and w.
type Vector4 struct{ openVector }

// NewVector4 constructs a Vector4 from its four components.
func NewVector4(x, y, z, w float64) Vector4 {
	return Vector4{newBase(KindVector4, x, y).with("z", z).with("w", w)}
}

// Kind reports the concrete vector type.
func (o openVector) Kind() Kind { return o.kind }

// Components returns the full ordered component list.
func (o openVector) Components() []Component { return slices.Clone(o.attrs) }

func (o openVector) openComponents() []Component { return slices.Clone(o.attrs) }

// Norm returns the Euclidean length. It ranges over whatever components
// the attribute list holds rather than naming x and y, which is why the
// higher-dimensional open types need no override.
func (o openVector) Norm() float64 {
	var sum float64
	for _, c := range o.attrs {
		sum += c.Value * c.Value
	}
	return math.Sqrt(sum)
}

func (o openVector) String() string { return formatTuple(o.attrs) }

func (o openVector) GoString() string { return formatConstructor(o.kind, o.attrs) }

// Add returns the component-wise sum with a same-typed vector.
func (o openVector) Add(other Vector) (Vector, error) {
	return o.combine("add", other, func(a, b float64) float64 { return a + b })
}

// Sub returns the component-wise difference with a same-typed vector.
func (o openVector) Sub(other Vector) (Vector, error) {
	return o.combine("subtract", other, func(a, b float64) float64 { return a - b })
}

// combine builds the component-wise result of a binary operation with a
// same-typed operand and rebuilds the concrete type from the result list.
func (o openVector) combine(op string, other Vector, f func(a, b float64) float64) (Vector, error) {
	if other == nil || other.Kind() != o.kind {
		return nil, typeMismatch(op, o, other)
	}
	oc := other.Components()
	vals := make([]float64, len(o.attrs))
	for i, c := range o.attrs {
		vals[i] = f(c.Value, oc[i].Value)
	}
	return rebuild(o.kind, vals), nil
}

// Scale returns the vector with every component multiplied by s.
func (o openVector) Scale(s float64) Vector {
	vals := make([]float64, len(o.attrs))
	for i, c := range o.attrs {
		vals[i] = c.Value * s
	}
	return rebuild(o.kind, vals)
}

// Dot returns the dot product with a same-typed vector.
func (o openVector) Dot(other Vector) (float64, error) {
	if other == nil || other.Kind() != o.kind {
		return 0, typeMismatch("dot", o, other)
	}
	oc := other.Components()
	var sum float64
	for i, c := range o.attrs {
		sum += c.Value * oc[i].Value
	}
	return sum, nil
}

// Equal reports whether other has the same concrete type and equal
// corresponding components. A differently-typed operand compares unequal
// rather than erroring.
func (o openVector) Equal(other Vector) bool {
	if other == nil || other.Kind() != o.kind {
		return false
	}
	oc := other.Components()
	for i, c := range o.attrs {
		if c.Value != oc[i].Value {
			return false
		}
	}
	return true
}

// Less reports whether this vector's norm is smaller than other's.
func (o openVector) Less(other Vector) (bool, error) {
	return o.compare("less than", other, func(a, b float64) bool { return a < b })
}

// Greater reports whether this vector's norm is larger than other's.
func (o openVector) Greater(other Vector) (bool, error) {
	return o.compare("greater than", other, func(a, b float64) bool { return a > b })
}

// LessEqual reports whether this vector's norm is at most other's.
func (o openVector) LessEqual(other Vector) (bool, error) {
	return o.compare("less or equal", other, func(a, b float64) bool { return a <= b })
}

// GreaterEqual reports whether this vector's norm is at least other's.
func (o openVector) GreaterEqual(other Vector) (bool, error) {
	return o.compare("greater or equal", other, func(a, b float64) bool { return a >= b })
}

func (o openVector) compare(op string, other Vector, f func(a, b float64) bool) (bool, error) {
	if other == nil || other.Kind() != o.kind {
		return false, typeMismatch(op, o, other)
	}
	return f(o.Norm(), other.Norm()), nil
}

// X returns the first planar component.
func (o openVector) X() float64 { return o.attrs[0].Value }

// Y returns the second planar component.
func (o openVector) Y() float64 { return o.attrs[1].Value }

// Z returns the third component.
func (v Vector3) Z() float64 { return v.attrs[2].Value }

// Z returns the third component.
func (v Vector4) Z() float64 { return v.attrs[2].Value }

// W returns the fourth component.
func (v Vector4) W() float64 { return v.attrs[3].Value }

// Cross returns the cross product with a same-typed operand, using the
// standard formula (y·oz − z·oy, z·ox − x·oz, x·oy − y·ox). The cross
// product exists only in three dimensions and is not part of the general
// Vector contract.
func (v Vector3) Cross(other Vector) (Vector3, error) {
	o, ok := other.(Vector3)
	if !ok {
		return Vector3{}, typeMismatch("cross", v, other)
	}
	return NewVector3(
		v.Y()*o.Z()-v.Z()*o.Y(),
		v.Z()*o.X()-v.X()*o.Z(),
		v.X()*o.Y()-v.Y()*o.X(),
	), nil
}
