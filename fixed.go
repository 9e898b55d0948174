package rvec

import "math"

// Vector5 and Vector6 demonstrate the fixed-slot discipline: x and y are
// assigned through the shared open-attribute base constructor, but the
// remaining components are declared struct fields forming a closed set.
// Nothing outside that set can ever be attached, which keeps the layout
// flat and explicit. The price is that these types cannot range over a
// dynamic attribute list the way openVector does, so every operation below
// re-lists the full ordered component set by hand.

var (
	_ Vector = Vector5{}
	_ Vector = Vector6{}
)

// Vector5 is a five-dimensional vector with components x, y, z, w and v.
type Vector5 struct {
	base    openVector
	z, w, v float64
}

// NewVector5 constructs a Vector5 from its five components.
func NewVector5(x, y, z, w, v float64) Vector5 {
	return Vector5{base: newBase(KindVector5, x, y), z: z, w: w, v: v}
}

// Kind reports the concrete vector type.
func (v Vector5) Kind() Kind { return KindVector5 }

// Components returns the full ordered component list: the inherited planar
// pair concatenated with the declared slots.
func (v Vector5) Components() []Component {
	return []Component{
		{Name: "x", Value: v.X()},
		{Name: "y", Value: v.Y()},
		{Name: "z", Value: v.z},
		{Name: "w", Value: v.w},
		{Name: "v", Value: v.v},
	}
}

func (v Vector5) openComponents() []Component { return v.base.openComponents() }

func (v Vector5) slotComponents() []Component {
	return []Component{
		{Name: "z", Value: v.z},
		{Name: "w", Value: v.w},
		{Name: "v", Value: v.v},
	}
}

// X returns the first planar component.
func (v Vector5) X() float64 { return v.base.attrs[0].Value }

// Y returns the second planar component.
func (v Vector5) Y() float64 { return v.base.attrs[1].Value }

// Z returns the third component.
func (v Vector5) Z() float64 { return v.z }

// W returns the fourth component.
func (v Vector5) W() float64 { return v.w }

// V returns the fifth component.
func (v Vector5) V() float64 { return v.v }

// Norm returns the Euclidean length over all five components.
func (v Vector5) Norm() float64 {
	return math.Sqrt(v.X()*v.X() + v.Y()*v.Y() + v.z*v.z + v.w*v.w + v.v*v.v)
}

func (v Vector5) String() string { return formatTuple(v.Components()) }

func (v Vector5) GoString() string { return formatConstructor(KindVector5, v.Components()) }

// Add returns the component-wise sum with another Vector5.
func (v Vector5) Add(other Vector) (Vector, error) {
	o, ok := other.(Vector5)
	if !ok {
		return nil, typeMismatch("add", v, other)
	}
	return NewVector5(v.X()+o.X(), v.Y()+o.Y(), v.z+o.z, v.w+o.w, v.v+o.v), nil
}

// Sub returns the component-wise difference with another Vector5.
func (v Vector5) Sub(other Vector) (Vector, error) {
	o, ok := other.(Vector5)
	if !ok {
		return nil, typeMismatch("subtract", v, other)
	}
	return NewVector5(v.X()-o.X(), v.Y()-o.Y(), v.z-o.z, v.w-o.w, v.v-o.v), nil
}

// Scale returns the vector with every component multiplied by s.
func (v Vector5) Scale(s float64) Vector {
	return NewVector5(v.X()*s, v.Y()*s, v.z*s, v.w*s, v.v*s)
}

// Dot returns the dot product with another Vector5.
func (v Vector5) Dot(other Vector) (float64, error) {
	o, ok := other.(Vector5)
	if !ok {
		return 0, typeMismatch("dot", v, other)
	}
	return v.X()*o.X() + v.Y()*o.Y() + v.z*o.z + v.w*o.w + v.v*o.v, nil
}

// Equal reports whether other is a Vector5 with equal components.
func (v Vector5) Equal(other Vector) bool {
	o, ok := other.(Vector5)
	if !ok {
		return false
	}
	return v.X() == o.X() && v.Y() == o.Y() && v.z == o.z && v.w == o.w && v.v == o.v
}

// Less reports whether this vector's norm is smaller than other's.
func (v Vector5) Less(other Vector) (bool, error) {
	o, ok := other.(Vector5)
	if !ok {
		return false, typeMismatch("less than", v, other)
	}
	return v.Norm() < o.Norm(), nil
}

// Greater reports whether this vector's norm is larger than other's.
func (v Vector5) Greater(other Vector) (bool, error) {
	o, ok := other.(Vector5)
	if !ok {
		return false, typeMismatch("greater than", v, other)
	}
	return v.Norm() > o.Norm(), nil
}

// LessEqual reports whether this vector's norm is at most other's.
func (v Vector5) LessEqual(other Vector) (bool, error) {
	o, ok := other.(Vector5)
	if !ok {
		return false, typeMismatch("less or equal", v, other)
	}
	return v.Norm() <= o.Norm(), nil
}

// GreaterEqual reports whether this vector's norm is at least other's.
func (v Vector5) GreaterEqual(other Vector) (bool, error) {
	o, ok := other.(Vector5)
	if !ok {
		return false, typeMismatch("greater or equal", v, other)
	}
	return v.Norm() >= o.Norm(), nil
}

// Vector6 is a six-dimensional vector with components x, y, z, w, v and u.
type Vector6 struct {
	base       openVector
	z, w, v, u float64
}

// NewVector6 constructs a Vector6 from its six components.
func NewVector6(x, y, z, w, v, u float64) Vector6 {
	return Vector6{base: newBase(KindVector6, x, y), z: z, w: w, v: v, u: u}
}

// Kind reports the concrete vector type.
func (v Vector6) Kind() Kind { return KindVector6 }

// Components returns the full ordered component list: the inherited planar
// pair concatenated with the declared slots.
func (v Vector6) Components() []Component {
	return []Component{
		{Name: "x", Value: v.X()},
		{Name: "y", Value: v.Y()},
		{Name: "z", Value: v.z},
		{Name: "w", Value: v.w},
		{Name: "v", Value: v.v},
		{Name: "u", Value: v.u},
	}
}

func (v Vector6) openComponents() []Component { return v.base.openComponents() }

func (v Vector6) slotComponents() []Component {
	return []Component{
		{Name: "z", Value: v.z},
		{Name: "w", Value: v.w},
		{Name: "v", Value: v.v},
		{Name: "u", Value: v.u},
	}
}

// X returns the first planar component.
func (v Vector6) X() float64 { return v.base.attrs[0].Value }

// Y returns the second planar component.
func (v Vector6) Y() float64 { return v.base.attrs[1].Value }

// Z returns the third component.
func (v Vector6) Z() float64 { return v.z }

// W returns the fourth component.
func (v Vector6) W() float64 { return v.w }

// V returns the fifth component.
func (v Vector6) V() float64 { return v.v }

// U returns the sixth component.
func (v Vector6) U() float64 { return v.u }

// Norm returns the Euclidean length over all six components.
func (v Vector6) Norm() float64 {
	return math.Sqrt(v.X()*v.X() + v.Y()*v.Y() + v.z*v.z + v.w*v.w + v.v*v.v + v.u*v.u)
}

func (v Vector6) String() string { return formatTuple(v.Components()) }

func (v Vector6) GoString() string { return formatConstructor(KindVector6, v.Components()) }

// Add returns the component-wise sum with another Vector6.
func (v Vector6) Add(other Vector) (Vector, error) {
	o, ok := other.(Vector6)
	if !ok {
		return nil, typeMismatch("add", v, other)
	}
	return NewVector6(v.X()+o.X(), v.Y()+o.Y(), v.z+o.z, v.w+o.w, v.v+o.v, v.u+o.u), nil
}

// Sub returns the component-wise difference with another Vector6.
func (v Vector6) Sub(other Vector) (Vector, error) {
	o, ok := other.(Vector6)
	if !ok {
		return nil, typeMismatch("subtract", v, other)
	}
	return NewVector6(v.X()-o.X(), v.Y()-o.Y(), v.z-o.z, v.w-o.w, v.v-o.v, v.u-o.u), nil
}

// Scale returns the vector with every component multiplied by s.
func (v Vector6) Scale(s float64) Vector {
	return NewVector6(v.X()*s, v.Y()*s, v.z*s, v.w*s, v.v*s, v.u*s)
}

// Dot returns the dot product with another Vector6.
func (v Vector6) Dot(other Vector) (float64, error) {
	o, ok := other.(Vector6)
	if !ok {
		return 0, typeMismatch("dot", v, other)
	}
	return v.X()*o.X() + v.Y()*o.Y() + v.z*o.z + v.w*o.w + v.v*o.v + v.u*o.u, nil
}

// Equal reports whether other is a Vector6 with equal components.
func (v Vector6) Equal(other Vector) bool {
	o, ok := other.(Vector6)
	if !ok {
		return false
	}
	return v.X() == o.X() && v.Y() == o.Y() &&
		v.z == o.z && v.w == o.w && v.v == o.v && v.u == o.u
}

// Less reports whether this vector's norm is smaller than other's.
func (v Vector6) Less(other Vector) (bool, error) {
	o, ok := other.(Vector6)
	if !ok {
		return false, typeMismatch("less than", v, other)
	}
	return v.Norm() < o.Norm(), nil
}

// Greater reports whether this vector's norm is larger than other's.
func (v Vector6) Greater(other Vector) (bool, error) {
	o, ok := other.(Vector6)
	if !ok {
		return false, typeMismatch("greater than", v, other)
	}
	return v.Norm() > o.Norm(), nil
}

// LessEqual reports whether this vector's norm is at most other's.
func (v Vector6) LessEqual(other Vector) (bool, error) {
	o, ok := other.(Vector6)
	if !ok {
		return false, typeMismatch("less or equal", v, other)
	}
	return v.Norm() <= o.Norm(), nil
}

// GreaterEqual reports whether this vector's norm is at least other's.
func (v Vector6) GreaterEqual(other Vector) (bool, error) {
	o, ok := other.(Vector6)
	if !ok {
		return false, typeMismatch("greater or equal", v, other)
	}
	return v.Norm() >= o.Norm(), nil
}
