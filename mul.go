package rvec

import "fmt"

// Product is the result of Mul: either a scaled vector or a dot-product
// scalar, depending on the operand.
type Product struct {
	vec    Vector
	scalar float64
	isDot  bool
}

// Vector returns the scaled vector when the multiplication was by a real
// number. ok is false for a dot product.
func (p Product) Vector() (Vector, bool) {
	if p.isDot {
		return nil, false
	}
	return p.vec, true
}

// Scalar returns the dot product when the multiplication was by a
// same-typed vector. ok is false for a scalar multiplication.
func (p Product) Scalar() (float64, bool) {
	if !p.isDot {
		return 0, false
	}
	return p.scalar, true
}

func (p Product) String() string {
	if p.isDot {
		return formatValue(p.scalar)
	}
	return p.vec.String()
}

// Mul multiplies v by operand, dispatching on the operand's type: any real
// number kind scales the vector, a vector of the same concrete type yields
// the dot product. Anything else is an *ErrTypeMismatch.
func Mul(v Vector, operand any) (Product, error) {
	if s, ok := toScalar(operand); ok {
		return Product{vec: v.Scale(s)}, nil
	}
	if o, ok := operand.(Vector); ok {
		d, err := v.Dot(o)
		if err != nil {
			return Product{}, err
		}
		return Product{scalar: d, isDot: true}, nil
	}
	return Product{}, &ErrTypeMismatch{
		Op:    "multiply",
		Left:  operandName(v),
		Right: fmt.Sprintf("%T", operand),
	}
}

// toScalar coerces any built-in real-number kind to float64.
func toScalar(operand any) (float64, bool) {
	switch s := operand.(type) {
	case float64:
		return s, true
	case float32:
		return float64(s), true
	case int:
		return float64(s), true
	case int8:
		return float64(s), true
	case int16:
		return float64(s), true
	case int32:
		return float64(s), true
	case int64:
		return float64(s), true
	case uint:
		return float64(s), true
	case uint8:
		return float64(s), true
	case uint16:
		return float64(s), true
	case uint32:
		return float64(s), true
	case uint64:
		return float64(s), true
	default:
		return 0, false
	}
}
