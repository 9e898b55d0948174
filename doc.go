// Package rvec provides fixed-dimension algebraic vector types over real
// coordinate spaces (ℝ² through ℝ⁶).
//
// The package is educational: it shows how a family of related geometric
// value types can share one arithmetic and comparison contract while
// varying in dimension and in how they store their components. Two storage
// disciplines coexist behind the single Vector interface:
//
//   - Vector2, Vector3 and Vector4 keep their components in an ordered
//     attribute list. Every operation is implemented once, generically,
//     by ranging over that list, so the higher-dimensional types inherit
//     norm, formatting, arithmetic and comparison unmodified.
//   - Vector5 and Vector6 declare their extra components as fixed struct
//     slots. They cannot range over a dynamic attribute list, so each
//     operation re-lists the full ordered component set explicitly.
//
// # Quick Start
//
//	a := rvec.NewVector2(2, 3)
//	b := rvec.NewVector2(0.5, 1.25)
//
//	sum, _ := a.Add(b)        // (2.5, 4.25)
//	dot, _ := a.Dot(b)        // 4.75
//	fmt.Println(a.Norm())     // 3.605551275463989
//	fmt.Printf("%#v\n", a)    // Vector2(x=2, y=3)
//
// # Type Safety
//
// Binary operations are defined only between two values of the exact same
// concrete type. Mixing types yields an *ErrTypeMismatch instead of a
// result:
//
//	_, err := rvec.NewVector2(1, 2).Add(rvec.NewVector3(1, 2, 3))
//	// err: add not supported between Vector2 and Vector3
//
// Equality is the one exception: Equal resolves a type mismatch to false,
// matching conventional value-equality expectations, while the norm-based
// ordering methods surface the mismatch as an error.
//
// # Multiplication
//
// Mul dispatches on the operand: any real-number kind scales the vector,
// a same-typed vector produces the dot product. The Product result type
// carries whichever of the two came out:
//
//	p, _ := rvec.Mul(a, 3)    // scaled vector
//	p, _ = rvec.Mul(a, b)     // dot product scalar
//
// # Immutability
//
// Vectors are immutable in effect. Every operation reads its operands and
// constructs a fresh value; no method ever mutates a receiver.
package rvec
