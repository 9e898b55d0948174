// Package testutil provides testing utilities for rvec.
//
// This package is intended for use in tests and examples only. It provides
// helpers for generating reproducible random vector fixtures.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Vector(rvec.KindVector3)      // components uniform in [-1, 1)
//	vs := rng.Vectors(10, rvec.KindVector6)
package testutil
