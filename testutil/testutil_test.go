package testutil

import (
	"testing"

	"github.com/hupe1980/rvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Components(6), b.Components(6))
	}
}

func TestRNGReset(t *testing.T) {
	rng := NewRNG(7)
	first := rng.Components(4)
	rng.Reset()
	assert.Equal(t, first, rng.Components(4))
}

func TestVector(t *testing.T) {
	rng := NewRNG(1)

	for _, k := range []rvec.Kind{
		rvec.KindVector2,
		rvec.KindVector3,
		rvec.KindVector4,
		rvec.KindVector5,
		rvec.KindVector6,
	} {
		t.Run(k.String(), func(t *testing.T) {
			v := rng.Vector(k)
			require.Equal(t, k, v.Kind())
			assert.Len(t, v.Components(), k.Dim())

			for _, c := range v.Components() {
				assert.GreaterOrEqual(t, c.Value, -1.0)
				assert.Less(t, c.Value, 1.0)
			}
		})
	}
}

func TestVectors(t *testing.T) {
	rng := NewRNG(99)
	vs := rng.Vectors(5, rvec.KindVector3)
	require.Len(t, vs, 5)
	for _, v := range vs {
		assert.Equal(t, rvec.KindVector3, v.Kind())
	}
}
