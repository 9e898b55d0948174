package rvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenConstructors(t *testing.T) {
	tests := []struct {
		name  string
		vec   Vector
		kind  Kind
		names []string
	}{
		{"Vector2", NewVector2(2, 3), KindVector2, []string{"x", "y"}},
		{"Vector3", NewVector3(2, 3, 1), KindVector3, []string{"x", "y", "z"}},
		{"Vector4", NewVector4(1, 2, 3, 4), KindVector4, []string{"x", "y", "z", "w"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.vec.Kind())

			got := tt.vec.Components()
			require.Len(t, got, len(tt.names))
			for i, c := range got {
				assert.Equal(t, tt.names[i], c.Name)
			}
		})
	}
}

func TestOpenAccessors(t *testing.T) {
	v2 := NewVector2(1, 2)
	assert.Equal(t, 1.0, v2.X())
	assert.Equal(t, 2.0, v2.Y())

	v3 := NewVector3(1, 2, 3)
	assert.Equal(t, 3.0, v3.Z())

	v4 := NewVector4(1, 2, 3, 4)
	assert.Equal(t, 3.0, v4.Z())
	assert.Equal(t, 4.0, v4.W())
}

// The open types share one generic implementation: an operation on a
// Vector4 must produce a Vector4 without Vector4 overriding anything.
func TestOpenInheritedOperations(t *testing.T) {
	a := NewVector4(1, 2, 3, 4)
	b := NewVector4(4, 3, 2, 1)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, KindVector4, sum.Kind())
	assert.True(t, sum.Equal(NewVector4(5, 5, 5, 5)))

	dot, err := a.Dot(b)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, dot, 1e-12) // 4 + 6 + 6 + 4

	scaled := a.Scale(2)
	assert.True(t, scaled.Equal(NewVector4(2, 4, 6, 8)))

	assert.Equal(t, "Vector4(x=1, y=2, z=3, w=4)", a.GoString())
}

func TestCross(t *testing.T) {
	t.Run("KnownValue", func(t *testing.T) {
		a := NewVector3(2, 3, 1)
		b := NewVector3(0.5, 1.25, 2)

		got, err := a.Cross(b)
		require.NoError(t, err)

		// x = 3·2 − 1·1.25, y = 1·0.5 − 2·2, z = 2·1.25 − 3·0.5
		assert.True(t, got.Equal(NewVector3(4.75, -3.5, 1)))
	})

	t.Run("AntiCommutative", func(t *testing.T) {
		a := NewVector3(1, 2, 3)
		b := NewVector3(4, 5, 6)

		ab, err := a.Cross(b)
		require.NoError(t, err)
		ba, err := b.Cross(a)
		require.NoError(t, err)

		assert.True(t, ab.Equal(ba.Scale(-1)))
	})

	t.Run("OrthogonalToOperands", func(t *testing.T) {
		a := NewVector3(2, 3, 1)
		b := NewVector3(0.5, 1.25, 2)

		c, err := a.Cross(b)
		require.NoError(t, err)

		da, err := c.Dot(a)
		require.NoError(t, err)
		db, err := c.Dot(b)
		require.NoError(t, err)

		assert.InDelta(t, 0.0, da, 1e-12)
		assert.InDelta(t, 0.0, db, 1e-12)
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		_, err := NewVector3(1, 2, 3).Cross(NewVector2(1, 2))

		var tm *ErrTypeMismatch
		require.ErrorAs(t, err, &tm)
		assert.Equal(t, "cross", tm.Op)
	})

	t.Run("NilOperand", func(t *testing.T) {
		_, err := NewVector3(1, 2, 3).Cross(nil)
		var tm *ErrTypeMismatch
		assert.ErrorAs(t, err, &tm)
	})
}
