package rvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllAttributes(t *testing.T) {
	tests := []struct {
		name     string
		vec      Vector
		expected []Component
	}{
		{
			name: "Vector2OpenOnly",
			vec:  NewVector2(2, 3),
			expected: []Component{
				{Name: "x", Value: 2},
				{Name: "y", Value: 3},
			},
		},
		{
			name: "Vector4OpenOnly",
			vec:  NewVector4(1, 2, 3, 4),
			expected: []Component{
				{Name: "x", Value: 1},
				{Name: "y", Value: 2},
				{Name: "z", Value: 3},
				{Name: "w", Value: 4},
			},
		},
		{
			name: "Vector5OpenPlusSlots",
			vec:  NewVector5(1, 2, 3, 4, 5),
			expected: []Component{
				{Name: "x", Value: 1},
				{Name: "y", Value: 2},
				{Name: "z", Value: 3},
				{Name: "w", Value: 4},
				{Name: "v", Value: 5},
			},
		},
		{
			name: "Vector6OpenPlusSlots",
			vec:  NewVector6(1, 2, 3, 4, 5, 6),
			expected: []Component{
				{Name: "x", Value: 1},
				{Name: "y", Value: 2},
				{Name: "z", Value: 3},
				{Name: "w", Value: 4},
				{Name: "v", Value: 5},
				{Name: "u", Value: 6},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AllAttributes(tt.vec))
		})
	}
}

// The merged view must be stable: repeated calls return the same order.
func TestAllAttributesStableOrder(t *testing.T) {
	v := NewVector6(1, 2, 3, 4, 5, 6)

	first := AllAttributes(v)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, AllAttributes(v))
	}
}

// Mutating the returned view must not leak back into the vector.
func TestAllAttributesCopies(t *testing.T) {
	v := NewVector3(1, 2, 3)

	attrs := AllAttributes(v)
	attrs[0].Value = 99

	require.Equal(t, 1.0, v.X())
	assert.Equal(t, 1.0, AllAttributes(v)[0].Value)
}
