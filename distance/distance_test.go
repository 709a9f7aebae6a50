package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{4, 5, 6}
	assert.InDelta(t, 32.0, float64(Dot(a, b)), 1e-6)

	assert.Equal(t, float32(0), Dot([]float32{1, 0}, []float32{0, 1}))
}

func TestSquaredL2(t *testing.T) {
	a := []float32{1, 2}
	b := []float32{4, 6}
	assert.InDelta(t, 25.0, float64(SquaredL2(a, b)), 1e-6)
	assert.Equal(t, float32(0), SquaredL2(a, a))
}

func TestNormalizeL2InPlace(t *testing.T) {
	v := []float32{3, 4}
	ok := NormalizeL2InPlace(v)
	require.True(t, ok)
	assert.InDelta(t, 0.6, float64(v[0]), 1e-6)
	assert.InDelta(t, 0.8, float64(v[1]), 1e-6)
	assert.InDelta(t, 1.0, float64(Norm(v)), 1e-6)
}

func TestNormalizeL2InPlace_ZeroVector(t *testing.T) {
	v := []float32{0, 0, 0}
	ok := NormalizeL2InPlace(v)
	require.False(t, ok)
	// Untouched on failure.
	assert.Equal(t, []float32{0, 0, 0}, v)

	assert.False(t, NormalizeL2InPlace(nil))
}

func TestNormalizeL2InPlace_Idempotent(t *testing.T) {
	v := []float32{0.1, 0.9, 0.2, 0.4}
	require.True(t, NormalizeL2InPlace(v))

	unit := make([]float32, len(v))
	copy(unit, v)

	require.True(t, NormalizeL2InPlace(v))
	for i := range v {
		assert.InDelta(t, float64(unit[i]), float64(v[i]), 1e-6)
	}
}

func TestNormalizeL2Copy(t *testing.T) {
	src := []float32{3, 4}
	dst, ok := NormalizeL2Copy(src)
	require.True(t, ok)

	// Source must not be mutated.
	assert.Equal(t, []float32{3, 4}, src)
	assert.InDelta(t, 1.0, float64(Norm(dst)), 1e-6)
}

func TestNormalizeL2Copy_ZeroVector(t *testing.T) {
	src := []float32{0, 0}
	dst, ok := NormalizeL2Copy(src)
	require.False(t, ok)
	// The copy is returned unchanged so callers can fall back to it.
	assert.Equal(t, src, dst)
}

func TestNorm(t *testing.T) {
	assert.InDelta(t, 5.0, float64(Norm([]float32{3, 4})), 1e-6)
	assert.True(t, math.Abs(float64(Norm(nil))) < 1e-9)
}
