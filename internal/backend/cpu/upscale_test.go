package cpu

import (
	"testing"

	"github.com/born-ml/tapegrad/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestNeighbor_Taps(t *testing.T) {
	var m NearestNeighbor
	var got []int
	for o := range 9 {
		taps := m.Taps(o, 4, 9)
		require.Len(t, taps, 1)
		assert.Equal(t, 1.0, taps[0].Weight)
		got = append(got, taps[0].Index)
	}
	assert.Equal(t, []int{0, 0, 0, 1, 1, 2, 2, 3, 3}, got)
}

func TestBilinear_Taps(t *testing.T) {
	var m Bilinear
	assert.Equal(t, []Tap{{Index: 0, Weight: 1}}, m.Taps(0, 2, 3))
	assert.Equal(t, []Tap{{Index: 0, Weight: 0.5}, {Index: 1, Weight: 0.5}}, m.Taps(1, 2, 3))
	assert.Equal(t, []Tap{{Index: 1, Weight: 1}}, m.Taps(2, 2, 3), "corners are aligned")
	assert.Equal(t, []Tap{{Index: 0, Weight: 1}}, m.Taps(3, 1, 5), "single input position")
}

func TestUpscale2DShape(t *testing.T) {
	assert.Equal(t, tensor.Shape{3, 8, 12}, Upscale2DShape(tensor.Shape{3, 4, 4}, 8, 12))
	assert.Equal(t, tensor.Shape{2, 3, 9, 9}, Upscale2DShape(tensor.Shape{2, 3, 4, 4}, 9, 9))
	assert.Panics(t, func() { Upscale2DShape(tensor.Shape{4, 4}, 8, 8) })
	assert.Panics(t, func() { Upscale2DShape(tensor.Shape{1, 4, 4}, 0, 8) })
}

func TestUpscale2D_Nearest(t *testing.T) {
	src := []float32{1, 2, 3, 4}
	out := Upscale2D(src, tensor.Shape{1, 2, 2}, 4, 4, NearestNeighbor{})
	assert.Equal(t, []float32{
		1, 1, 2, 2,
		1, 1, 2, 2,
		3, 3, 4, 4,
		3, 3, 4, 4,
	}, out)
}

func TestUpscale2D_Bilinear(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	out := Upscale2D(src, tensor.Shape{1, 2, 2}, 3, 3, Bilinear{})
	assert.InDeltaSlice(t, []float64{
		1, 1.5, 2,
		2, 2.5, 3,
		3, 3.5, 4,
	}, out, 1e-12)
}

func TestUpscale2D_PlanesAreIndependent(t *testing.T) {
	src := []float32{1, 2, 3, 4, 10, 20, 30, 40}
	out := Upscale2D(src, tensor.Shape{2, 1, 2, 2}, 2, 4, NearestNeighbor{})
	assert.Equal(t, []float32{
		1, 1, 2, 2, 3, 3, 4, 4,
		10, 10, 20, 20, 30, 30, 40, 40,
	}, out)
}

func TestUpscale2DBackward_NearestCounts(t *testing.T) {
	shape := tensor.Shape{1, 4, 4}
	inGrad := make([]float32, 16)
	outGrad := make([]float32, 9*9)
	for i := range outGrad {
		outGrad[i] = 1
	}
	Upscale2DBackward(inGrad, shape, outGrad, 9, 9, NearestNeighbor{})

	// Rows and columns are hit 3, 2, 2, 2 times.
	counts := []float32{3, 2, 2, 2}
	for y := range 4 {
		for x := range 4 {
			assert.Equal(t, counts[y]*counts[x], inGrad[y*4+x], "pixel (%d,%d)", y, x)
		}
	}
}

func TestUpscale2DBackward_Bilinear(t *testing.T) {
	inGrad := []float64{1, 1, 1, 1}
	outGrad := make([]float64, 9)
	for i := range outGrad {
		outGrad[i] = 1
	}
	Upscale2DBackward(inGrad, tensor.Shape{1, 2, 2}, outGrad, 3, 3, Bilinear{})
	assert.InDeltaSlice(t, []float64{3.25, 3.25, 3.25, 3.25}, inGrad, 1e-12, "accumulates onto existing gradient")
}

func TestUpscale2D_LargeParallel(t *testing.T) {
	// Enough planes and pixels to split the work across goroutines.
	shape := tensor.Shape{8, 16, 8, 8}
	src := make([]float32, shape.NumElements())
	for i := range src {
		src[i] = float32(i % 64)
	}
	out := Upscale2D(src, shape, 16, 16, NearestNeighbor{})
	require.Len(t, out, 8*16*16*16)
	for p := range 128 {
		plane := out[p*256 : (p+1)*256]
		assert.Equal(t, float32(0), plane[0])
		assert.Equal(t, float32(63), plane[255])
	}
}
