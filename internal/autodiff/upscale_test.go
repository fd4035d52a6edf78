package autodiff

import (
	"math"
	"slices"
	"testing"

	"github.com/born-ml/tapegrad/internal/backend/cpu"
	"github.com/born-ml/tapegrad/internal/tensor"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpscale2D_Shapes(t *testing.T) {
	x := tensor.Zeros[float32](tensor.Shape{3, 4, 4})
	assert.Equal(t, tensor.Shape{3, 8, 12}, Upscale2D(x, 8, 12, cpu.NearestNeighbor{}).Shape())
	assert.Equal(t, tensor.Shape{3, 8, 12}, Upscale2DBy(x, 2, 3, cpu.Bilinear{}).Shape())

	b := tensor.Zeros[float32](tensor.Shape{2, 3, 4, 4})
	assert.Equal(t, tensor.Shape{2, 3, 9, 9}, Upscale2D(b, 9, 9, cpu.NearestNeighbor{}).Shape())

	assert.Panics(t, func() { Upscale2DBy(tensor.Zeros[float32](tensor.Shape{4, 4}), 2, 2, cpu.NearestNeighbor{}) })
	assert.Panics(t, func() { Upscale2DBy(x, 0, 2, cpu.NearestNeighbor{}) })
}

func TestUpscale2D_NearestGradient(t *testing.T) {
	x := tensor.Ones[float32](tensor.Shape{1, 2, 2})
	y := Upscale2DBy(x.Trace(), 2, 2, cpu.NearestNeighbor{})
	require.Equal(t, 1, y.Holder().Tape().NumOps())
	assert.Equal(t, tensor.ScatterGather, y.Holder().Tape().Operations()[0].Kind())

	grads := Backward(Sum(y))
	assert.Equal(t, []float32{4, 4, 4, 4}, Grad(grads, x), "each input feeds a 2x2 block")
}

// upscaleLoss is a non-linear function of an upscaled input.
func upscaleLoss[H tensor.TapeHolder[float64]](x *tensor.Tensor[float64, H]) *tensor.Tensor[float64, H] {
	return Mean(Exp(Scale(Upscale2D(x, 5, 7, cpu.Bilinear{}), 0.5)))
}

func TestUpscale2D_BilinearFiniteDifferences(t *testing.T) {
	data := []float64{0.1, -0.3, 0.7, 0.2, 0.5, -0.4, 0.9, 0.0, -0.6, 0.3, 0.8, -0.1}
	shape := tensor.Shape{1, 3, 4}
	x := must.M1(tensor.FromSlice(data, shape))

	grads := Backward(upscaleLoss(x.Trace()))
	analytic := Grad(grads, x)

	const eps = 1e-6
	for i := range data {
		plus := slices.Clone(data)
		plus[i] += eps
		minus := slices.Clone(data)
		minus[i] -= eps
		fPlus := upscaleLoss(must.M1(tensor.FromSlice(plus, shape))).Item()
		fMinus := upscaleLoss(must.M1(tensor.FromSlice(minus, shape))).Item()
		numeric := (fPlus - fMinus) / (2 * eps)
		assert.InDelta(t, numeric, analytic[i], 1e-6, "position %d", i)
	}
	assert.False(t, math.IsNaN(analytic[0]))
}
