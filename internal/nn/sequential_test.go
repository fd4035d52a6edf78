package nn

import (
	"testing"

	"github.com/born-ml/tapegrad/internal/autodiff"
	"github.com/born-ml/tapegrad/internal/backend/cpu"
	"github.com/born-ml/tapegrad/internal/tensor"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
)

// expModule is a minimal module that is not marked NonMutable.
type expModule struct{}

func (expModule) Forward(x *tensor.Tensor[float32, tensor.WithTape[float32]]) *tensor.Tensor[float32, tensor.WithTape[float32]] {
	return autodiff.Exp(x)
}

func TestSequential(t *testing.T) {
	type withTape = tensor.WithTape[float32]
	model := NewSequential[float32, withTape](
		must.M1(NewUpscale2D[float32, withTape](4, 4, cpu.NearestNeighbor{})),
		must.M1(NewUpscale2DBy[float32, withTape](2, 0, cpu.Bilinear{})),
	)
	assert.Equal(t, 2, model.Len())
	assert.True(t, model.AllNonMutable())

	x := tensor.Ones[float32](tensor.Shape{3, 2, 2})
	y := model.Forward(x.Trace())
	assert.Equal(t, tensor.Shape{3, 8, 8}, y.Shape())
	assert.Equal(t, 2, y.Holder().Tape().NumOps())

	model.Add(expModule{})
	assert.Equal(t, 3, model.Len())
	assert.False(t, model.AllNonMutable())
	assert.IsType(t, expModule{}, model.Module(2))
	assert.Panics(t, func() { model.Module(3) })
}
