package ops

import (
	"fmt"

	"github.com/born-ml/tapegrad/internal/backend/cpu"
	"github.com/born-ml/tapegrad/internal/tensor"
)

// Upscale2DOp represents a 2D resize of the last two dimensions.
//
// Forward gathers, for each output pixel, a weighted sum of input pixels.
// Backward is the transpose: each output gradient is scattered back to those
// input pixels with the same weights. For nearest neighbor every weight is 1
// and the backward is a sum over the output pixels each input pixel fed.
type Upscale2DOp[E tensor.Float] struct {
	unary
	method cpu.UpscaleMethod
}

// NewUpscale2DOp creates a new Upscale2DOp.
func NewUpscale2DOp[E tensor.Float](input tensor.ID, inputShape tensor.Shape, output tensor.ID, outputShape tensor.Shape, method cpu.UpscaleMethod) *Upscale2DOp[E] {
	return &Upscale2DOp[E]{
		unary:  newUnary(input, inputShape, output, outputShape),
		method: method,
	}
}

// Kind implements tensor.Operation.
func (op *Upscale2DOp[E]) Kind() tensor.OpKind { return tensor.ScatterGather }

// Backward implements tensor.Operation.
func (op *Upscale2DOp[E]) Backward(g *tensor.Gradients[E]) {
	inGrad, outGrad := grads(op.unary, g)
	rank := op.output.shape.Rank()
	cpu.Upscale2DBackward(inGrad, op.input.shape, outGrad,
		op.output.shape[rank-2], op.output.shape[rank-1], op.method)
}

// String implements tensor.Operation.
func (op *Upscale2DOp[E]) String() string {
	return op.describe(fmt.Sprintf("Upscale2D[%s]", op.method.Name()))
}
