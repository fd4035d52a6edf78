package ops

import (
	"github.com/born-ml/tapegrad/internal/backend/cpu"
	"github.com/born-ml/tapegrad/internal/tensor"
)

// SumLastDimOp represents a reduction of the last dimension: y = sum(x, -1).
//
// Backward:
//
//	grad_x[..., j] += grad_y[...]   for every j
//
// Every input element contributed to exactly one output position with weight
// 1, so the gradient is broadcast back unnormalized. For a scalar input the
// reduction is the identity, and so is the backward.
type SumLastDimOp[E tensor.Float] struct {
	unary
	lastDim int // size of the reduced dimension
}

// NewSumLastDimOp creates a new SumLastDimOp.
func NewSumLastDimOp[E tensor.Float](input tensor.ID, inputShape tensor.Shape, output tensor.ID) *SumLastDimOp[E] {
	return &SumLastDimOp[E]{
		unary:   newUnary(input, inputShape, output, inputShape.ReduceLast()),
		lastDim: inputShape.LastDim(),
	}
}

// Kind implements tensor.Operation.
func (op *SumLastDimOp[E]) Kind() tensor.OpKind { return tensor.BroadcastReduce }

// Backward implements tensor.Operation.
func (op *SumLastDimOp[E]) Backward(g *tensor.Gradients[E]) {
	inGrad, outGrad := grads(op.unary, g)
	cpu.BroadcastAddLastDim(inGrad, outGrad, op.lastDim)
}

// String implements tensor.Operation.
func (op *SumLastDimOp[E]) String() string { return op.describe("SumLastDim") }
