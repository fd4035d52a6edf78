package ops

import (
	"github.com/born-ml/tapegrad/internal/backend/cpu"
	"github.com/born-ml/tapegrad/internal/tensor"
)

// SumOp represents a full reduction to a scalar: y = sum(x).
//
// Backward:
//
//	grad_x += broadcast(grad_y, x.shape)
type SumOp[E tensor.Float] struct {
	unary
}

// NewSumOp creates a new SumOp.
func NewSumOp[E tensor.Float](input tensor.ID, inputShape tensor.Shape, output tensor.ID) *SumOp[E] {
	return &SumOp[E]{unary: newUnary(input, inputShape, output, tensor.Shape{})}
}

// Kind implements tensor.Operation.
func (op *SumOp[E]) Kind() tensor.OpKind { return tensor.BroadcastReduce }

// Backward implements tensor.Operation.
func (op *SumOp[E]) Backward(g *tensor.Gradients[E]) {
	inGrad, outGrad := grads(op.unary, g)
	cpu.BroadcastAdd(inGrad, outGrad[0])
}

// String implements tensor.Operation.
func (op *SumOp[E]) String() string { return op.describe("Sum") }

// MeanOp represents the mean of all elements: y = sum(x) / n.
//
// Backward:
//
//	grad_x += broadcast(grad_y, x.shape) / n
//
// The normalization belongs to the mean itself; SumLastDimOp and SumOp stay
// unnormalized.
type MeanOp[E tensor.Float] struct {
	unary
	numElements int
}

// NewMeanOp creates a new MeanOp.
func NewMeanOp[E tensor.Float](input tensor.ID, inputShape tensor.Shape, output tensor.ID) *MeanOp[E] {
	return &MeanOp[E]{
		unary:       newUnary(input, inputShape, output, tensor.Shape{}),
		numElements: inputShape.NumElements(),
	}
}

// Kind implements tensor.Operation.
func (op *MeanOp[E]) Kind() tensor.OpKind { return tensor.BroadcastReduce }

// Backward implements tensor.Operation.
func (op *MeanOp[E]) Backward(g *tensor.Gradients[E]) {
	inGrad, outGrad := grads(op.unary, g)
	cpu.BroadcastAdd(inGrad, outGrad[0]/E(op.numElements))
}

// String implements tensor.Operation.
func (op *MeanOp[E]) String() string { return op.describe("Mean") }
