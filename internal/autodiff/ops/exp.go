package ops

import (
	"slices"

	"github.com/born-ml/tapegrad/internal/backend/cpu"
	"github.com/born-ml/tapegrad/internal/tensor"
)

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y
//   - grad_input += grad_output * output
type ExpOp[E tensor.Float] struct {
	unary
	result []E // exp(x), owned by the op
}

// NewExpOp creates a new ExpOp. result is copied.
func NewExpOp[E tensor.Float](input, output tensor.ID, shape tensor.Shape, result []E) *ExpOp[E] {
	return &ExpOp[E]{
		unary:  newUnary(input, shape, output, shape),
		result: slices.Clone(result),
	}
}

// Kind implements tensor.Operation.
func (op *ExpOp[E]) Kind() tensor.OpKind { return tensor.Elementwise }

// Backward implements tensor.Operation.
func (op *ExpOp[E]) Backward(g *tensor.Gradients[E]) {
	inGrad, outGrad := grads(op.unary, g)
	cpu.MulAddInto(inGrad, outGrad, op.result)
}

// String implements tensor.Operation.
func (op *ExpOp[E]) String() string { return op.describe("Exp") }

// ScaleOp represents multiplication by a constant: y = s * x.
// Division by a constant is recorded as a ScaleOp with s = 1/d.
//
// Backward pass:
//   - grad_input += grad_output * s
type ScaleOp[E tensor.Float] struct {
	unary
	factor E
}

// NewScaleOp creates a new ScaleOp.
func NewScaleOp[E tensor.Float](input, output tensor.ID, shape tensor.Shape, factor E) *ScaleOp[E] {
	return &ScaleOp[E]{
		unary:  newUnary(input, shape, output, shape),
		factor: factor,
	}
}

// Kind implements tensor.Operation.
func (op *ScaleOp[E]) Kind() tensor.OpKind { return tensor.Elementwise }

// Backward implements tensor.Operation.
func (op *ScaleOp[E]) Backward(g *tensor.Gradients[E]) {
	inGrad, outGrad := grads(op.unary, g)
	cpu.AddScaledInto(inGrad, outGrad, op.factor)
}

// String implements tensor.Operation.
func (op *ScaleOp[E]) String() string { return op.describe("Scale") }
