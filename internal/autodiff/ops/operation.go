// Package ops defines the backward records of differentiable operations.
//
// Each record implements tensor.Operation: it owns the IDs and shapes of its
// operands and result plus any forward values its derivative needs, and its
// Backward accumulates operand gradients from the result gradient.
//
// Supported operations:
//   - SumLastDimOp: sum over the last dimension (grad_x = broadcast(grad_y))
//   - SumOp, MeanOp: full reductions to a scalar
//   - ExpOp: d(exp(x))/dx = exp(x)
//   - ScaleOp: d(s*x)/dx = s
//   - AddOp, SubOp, MulOp: element-wise binary operations
//   - Upscale2DOp: weighted scatter of the interpolation weights
package ops

import (
	"fmt"

	"github.com/born-ml/tapegrad/internal/tensor"
)

// operand is an ID together with the shape its gradient buffer must have.
type operand struct {
	id    tensor.ID
	shape tensor.Shape
}

func newOperand(id tensor.ID, shape tensor.Shape) operand {
	return operand{id: id, shape: shape.Clone()}
}

func (o operand) String() string {
	return fmt.Sprintf("%s%v", o.id, o.shape)
}

// unary holds the bookkeeping shared by single-input operations.
type unary struct {
	input  operand
	output operand
}

func newUnary(input tensor.ID, inputShape tensor.Shape, output tensor.ID, outputShape tensor.Shape) unary {
	return unary{
		input:  newOperand(input, inputShape),
		output: newOperand(output, outputShape),
	}
}

// grads returns the input gradient to accumulate into and the output gradient.
func grads[E tensor.Float](u unary, g *tensor.Gradients[E]) (inGrad, outGrad []E) {
	return g.MutAndRef(u.input.id, u.input.shape, u.output.id, u.output.shape)
}

func (u unary) describe(name string) string {
	return fmt.Sprintf("%s(%s) -> %s", name, u.input, u.output)
}

// binary holds the bookkeeping shared by two-input element-wise operations.
// Both operands and the output have the same shape.
type binary struct {
	lhs, rhs, output tensor.ID
	shape            tensor.Shape
}

func newBinary(lhs, rhs, output tensor.ID, shape tensor.Shape) binary {
	return binary{lhs: lhs, rhs: rhs, output: output, shape: shape.Clone()}
}

func (b binary) describe(name string) string {
	return fmt.Sprintf("%s(%s, %s) -> %s%v", name, b.lhs, b.rhs, b.output, b.shape)
}
