package ops

import (
	"github.com/born-ml/tapegrad/internal/backend/cpu"
	"github.com/born-ml/tapegrad/internal/tensor"
)

// AddOp represents an element-wise addition operation: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a += outputGrad
//   - d(a+b)/db = 1, so grad_b += outputGrad
//
// When a and b are the same tensor both contributions land in its gradient.
type AddOp[E tensor.Float] struct {
	binary
}

// NewAddOp creates a new AddOp.
func NewAddOp[E tensor.Float](a, b, output tensor.ID, shape tensor.Shape) *AddOp[E] {
	return &AddOp[E]{binary: newBinary(a, b, output, shape)}
}

// Kind implements tensor.Operation.
func (op *AddOp[E]) Kind() tensor.OpKind { return tensor.Elementwise }

// Backward implements tensor.Operation.
func (op *AddOp[E]) Backward(g *tensor.Gradients[E]) {
	gradA, outGrad := g.MutAndRef(op.lhs, op.shape, op.output, op.shape)
	cpu.AddScaledInto(gradA, outGrad, 1)
	gradB, outGrad := g.MutAndRef(op.rhs, op.shape, op.output, op.shape)
	cpu.AddScaledInto(gradB, outGrad, 1)
}

// String implements tensor.Operation.
func (op *AddOp[E]) String() string { return op.describe("Add") }
