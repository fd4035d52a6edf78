package ops

import (
	"github.com/born-ml/tapegrad/internal/backend/cpu"
	"github.com/born-ml/tapegrad/internal/tensor"
)

// SubOp represents an element-wise subtraction operation: output = a - b.
//
// Backward pass:
//   - grad_a += outputGrad
//   - grad_b -= outputGrad
type SubOp[E tensor.Float] struct {
	binary
}

// NewSubOp creates a new SubOp.
func NewSubOp[E tensor.Float](a, b, output tensor.ID, shape tensor.Shape) *SubOp[E] {
	return &SubOp[E]{binary: newBinary(a, b, output, shape)}
}

// Kind implements tensor.Operation.
func (op *SubOp[E]) Kind() tensor.OpKind { return tensor.Elementwise }

// Backward implements tensor.Operation.
func (op *SubOp[E]) Backward(g *tensor.Gradients[E]) {
	gradA, outGrad := g.MutAndRef(op.lhs, op.shape, op.output, op.shape)
	cpu.AddScaledInto(gradA, outGrad, 1)
	gradB, outGrad := g.MutAndRef(op.rhs, op.shape, op.output, op.shape)
	cpu.AddScaledInto(gradB, outGrad, -1)
}

// String implements tensor.Operation.
func (op *SubOp[E]) String() string { return op.describe("Sub") }
