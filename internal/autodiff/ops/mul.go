package ops

import (
	"slices"

	"github.com/born-ml/tapegrad/internal/backend/cpu"
	"github.com/born-ml/tapegrad/internal/tensor"
)

// MulOp represents an element-wise multiplication operation: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a += outputGrad * b
//   - d(a*b)/db = a, so grad_b += outputGrad * a
type MulOp[E tensor.Float] struct {
	binary
	a, b []E // operand values, owned by the op
}

// NewMulOp creates a new MulOp. The operand values are copied.
func NewMulOp[E tensor.Float](a, b, output tensor.ID, shape tensor.Shape, aData, bData []E) *MulOp[E] {
	return &MulOp[E]{
		binary: newBinary(a, b, output, shape),
		a:      slices.Clone(aData),
		b:      slices.Clone(bData),
	}
}

// Kind implements tensor.Operation.
func (op *MulOp[E]) Kind() tensor.OpKind { return tensor.Elementwise }

// Backward implements tensor.Operation.
func (op *MulOp[E]) Backward(g *tensor.Gradients[E]) {
	gradA, outGrad := g.MutAndRef(op.lhs, op.shape, op.output, op.shape)
	cpu.MulAddInto(gradA, outGrad, op.b)
	gradB, outGrad := g.MutAndRef(op.rhs, op.shape, op.output, op.shape)
	cpu.MulAddInto(gradB, outGrad, op.a)
}

// String implements tensor.Operation.
func (op *MulOp[E]) String() string { return op.describe("Mul") }
