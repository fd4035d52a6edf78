package autodiff

import (
	"github.com/born-ml/tapegrad/internal/autodiff/ops"
	"github.com/born-ml/tapegrad/internal/backend/cpu"
	"github.com/born-ml/tapegrad/internal/tensor"
	"github.com/gomlx/exceptions"
)

// Exp computes exp(t) element-wise.
func Exp[E tensor.Float, H tensor.TapeHolder[E]](t *tensor.Tensor[E, H]) *tensor.Tensor[E, H] {
	shape := t.Shape()
	result := tensor.FromOwned[E, H](cpu.Exp(t.Data()), shape)
	return moveTapeAndAddBackwardOp(t, result, func() tensor.Operation[E] {
		return ops.NewExpOp(t.ID(), result.ID(), shape, result.Data())
	})
}

// Scale computes t * s.
func Scale[E tensor.Float, H tensor.TapeHolder[E]](t *tensor.Tensor[E, H], s E) *tensor.Tensor[E, H] {
	shape := t.Shape()
	result := tensor.FromOwned[E, H](cpu.Scale(t.Data(), s), shape)
	return moveTapeAndAddBackwardOp(t, result, func() tensor.Operation[E] {
		return ops.NewScaleOp(t.ID(), result.ID(), shape, s)
	})
}

// DivScalar computes t / d. It is recorded as a separate scaling operation.
func DivScalar[E tensor.Float, H tensor.TapeHolder[E]](t *tensor.Tensor[E, H], d E) *tensor.Tensor[E, H] {
	if d == 0 {
		exceptions.Panicf("divscalar: division by zero")
	}
	return Scale(t, 1/d)
}

// Add computes lhs + rhs element-wise. Both operands must have the same shape.
//
// With traced operands the rhs tape is appended to the lhs tape, so the result
// carries every operation of both branches.
func Add[E tensor.Float, H tensor.TapeHolder[E]](lhs, rhs *tensor.Tensor[E, H]) *tensor.Tensor[E, H] {
	mustSameShape("add", lhs, rhs)
	shape := lhs.Shape()
	result := tensor.FromOwned[E, H](cpu.Add(lhs.Data(), rhs.Data()), shape)
	return joinTapesAndAddBackwardOp(lhs, rhs, result, func() tensor.Operation[E] {
		return ops.NewAddOp[E](lhs.ID(), rhs.ID(), result.ID(), shape)
	})
}

// Sub computes lhs - rhs element-wise. Both operands must have the same shape.
func Sub[E tensor.Float, H tensor.TapeHolder[E]](lhs, rhs *tensor.Tensor[E, H]) *tensor.Tensor[E, H] {
	mustSameShape("sub", lhs, rhs)
	shape := lhs.Shape()
	result := tensor.FromOwned[E, H](cpu.Sub(lhs.Data(), rhs.Data()), shape)
	return joinTapesAndAddBackwardOp(lhs, rhs, result, func() tensor.Operation[E] {
		return ops.NewSubOp[E](lhs.ID(), rhs.ID(), result.ID(), shape)
	})
}

// Mul computes lhs * rhs element-wise. Both operands must have the same shape.
func Mul[E tensor.Float, H tensor.TapeHolder[E]](lhs, rhs *tensor.Tensor[E, H]) *tensor.Tensor[E, H] {
	mustSameShape("mul", lhs, rhs)
	shape := lhs.Shape()
	result := tensor.FromOwned[E, H](cpu.Mul(lhs.Data(), rhs.Data()), shape)
	return joinTapesAndAddBackwardOp(lhs, rhs, result, func() tensor.Operation[E] {
		return ops.NewMulOp(lhs.ID(), rhs.ID(), result.ID(), shape, lhs.Data(), rhs.Data())
	})
}
