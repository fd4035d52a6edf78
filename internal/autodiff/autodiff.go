// Package autodiff implements reverse-mode automatic differentiation by
// moving a gradient tape along the computation.
//
// Architecture:
//   - Every tensor carries a TapeHolder: NoTape records nothing, WithTape owns a GradientTape
//   - Each operation computes its result from its inputs' data only
//   - The input's holder is moved onto the result and a backward record (package ops) is added
//   - Backward replays the tape in reverse into a fresh Gradients store
//
// Usage:
//
//	x := must.M1(tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}))
//	y := autodiff.Mean(autodiff.SumLastDim(x.Trace())) // mean([6, 15])
//	grads := autodiff.Backward(y)
//	autodiff.Grad(grads, x) // [0.5 0.5 0.5 0.5 0.5 0.5]
//
// Operations on NoTape tensors never build backward records.
package autodiff

import (
	"github.com/born-ml/tapegrad/internal/tensor"
	"github.com/gomlx/exceptions"
)

// moveTapeAndAddBackwardOp moves input's holder onto result and, if it
// records, adds the operation built by newOp.
//
// newOp is only called when recording, so untraced computations allocate no
// backward records.
func moveTapeAndAddBackwardOp[E tensor.Float, H tensor.TapeHolder[E]](
	input, result *tensor.Tensor[E, H],
	newOp func() tensor.Operation[E],
) *tensor.Tensor[E, H] {
	holder := input.TakeTape()
	if holder.Recording() {
		holder.AddOperation(newOp())
	}
	result.PutTape(holder)
	return result
}

// joinTapesAndAddBackwardOp is moveTapeAndAddBackwardOp for two operands:
// rhs's tape is appended to lhs's and the joined holder moves onto result.
func joinTapesAndAddBackwardOp[E tensor.Float, H tensor.TapeHolder[E]](
	lhs, rhs, result *tensor.Tensor[E, H],
	newOp func() tensor.Operation[E],
) *tensor.Tensor[E, H] {
	holder := tensor.JoinTapes[E](lhs.TakeTape(), rhs.TakeTape())
	if holder.Recording() {
		holder.AddOperation(newOp())
	}
	result.PutTape(holder)
	return result
}

func mustSameShape[E tensor.Float, H tensor.TapeHolder[E]](op string, lhs, rhs *tensor.Tensor[E, H]) {
	if !lhs.Shape().Equal(rhs.Shape()) {
		exceptions.Panicf("%s: shape mismatch %v vs %v", op, lhs.Shape(), rhs.Shape())
	}
}
