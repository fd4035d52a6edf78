package autodiff

import (
	"github.com/born-ml/tapegrad/internal/autodiff/ops"
	"github.com/born-ml/tapegrad/internal/backend/cpu"
	"github.com/born-ml/tapegrad/internal/tensor"
)

// SumLastDim reduces the last dimension of t by summing it. The result has one
// dimension less; a scalar is returned unchanged (as a new tensor).
//
// Example:
//
//	t := must.M1(tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}))
//	r := autodiff.SumLastDim(t) // [6, 15], shape [2]
func SumLastDim[E tensor.Float, H tensor.TapeHolder[E]](t *tensor.Tensor[E, H]) *tensor.Tensor[E, H] {
	shape := t.Shape()
	result := tensor.FromOwned[E, H](cpu.SumLastDim(t.Data(), shape), shape.ReduceLast())
	return moveTapeAndAddBackwardOp(t, result, func() tensor.Operation[E] {
		return ops.NewSumLastDimOp[E](t.ID(), shape, result.ID())
	})
}

// Sum reduces all elements of t to a scalar.
func Sum[E tensor.Float, H tensor.TapeHolder[E]](t *tensor.Tensor[E, H]) *tensor.Tensor[E, H] {
	result := tensor.FromOwned[E, H]([]E{cpu.Sum(t.Data())}, tensor.Shape{})
	return moveTapeAndAddBackwardOp(t, result, func() tensor.Operation[E] {
		return ops.NewSumOp[E](t.ID(), t.Shape(), result.ID())
	})
}

// Mean reduces all elements of t to their mean, a scalar.
func Mean[E tensor.Float, H tensor.TapeHolder[E]](t *tensor.Tensor[E, H]) *tensor.Tensor[E, H] {
	mean := cpu.Sum(t.Data()) / E(t.NumElements())
	result := tensor.FromOwned[E, H]([]E{mean}, tensor.Shape{})
	return moveTapeAndAddBackwardOp(t, result, func() tensor.Operation[E] {
		return ops.NewMeanOp[E](t.ID(), t.Shape(), result.ID())
	})
}
