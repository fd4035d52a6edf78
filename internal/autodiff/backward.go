package autodiff

import (
	"github.com/born-ml/tapegrad/internal/tensor"
	"github.com/gomlx/exceptions"
)

// Backward computes the gradients of the scalar t with respect to every tensor
// that took part in its traced computation.
//
// It seeds the gradient of t with 1, replays t's tape in reverse and returns
// the populated store. The tape is consumed.
//
// Example:
//
//	x := must.M1(tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3}))
//	loss := autodiff.Mean(autodiff.Exp(autodiff.SumLastDim(x.Trace())))
//	grads := autodiff.Backward(loss)
//	autodiff.Grad(grads, x) // [exp(6) exp(6) exp(6)]
func Backward[E tensor.Float](t *tensor.Tensor[E, tensor.WithTape[E]]) *tensor.Gradients[E] {
	if t.Rank() != 0 {
		exceptions.Panicf("backward: expected a scalar (rank 0) tensor, got shape %v", t.Shape())
	}
	tape := t.TakeTape().Tape()
	if tape == nil {
		exceptions.Panicf("backward: tensor %s does not own a tape (was it moved into another operation?)", t.ID())
	}

	grads := tensor.NewGradients[E]()
	grads.GetOrZero(t.ID(), t.Shape())[0] = 1
	tape.Execute(grads)
	return grads
}

// Grad returns the gradient of t from grads. A tensor that never took part in
// the traced computation has a zero gradient.
//
// The returned buffer must not be modified.
func Grad[E tensor.Float, H tensor.TapeHolder[E]](grads *tensor.Gradients[E], t *tensor.Tensor[E, H]) []E {
	if g := grads.Ref(t.ID()); g != nil {
		return g
	}
	return make([]E, t.NumElements())
}
