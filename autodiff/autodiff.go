// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Operations take tensors by pointer and move their tape holder to the result.
// On traced tensors (tensor.WithTape) each operation records a backward step;
// Backward replays them in reverse from a scalar.
//
// Example:
//
//	import (
//	    "github.com/born-ml/tapegrad/autodiff"
//	    "github.com/born-ml/tapegrad/tensor"
//	)
//
//	func main() {
//	    x, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	    loss := autodiff.Mean(autodiff.SumLastDim(x.Trace()))
//	    grads := autodiff.Backward(loss)
//	    fmt.Println(autodiff.Grad(grads, x)) // [0.5 0.5 0.5 0.5 0.5 0.5]
//	}
package autodiff

import (
	"github.com/born-ml/tapegrad/backend/cpu"
	"github.com/born-ml/tapegrad/internal/autodiff"
	"github.com/born-ml/tapegrad/tensor"
)

// Backward computes gradients of the scalar t.
func Backward[E tensor.Float](t *tensor.Tensor[E, tensor.WithTape[E]]) *tensor.Gradients[E] {
	return autodiff.Backward(t)
}

// Grad returns the gradient of t, zeros if t took no part in the computation.
func Grad[E tensor.Float, H tensor.TapeHolder[E]](grads *tensor.Gradients[E], t *tensor.Tensor[E, H]) []E {
	return autodiff.Grad(grads, t)
}

// SumLastDim sums the last dimension of t.
func SumLastDim[E tensor.Float, H tensor.TapeHolder[E]](t *tensor.Tensor[E, H]) *tensor.Tensor[E, H] {
	return autodiff.SumLastDim(t)
}

// Sum sums all elements of t into a scalar.
func Sum[E tensor.Float, H tensor.TapeHolder[E]](t *tensor.Tensor[E, H]) *tensor.Tensor[E, H] {
	return autodiff.Sum(t)
}

// Mean averages all elements of t into a scalar.
func Mean[E tensor.Float, H tensor.TapeHolder[E]](t *tensor.Tensor[E, H]) *tensor.Tensor[E, H] {
	return autodiff.Mean(t)
}

// Exp computes exp(t) element-wise.
func Exp[E tensor.Float, H tensor.TapeHolder[E]](t *tensor.Tensor[E, H]) *tensor.Tensor[E, H] {
	return autodiff.Exp(t)
}

// Scale computes t * s.
func Scale[E tensor.Float, H tensor.TapeHolder[E]](t *tensor.Tensor[E, H], s E) *tensor.Tensor[E, H] {
	return autodiff.Scale(t, s)
}

// DivScalar computes t / d.
func DivScalar[E tensor.Float, H tensor.TapeHolder[E]](t *tensor.Tensor[E, H], d E) *tensor.Tensor[E, H] {
	return autodiff.DivScalar(t, d)
}

// Add computes lhs + rhs.
func Add[E tensor.Float, H tensor.TapeHolder[E]](lhs, rhs *tensor.Tensor[E, H]) *tensor.Tensor[E, H] {
	return autodiff.Add(lhs, rhs)
}

// Sub computes lhs - rhs.
func Sub[E tensor.Float, H tensor.TapeHolder[E]](lhs, rhs *tensor.Tensor[E, H]) *tensor.Tensor[E, H] {
	return autodiff.Sub(lhs, rhs)
}

// Mul computes lhs * rhs.
func Mul[E tensor.Float, H tensor.TapeHolder[E]](lhs, rhs *tensor.Tensor[E, H]) *tensor.Tensor[E, H] {
	return autodiff.Mul(lhs, rhs)
}

// Upscale2D resizes the last two dimensions of t to outHeight x outWidth.
func Upscale2D[E tensor.Float, H tensor.TapeHolder[E]](t *tensor.Tensor[E, H], outHeight, outWidth int, method cpu.UpscaleMethod) *tensor.Tensor[E, H] {
	return autodiff.Upscale2D(t, outHeight, outWidth, method)
}

// Upscale2DBy resizes the last two dimensions of t by integer factors.
func Upscale2DBy[E tensor.Float, H tensor.TapeHolder[E]](t *tensor.Tensor[E, H], heightFactor, widthFactor int, method cpu.UpscaleMethod) *tensor.Tensor[E, H] {
	return autodiff.Upscale2DBy(t, heightFactor, widthFactor, method)
}
