// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides fixed-shape tensors that can carry a gradient tape.
//
// # Overview
//
// A Tensor[E, H] owns a dense buffer of element type E (float32 or float64) and
// a tape holder H:
//   - NoTape[E]: operations are plain computations and record nothing
//   - WithTape[E]: operations move the tape to their output and record a backward step
//
// Tracing opts a tensor into differentiation:
//
//	x := must.M1(tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}))
//	xt := x.Trace()   // copy with a fresh tape, x untouched
//	xt2 := x.Traced() // consumes x
//
// Gradients computed by autodiff.Backward are keyed by the tensor ID, which
// Trace and Traced preserve, so the gradient of x is looked up with x itself.
package tensor
