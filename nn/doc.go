// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides parameterless modules built on the tape protocol.
//
// # Overview
//
// This package contains:
//   - Module interface: Forward over tensors of a fixed element type and holder
//   - Markers: NonMutableModule, ZeroSizedModule
//   - Layers: Upscale2D (fixed output size), Upscale2DBy (integer factors)
//   - Utilities: Sequential
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/tapegrad/autodiff"
//	    "github.com/born-ml/tapegrad/backend/cpu"
//	    "github.com/born-ml/tapegrad/nn"
//	    "github.com/born-ml/tapegrad/tensor"
//	)
//
//	func main() {
//	    type H = tensor.WithTape[float32]
//	    model := nn.NewSequential[float32, H](
//	        must.M1(nn.NewUpscale2DBy[float32, H](2, 0, cpu.Bilinear{})),
//	    )
//
//	    img := tensor.Ones[float32](tensor.Shape{3, 4, 4})
//	    out := model.Forward(img.Trace()) // [3, 8, 8]
//	    grads := autodiff.Backward(autodiff.Mean(out))
//	    _ = autodiff.Grad(grads, img)
//	}
//
// A module built for tensor.NoTape tensors runs the same computation and
// records nothing.
package nn
