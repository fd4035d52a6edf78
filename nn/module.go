// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/tapegrad/backend/cpu"
	"github.com/born-ml/tapegrad/internal/nn"
	"github.com/born-ml/tapegrad/tensor"
)

// Module is the base interface for all neural network components.
//
// Forward moves the input's tape (if any) to the output.
type Module[E tensor.Float, H tensor.TapeHolder[E]] = nn.Module[E, H]

// NonMutableModule is implemented by modules never changed by training.
type NonMutableModule = nn.NonMutableModule

// ZeroSizedModule is implemented by modules that own no parameters.
type ZeroSizedModule = nn.ZeroSizedModule

// Upscale2D resizes images to a fixed output size.
type Upscale2D[E tensor.Float, H tensor.TapeHolder[E]] = nn.Upscale2D[E, H]

// Upscale2DBy resizes images by integer factors.
type Upscale2DBy[E tensor.Float, H tensor.TapeHolder[E]] = nn.Upscale2DBy[E, H]

// Sequential chains modules.
type Sequential[E tensor.Float, H tensor.TapeHolder[E]] = nn.Sequential[E, H]

// NewUpscale2D creates an Upscale2D. outWidth 0 means outHeight; a nil method
// means nearest neighbor.
func NewUpscale2D[E tensor.Float, H tensor.TapeHolder[E]](outHeight, outWidth int, method cpu.UpscaleMethod) (*Upscale2D[E, H], error) {
	return nn.NewUpscale2D[E, H](outHeight, outWidth, method)
}

// NewUpscale2DBy creates an Upscale2DBy. widthFactor 0 means heightFactor; a
// nil method means nearest neighbor.
func NewUpscale2DBy[E tensor.Float, H tensor.TapeHolder[E]](heightFactor, widthFactor int, method cpu.UpscaleMethod) (*Upscale2DBy[E, H], error) {
	return nn.NewUpscale2DBy[E, H](heightFactor, widthFactor, method)
}

// NewSequential creates a Sequential container.
func NewSequential[E tensor.Float, H tensor.TapeHolder[E]](modules ...Module[E, H]) *Sequential[E, H] {
	return nn.NewSequential(modules...)
}
