// Package nn implements the module layer on top of the tape protocol.
//
// A module maps an input tensor to an output tensor and propagates the tape
// exactly like a single differentiable operation: the input's holder ends up
// on the output. This package provides:
//   - Module interface: Forward over tensors of a fixed element type and holder
//   - NonMutableModule / ZeroSizedModule: markers for stateless modules
//   - Upscale2D, Upscale2DBy: parameterless spatial resizing
//   - Sequential: container chaining modules
package nn

import (
	"github.com/born-ml/tapegrad/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Type parameters fix the element type and the tape holder: a module built
// for WithTape tensors records its operations, one built for NoTape tensors
// does not.
type Module[E tensor.Float, H tensor.TapeHolder[E]] interface {
	// Forward computes the output of the module given an input tensor.
	//
	// The input's tape (if any) is moved to the output.
	Forward(input *tensor.Tensor[E, H]) *tensor.Tensor[E, H]
}

// NonMutableModule is implemented by modules that are never changed by a
// training step. They need no optimizer or parameter plumbing.
type NonMutableModule interface {
	NonMutable()
}

// ZeroSizedModule is implemented by modules that own no parameters: all their
// configuration is fixed at construction.
type ZeroSizedModule interface {
	ZeroSized()
}
