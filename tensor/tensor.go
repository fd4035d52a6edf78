// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tapegrad/internal/tensor"
)

// Type aliases for public API

// Float is the constraint for tensor element types: float32 or float64.
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// MaxRank is the highest supported tensor rank.
const MaxRank = tensor.MaxRank

// ID identifies a tensor allocation.
type ID = tensor.ID

// Tensor is a fixed-shape tensor with element type E and tape holder H.
type Tensor[E Float, H TapeHolder[E]] = tensor.Tensor[E, H]

// TapeHolder decides whether operations on a tensor are recorded.
type TapeHolder[E Float] = tensor.TapeHolder[E]

// NoTape records nothing.
type NoTape[E Float] = tensor.NoTape[E]

// WithTape owns a GradientTape.
type WithTape[E Float] = tensor.WithTape[E]

// GradientTape records backward operations.
type GradientTape[E Float] = tensor.GradientTape[E]

// Operation is one recorded backward step.
type Operation[E Float] = tensor.Operation[E]

// OpKind classifies backward operations.
type OpKind = tensor.OpKind

// Backward operation kinds.
const (
	BroadcastReduce OpKind = tensor.BroadcastReduce
	Elementwise     OpKind = tensor.Elementwise
	ScatterGather   OpKind = tensor.ScatterGather
)

// Gradients maps tensor IDs to gradient buffers.
type Gradients[E Float] = tensor.Gradients[E]

// FromSlice creates an untraced tensor from a Go slice (copied).
func FromSlice[E Float](data []E, shape Shape) (*Tensor[E, NoTape[E]], error) {
	return tensor.FromSlice(data, shape)
}

// New creates an untraced tensor from a Go slice (copied), panicking on
// invalid input.
func New[E Float](data []E, shape Shape) *Tensor[E, NoTape[E]] {
	return tensor.New(data, shape)
}

// Scalar creates a rank-0 tensor.
func Scalar[E Float](v E) *Tensor[E, NoTape[E]] {
	return tensor.Scalar(v)
}

// Zeros creates a tensor filled with zeros.
func Zeros[E Float](shape Shape) *Tensor[E, NoTape[E]] {
	return tensor.Zeros[E](shape)
}

// Ones creates a tensor filled with ones.
func Ones[E Float](shape Shape) *Tensor[E, NoTape[E]] {
	return tensor.Ones[E](shape)
}

// Full creates a tensor filled with value.
func Full[E Float](shape Shape, value E) *Tensor[E, NoTape[E]] {
	return tensor.Full(shape, value)
}

// NewGradients creates an empty gradient store.
func NewGradients[E Float]() *Gradients[E] {
	return tensor.NewGradients[E]()
}
