package tensor

import "github.com/pkg/errors"

// MaxRank is the highest supported tensor rank (Tensor0D through Tensor4D).
const MaxRank = 4

// Shape represents the dimensions of a tensor. An empty shape is a scalar.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid: rank at most MaxRank and all dimensions > 0.
func (s Shape) Validate() error {
	if len(s) > MaxRank {
		return errors.Errorf("rank %d exceeds the maximum rank %d", len(s), MaxRank)
	}
	for i, dim := range s {
		if dim <= 0 {
			return errors.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// LastDim returns the size of the last dimension. A scalar behaves as a
// single element along a degenerate last dimension, so LastDim is 1.
func (s Shape) LastDim() int {
	if len(s) == 0 {
		return 1
	}
	return s[len(s)-1]
}

// ReduceLast returns the shape with its last dimension removed.
// Reducing a scalar yields a scalar.
func (s Shape) ReduceLast() Shape {
	if len(s) == 0 {
		return Shape{}
	}
	return s[:len(s)-1].Clone()
}
