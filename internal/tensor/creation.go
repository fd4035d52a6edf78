package tensor

import (
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// FromSlice creates an untraced tensor from a Go slice.
// The slice is copied into the tensor's memory.
//
// Example:
//
//	t, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice[E Float](data []E, shape Shape) (*Tensor[E, NoTape[E]], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrapf(err, "tensor.FromSlice: invalid shape %v", shape)
	}
	if shape.NumElements() != len(data) {
		return nil, errors.Errorf("tensor.FromSlice: shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
	}
	return FromOwned[E, NoTape[E]](slices.Clone(data), shape), nil
}

// New is FromSlice for literals: it panics instead of returning an error.
//
// Example:
//
//	t := tensor.New([]float64{1, 2, 3}, tensor.Shape{3})
func New[E Float](data []E, shape Shape) *Tensor[E, NoTape[E]] {
	t, err := FromSlice(data, shape)
	if err != nil {
		panic(err)
	}
	return t
}

// Scalar creates a rank-0 tensor holding v.
func Scalar[E Float](v E) *Tensor[E, NoTape[E]] {
	return FromOwned[E, NoTape[E]]([]E{v}, Shape{})
}

// Zeros creates a tensor filled with zeros. It panics on an invalid shape.
//
// Example:
//
//	t := tensor.Zeros[float32](tensor.Shape{3, 4, 4})
func Zeros[E Float](shape Shape) *Tensor[E, NoTape[E]] {
	if err := shape.Validate(); err != nil {
		exceptions.Panicf("tensor.Zeros: %v", err)
	}
	return FromOwned[E, NoTape[E]](make([]E, shape.NumElements()), shape)
}

// Ones creates a tensor filled with ones. It panics on an invalid shape.
func Ones[E Float](shape Shape) *Tensor[E, NoTape[E]] {
	return Full(shape, E(1))
}

// Full creates a tensor filled with value. It panics on an invalid shape.
func Full[E Float](shape Shape, value E) *Tensor[E, NoTape[E]] {
	t := Zeros[E](shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}
