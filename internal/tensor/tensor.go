package tensor

import (
	"fmt"
	"slices"

	"github.com/gomlx/exceptions"
)

// Tensor is a dense, fixed-shape tensor with element type E and tape holder H.
//
// A tensor exclusively owns its data buffer and its holder. With H = NoTape[E]
// operations are plain computations; with H = WithTape[E] every operation moves
// the tape from its input to its output and records a backward step on it.
//
// Type Parameters:
//   - E: element type (float32 or float64)
//   - H: NoTape[E] or WithTape[E]
//
// Example:
//
//	x := must.M1(tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}))
//	y := autodiff.SumLastDim(x.Trace()) // [6, 15], recorded
type Tensor[E Float, H TapeHolder[E]] struct {
	id    ID
	shape Shape
	data  []E // nil once consumed by Traced
	tape  H
}

// FromOwned builds a tensor that takes ownership of data without copying it.
// The tensor gets a fresh ID and an empty holder; operations move a tape onto
// it with PutTape.
func FromOwned[E Float, H TapeHolder[E]](data []E, shape Shape) *Tensor[E, H] {
	if len(data) != shape.NumElements() {
		exceptions.Panicf("tensor: shape %v requires %d elements, got %d", shape, shape.NumElements(), len(data))
	}
	return &Tensor[E, H]{
		id:    NewID(),
		shape: shape.Clone(),
		data:  data,
	}
}

// ID returns the tensor's identity.
func (t *Tensor[E, H]) ID() ID {
	return t.id
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[E, H]) Shape() Shape {
	return t.shape.Clone()
}

// Rank returns the number of dimensions.
func (t *Tensor[E, H]) Rank() int {
	return t.shape.Rank()
}

// NumElements returns the total number of elements.
func (t *Tensor[E, H]) NumElements() int {
	return t.shape.NumElements()
}

// DType returns the tensor's data type.
func (t *Tensor[E, H]) DType() DataType {
	return DataTypeOf[E]()
}

// Data returns the tensor's buffer. It must not be modified.
func (t *Tensor[E, H]) Data() []E {
	t.mustBeLive("Data")
	return t.data
}

// Item returns the value of a single-element tensor.
func (t *Tensor[E, H]) Item() E {
	t.mustBeLive("Item")
	if len(t.data) != 1 {
		exceptions.Panicf("tensor %s: Item requires a single element, shape is %v", t.id, t.shape)
	}
	return t.data[0]
}

// Holder returns the tensor's tape holder.
func (t *Tensor[E, H]) Holder() H {
	return t.tape
}

// TakeTape moves the holder out of the tensor, leaving the zero holder behind.
// For WithTape the tensor no longer owns a live tape afterwards.
func (t *Tensor[E, H]) TakeTape() H {
	h := t.tape
	var zero H
	t.tape = zero
	return h
}

// PutTape installs h as the tensor's holder.
func (t *Tensor[E, H]) PutTape(h H) {
	t.tape = h
}

// Trace returns a copy of t sharing its ID. t is left untouched.
//
// The copy gets a fresh empty tape, so tracing an untraced tensor twice yields
// two independent tapes. A tensor that owns a tape with recorded operations is
// an intermediate result: its copy keeps recording on that same tape, so the
// operations that produced t are replayed by any backward pass through the
// copy.
//
// See Traced for a version that consumes t.
func (t *Tensor[E, H]) Trace() *Tensor[E, WithTape[E]] {
	t.mustBeLive("Trace")
	return &Tensor[E, WithTape[E]]{
		id:    t.id,
		shape: t.shape.Clone(),
		data:  slices.Clone(t.data),
		tape:  continueTape(t.tape.Tape()),
	}
}

// Traced consumes t and returns a tensor with the same ID and data. t must not
// be used for computation afterwards.
//
// Like Trace, the result continues t's tape if it has recorded operations and
// starts a fresh one otherwise.
func (t *Tensor[E, H]) Traced() *Tensor[E, WithTape[E]] {
	t.mustBeLive("Traced")
	out := &Tensor[E, WithTape[E]]{
		id:    t.id,
		shape: t.shape,
		data:  t.data,
		tape:  continueTape(t.tape.Tape()),
	}
	t.data = nil
	t.TakeTape()
	return out
}

func continueTape[E Float](tape *GradientTape[E]) WithTape[E] {
	if tape != nil && tape.NumOps() > 0 {
		return WithTape[E]{tape: tape}
	}
	return NewWithTape[E]()
}

// Detach returns a copy of t sharing its ID with no tape.
func (t *Tensor[E, H]) Detach() *Tensor[E, NoTape[E]] {
	t.mustBeLive("Detach")
	return &Tensor[E, NoTape[E]]{
		id:    t.id,
		shape: t.shape.Clone(),
		data:  slices.Clone(t.data),
	}
}

// String implements fmt.Stringer.
func (t *Tensor[E, H]) String() string {
	if t.data == nil {
		return fmt.Sprintf("Tensor%dD%v(%s, consumed)", t.shape.Rank(), t.shape, t.id)
	}
	return fmt.Sprintf("Tensor%dD%v(%s)%v", t.shape.Rank(), t.shape, t.id, t.data)
}

func (t *Tensor[E, H]) mustBeLive(method string) {
	if t.data == nil {
		exceptions.Panicf("tensor %s: %s called on a tensor consumed by Traced", t.id, method)
	}
}
