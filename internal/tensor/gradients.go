package tensor

import (
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/x448/float16"
)

type gradient[E Float] struct {
	shape Shape
	data  []E
}

// Gradients maps tensor IDs to gradient buffers.
//
// A buffer is allocated zero-filled on first access and keeps the shape it was
// allocated with. Gradients are only ever accumulated into.
type Gradients[E Float] struct {
	buffers map[ID]*gradient[E]
}

// NewGradients creates an empty gradient store.
func NewGradients[E Float]() *Gradients[E] {
	return &Gradients[E]{
		buffers: make(map[ID]*gradient[E]),
	}
}

// GetOrZero returns the mutable buffer for id, allocating it zero-filled with
// the given shape if absent. It panics if the existing buffer has a different
// shape.
func (g *Gradients[E]) GetOrZero(id ID, shape Shape) []E {
	if buf, ok := g.buffers[id]; ok {
		if !buf.shape.Equal(shape) {
			exceptions.Panicf("gradients: buffer for tensor %s has shape %v, accessed with shape %v", id, buf.shape, shape)
		}
		return buf.data
	}
	buf := &gradient[E]{
		shape: shape.Clone(),
		data:  make([]E, shape.NumElements()),
	}
	g.buffers[id] = buf
	return buf.data
}

// MutAndRef returns the buffer of mutID for accumulation together with the
// buffer of refID for reading. Both are allocated if absent.
//
// When both IDs are the same the returned ref is a snapshot, so accumulating
// into mut while reading ref stays correct.
func (g *Gradients[E]) MutAndRef(mutID ID, mutShape Shape, refID ID, refShape Shape) (mut, ref []E) {
	mut = g.GetOrZero(mutID, mutShape)
	ref = g.GetOrZero(refID, refShape)
	if mutID == refID {
		ref = slices.Clone(ref)
	}
	return mut, ref
}

// Ref returns the buffer for id, or nil if id never received a gradient.
// The buffer must not be modified.
func (g *Gradients[E]) Ref(id ID) []E {
	if buf, ok := g.buffers[id]; ok {
		return buf.data
	}
	return nil
}

// Has reports whether a buffer exists for id.
func (g *Gradients[E]) Has(id ID) bool {
	_, ok := g.buffers[id]
	return ok
}

// Shape returns the shape of the buffer for id.
func (g *Gradients[E]) Shape(id ID) (Shape, bool) {
	buf, ok := g.buffers[id]
	if !ok {
		return nil, false
	}
	return buf.shape.Clone(), true
}

// Len returns the number of gradient buffers.
func (g *Gradients[E]) Len() int {
	return len(g.buffers)
}

// IDs returns the IDs holding a buffer, in ascending order.
func (g *Gradients[E]) IDs() []ID {
	ids := make([]ID, 0, len(g.buffers))
	for id := range g.buffers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Bytes returns the memory held by all gradient buffers.
func (g *Gradients[E]) Bytes() int {
	size := DataTypeOf[E]().Size()
	total := 0
	for _, buf := range g.buffers {
		total += len(buf.data) * size
	}
	return total
}

// Half returns a half-precision copy of the buffer for id, or nil if absent.
func (g *Gradients[E]) Half(id ID) []float16.Float16 {
	buf, ok := g.buffers[id]
	if !ok {
		return nil
	}
	out := make([]float16.Float16, len(buf.data))
	for i, v := range buf.data {
		out[i] = float16.Fromfloat32(float32(v))
	}
	return out
}
