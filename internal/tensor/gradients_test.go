package tensor

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestGradients_GetOrZero(t *testing.T) {
	g := NewGradients[float32]()
	id := NewID()

	assert.False(t, g.Has(id))
	assert.Nil(t, g.Ref(id))

	buf := g.GetOrZero(id, Shape{2, 3})
	require.Len(t, buf, 6)
	assert.Equal(t, make([]float32, 6), buf)
	assert.True(t, g.Has(id))

	buf[4] = 3
	assert.Equal(t, float32(3), g.GetOrZero(id, Shape{2, 3})[4], "second access returns the same buffer")

	shape, ok := g.Shape(id)
	require.True(t, ok)
	assert.Equal(t, Shape{2, 3}, shape)
}

func TestGradients_ShapeMismatchPanics(t *testing.T) {
	g := NewGradients[float64]()
	id := NewID()
	g.GetOrZero(id, Shape{2, 3})

	err := exceptions.TryCatch[error](func() { g.GetOrZero(id, Shape{3, 2}) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accessed with shape")
}

func TestGradients_MutAndRefAliasing(t *testing.T) {
	g := NewGradients[float32]()
	id := NewID()
	copy(g.GetOrZero(id, Shape{3}), []float32{1, 2, 3})

	mut, ref := g.MutAndRef(id, Shape{3}, id, Shape{3})
	for i := range mut {
		mut[i] += ref[i]
	}
	assert.Equal(t, []float32{2, 4, 6}, g.Ref(id), "ref is a snapshot when both IDs match")
	assert.Equal(t, []float32{1, 2, 3}, ref)
}

func TestGradients_MutAndRefDistinct(t *testing.T) {
	g := NewGradients[float32]()
	in, out := NewID(), NewID()
	g.GetOrZero(out, Shape{})[0] = 5

	mut, ref := g.MutAndRef(in, Shape{2}, out, Shape{})
	assert.Equal(t, []float32{0, 0}, mut)
	assert.Equal(t, []float32{5}, ref)
	assert.Equal(t, 2, g.Len())
}

func TestGradients_IDsAndBytes(t *testing.T) {
	g := NewGradients[float64]()
	a, b := NewID(), NewID()
	g.GetOrZero(b, Shape{4})
	g.GetOrZero(a, Shape{2})

	assert.Equal(t, []ID{a, b}, g.IDs())
	assert.Equal(t, 6*8, g.Bytes())
}

func TestGradients_Half(t *testing.T) {
	g := NewGradients[float32]()
	id := NewID()
	copy(g.GetOrZero(id, Shape{3}), []float32{0.5, -2, 1})

	half := g.Half(id)
	require.Len(t, half, 3)
	assert.Equal(t, float16.Fromfloat32(0.5), half[0])
	assert.Equal(t, float32(-2), half[1].Float32())
	assert.Equal(t, float32(1), half[2].Float32())
	assert.Nil(t, g.Half(NewID()))
}

func TestDataType(t *testing.T) {
	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Float64, DataTypeOf[float64]())
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 8, Float64.Size())
	assert.Equal(t, "float32", Float32.String())
}
