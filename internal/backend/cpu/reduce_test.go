package cpu

import (
	"testing"

	"github.com/born-ml/tapegrad/internal/tensor"
	"github.com/stretchr/testify/assert"
)

func TestSumLastDim(t *testing.T) {
	tests := []struct {
		name  string
		data  []float32
		shape tensor.Shape
		want  []float32
	}{
		{"matrix", []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, []float32{6, 15}},
		{"vector", []float32{1, 2, 3}, tensor.Shape{3}, []float32{6}},
		{"scalar", []float32{2}, tensor.Shape{}, []float32{2}},
		{"rank3", []float32{1, 1, 1, 1, 1, 1, 1, 1}, tensor.Shape{2, 2, 2}, []float32{2, 2, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SumLastDim(tt.data, tt.shape))
		})
	}
}

func TestSumLastDim_LengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { SumLastDim([]float32{1, 2}, tensor.Shape{3}) })
}

func TestBroadcastAddLastDim(t *testing.T) {
	dst := []float64{1, 1, 1, 1, 1, 1}
	BroadcastAddLastDim(dst, []float64{0.5, 2}, 3)
	assert.Equal(t, []float64{1.5, 1.5, 1.5, 3, 3, 3}, dst, "accumulates, never overwrites")

	assert.Panics(t, func() { BroadcastAddLastDim(dst, []float64{1}, 3) })
}

func TestSumAndBroadcastAdd(t *testing.T) {
	assert.Equal(t, float32(10), Sum([]float32{1, 2, 3, 4}))

	dst := []float32{1, 2}
	BroadcastAdd(dst, 3)
	assert.Equal(t, []float32{4, 5}, dst)
}

func TestElementwise(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}
	assert.Equal(t, []float64{5, 7, 9}, Add(a, b))
	assert.Equal(t, []float64{-3, -3, -3}, Sub(a, b))
	assert.Equal(t, []float64{4, 10, 18}, Mul(a, b))
	assert.Equal(t, []float64{2, 4, 6}, Scale(a, 2))
	assert.InDelta(t, 2.718281828, Exp([]float64{1})[0], 1e-9)

	assert.Panics(t, func() { Add(a, []float64{1}) })

	dst := []float64{1, 1, 1}
	AddScaledInto(dst, a, -1)
	assert.Equal(t, []float64{0, -1, -2}, dst)
	MulAddInto(dst, a, b)
	assert.Equal(t, []float64{4, 9, 16}, dst)
}
