package cpu

import (
	"fmt"

	"github.com/born-ml/tapegrad/internal/tensor"
)

// ReduceLastDim folds the last dimension of data with f.
//
// The result has shape shape.ReduceLast(). A scalar is its own degenerate
// last dimension: the result is a copy of the single element.
//
// Example:
//
//	out := cpu.ReduceLastDim([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, add)
//	// out = [6, 15]
func ReduceLastDim[E tensor.Float](data []E, shape tensor.Shape, f func(acc, x E) E) []E {
	if len(data) != shape.NumElements() {
		panic(fmt.Sprintf("reducelastdim: shape %v requires %d elements, got %d", shape, shape.NumElements(), len(data)))
	}

	last := shape.LastDim()
	result := make([]E, len(data)/last)
	for i := range result {
		row := data[i*last : (i+1)*last]
		acc := row[0]
		for _, v := range row[1:] {
			acc = f(acc, v)
		}
		result[i] = acc
	}
	return result
}

// SumLastDim sums the last dimension of data.
func SumLastDim[E tensor.Float](data []E, shape tensor.Shape) []E {
	return ReduceLastDim(data, shape, func(acc, x E) E { return acc + x })
}

// Sum returns the sum of all elements.
func Sum[E tensor.Float](data []E) E {
	var sum E
	for _, v := range data {
		sum += v
	}
	return sum
}

// BroadcastAddLastDim adds src[i] to every element of row i of dst, where dst
// rows have length last. It is the backward of SumLastDim.
func BroadcastAddLastDim[E tensor.Float](dst, src []E, last int) {
	if len(dst) != len(src)*last {
		panic(fmt.Sprintf("broadcastadd: cannot broadcast %d elements over rows of %d into %d elements", len(src), last, len(dst)))
	}

	for i, g := range src {
		row := dst[i*last : (i+1)*last]
		for j := range row {
			row[j] += g
		}
	}
}

// BroadcastAdd adds v to every element of dst.
func BroadcastAdd[E tensor.Float](dst []E, v E) {
	for i := range dst {
		dst[i] += v
	}
}
