// Package cpu implements the numeric kernels used by differentiable operations.
//
// Every kernel works on raw, row-major buffers of a declared shape. Forward
// kernels allocate and return their result; backward kernels accumulate into a
// gradient buffer they are given and never overwrite it.
//
// Shape mismatches are programmer errors and panic.
package cpu

import (
	"fmt"

	"github.com/born-ml/tapegrad/internal/tensor"
)

// Name returns the backend name.
func Name() string {
	return "CPU"
}

func mustSameLength[E tensor.Float](op string, a, b []E) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("%s: buffer length mismatch: %d vs %d", op, len(a), len(b)))
	}
}
