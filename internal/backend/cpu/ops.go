package cpu

import (
	"math"

	"github.com/born-ml/tapegrad/internal/tensor"
)

// Add returns a + b element-wise.
func Add[E tensor.Float](a, b []E) []E {
	mustSameLength("add", a, b)
	result := make([]E, len(a))
	for i := range a {
		result[i] = a[i] + b[i]
	}
	return result
}

// Sub returns a - b element-wise.
func Sub[E tensor.Float](a, b []E) []E {
	mustSameLength("sub", a, b)
	result := make([]E, len(a))
	for i := range a {
		result[i] = a[i] - b[i]
	}
	return result
}

// Mul returns a * b element-wise.
func Mul[E tensor.Float](a, b []E) []E {
	mustSameLength("mul", a, b)
	result := make([]E, len(a))
	for i := range a {
		result[i] = a[i] * b[i]
	}
	return result
}

// Scale returns x * s.
func Scale[E tensor.Float](x []E, s E) []E {
	result := make([]E, len(x))
	for i, v := range x {
		result[i] = v * s
	}
	return result
}

// Exp returns exp(x) element-wise.
func Exp[E tensor.Float](x []E) []E {
	result := make([]E, len(x))
	for i, v := range x {
		result[i] = E(math.Exp(float64(v)))
	}
	return result
}

// AddScaledInto accumulates dst += src * s.
func AddScaledInto[E tensor.Float](dst, src []E, s E) {
	mustSameLength("addscaled", dst, src)
	for i, v := range src {
		dst[i] += v * s
	}
}

// MulAddInto accumulates dst += a * b.
func MulAddInto[E tensor.Float](dst, a, b []E) {
	mustSameLength("muladd", dst, a)
	mustSameLength("muladd", dst, b)
	for i := range dst {
		dst[i] += a[i] * b[i]
	}
}
