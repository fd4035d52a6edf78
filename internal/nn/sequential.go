package nn

import (
	"fmt"

	"github.com/born-ml/tapegrad/internal/tensor"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input, and the tape flows
// through the whole chain.
//
// Example:
//
//	model := nn.NewSequential[float32, tensor.WithTape[float32]](
//	    must.M1(nn.NewUpscale2D[float32, tensor.WithTape[float32]](8, 8, cpu.NearestNeighbor{})),
//	    must.M1(nn.NewUpscale2DBy[float32, tensor.WithTape[float32]](2, 2, cpu.Bilinear{})),
//	)
//
//	output := model.Forward(input)
type Sequential[E tensor.Float, H tensor.TapeHolder[E]] struct {
	modules []Module[E, H]
}

// NewSequential creates a new Sequential container.
func NewSequential[E tensor.Float, H tensor.TapeHolder[E]](modules ...Module[E, H]) *Sequential[E, H] {
	return &Sequential[E, H]{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
func (s *Sequential[E, H]) Forward(input *tensor.Tensor[E, H]) *tensor.Tensor[E, H] {
	output := input

	for _, module := range s.modules {
		output = module.Forward(output)
	}

	return output
}

// Add appends a module to the sequence.
func (s *Sequential[E, H]) Add(module Module[E, H]) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential[E, H]) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential[E, H]) Module(index int) Module[E, H] {
	if index < 0 || index >= len(s.modules) {
		panic(fmt.Sprintf("Sequential.Module: index %d out of bounds [0, %d)", index, len(s.modules)))
	}
	return s.modules[index]
}

// AllNonMutable reports whether every contained module is a NonMutableModule.
func (s *Sequential[E, H]) AllNonMutable() bool {
	for _, m := range s.modules {
		if _, ok := m.(NonMutableModule); !ok {
			return false
		}
	}
	return true
}
