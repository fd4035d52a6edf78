package nn

import (
	"github.com/born-ml/tapegrad/internal/autodiff"
	"github.com/born-ml/tapegrad/internal/backend/cpu"
	"github.com/born-ml/tapegrad/internal/tensor"
	"github.com/pkg/errors"
)

// Upscale2D resizes images to a fixed output size.
//
// Upscale2D has no learnable parameters and is never mutated by training.
// The interpolation is selected by method (nearest neighbor by default).
//
// Input shape:  [channels, height, width] or [batch, channels, height, width]
// Output shape: [channels, outHeight, outWidth] or [batch, channels, outHeight, outWidth]
//
// Example:
//
//	up := must.M1(nn.NewUpscale2D[float32, tensor.NoTape[float32]](8, 12, nil))
//	out := up.Forward(tensor.Zeros[float32](tensor.Shape{3, 4, 4})) // [3, 8, 12]
//
// Build it with NewUpscale2D: the zero value has no output size and its
// Forward panics.
type Upscale2D[E tensor.Float, H tensor.TapeHolder[E]] struct {
	outHeight, outWidth int
	method              cpu.UpscaleMethod
}

// NewUpscale2D creates an Upscale2D with the given output size.
//
// Parameters:
//   - outHeight: output height (> 0)
//   - outWidth: output width; 0 means the same as outHeight
//   - method: interpolation method; nil means cpu.NearestNeighbor
func NewUpscale2D[E tensor.Float, H tensor.TapeHolder[E]](outHeight, outWidth int, method cpu.UpscaleMethod) (*Upscale2D[E, H], error) {
	if outWidth == 0 {
		outWidth = outHeight
	}
	if outHeight <= 0 || outWidth <= 0 {
		return nil, errors.Errorf("upscale2d: invalid output size %dx%d", outHeight, outWidth)
	}
	if method == nil {
		method = cpu.NearestNeighbor{}
	}
	return &Upscale2D[E, H]{
		outHeight: outHeight,
		outWidth:  outWidth,
		method:    method,
	}, nil
}

// Forward resizes input to the configured output size.
func (m *Upscale2D[E, H]) Forward(input *tensor.Tensor[E, H]) *tensor.Tensor[E, H] {
	return autodiff.Upscale2D(input, m.outHeight, m.outWidth, orNearest(m.method))
}

// OutputSize returns the configured output height and width.
func (m *Upscale2D[E, H]) OutputSize() (height, width int) {
	return m.outHeight, m.outWidth
}

// Method returns the interpolation method.
func (m *Upscale2D[E, H]) Method() cpu.UpscaleMethod {
	return orNearest(m.method)
}

// NonMutable implements NonMutableModule.
func (m *Upscale2D[E, H]) NonMutable() {}

// ZeroSized implements ZeroSizedModule.
func (m *Upscale2D[E, H]) ZeroSized() {}

// Upscale2DBy resizes images by fixed integer factors.
//
// Input shape:  [channels, height, width] or [batch, channels, height, width]
// Output shape: [channels, height*heightFactor, width*widthFactor] (batched likewise)
//
// Build it with NewUpscale2DBy: the zero value has no factors and its Forward
// panics.
type Upscale2DBy[E tensor.Float, H tensor.TapeHolder[E]] struct {
	heightFactor, widthFactor int
	method                    cpu.UpscaleMethod
}

// NewUpscale2DBy creates an Upscale2DBy with the given factors.
//
// Parameters:
//   - heightFactor: height factor (> 0)
//   - widthFactor: width factor; 0 means the same as heightFactor
//   - method: interpolation method; nil means cpu.NearestNeighbor
func NewUpscale2DBy[E tensor.Float, H tensor.TapeHolder[E]](heightFactor, widthFactor int, method cpu.UpscaleMethod) (*Upscale2DBy[E, H], error) {
	if widthFactor == 0 {
		widthFactor = heightFactor
	}
	if heightFactor <= 0 || widthFactor <= 0 {
		return nil, errors.Errorf("upscale2dby: invalid factors %dx%d", heightFactor, widthFactor)
	}
	if method == nil {
		method = cpu.NearestNeighbor{}
	}
	return &Upscale2DBy[E, H]{
		heightFactor: heightFactor,
		widthFactor:  widthFactor,
		method:       method,
	}, nil
}

// Forward resizes input by the configured factors.
func (m *Upscale2DBy[E, H]) Forward(input *tensor.Tensor[E, H]) *tensor.Tensor[E, H] {
	return autodiff.Upscale2DBy(input, m.heightFactor, m.widthFactor, orNearest(m.method))
}

// Factors returns the configured height and width factors.
func (m *Upscale2DBy[E, H]) Factors() (height, width int) {
	return m.heightFactor, m.widthFactor
}

// NonMutable implements NonMutableModule.
func (m *Upscale2DBy[E, H]) NonMutable() {}

// ZeroSized implements ZeroSizedModule.
func (m *Upscale2DBy[E, H]) ZeroSized() {}

func orNearest(method cpu.UpscaleMethod) cpu.UpscaleMethod {
	if method == nil {
		return cpu.NearestNeighbor{}
	}
	return method
}
