package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/tapegrad/internal/parallel"
	"github.com/born-ml/tapegrad/internal/tensor"
)

// Tap is one weighted input position contributing to an output position
// along a single axis.
type Tap struct {
	Index  int
	Weight float64
}

// UpscaleMethod selects how an output position samples the input along one
// axis. 2D upscaling applies it separably to height and width, and the
// backward pass scatters with the same weights.
type UpscaleMethod interface {
	// Name returns the method name, e.g. "nearest".
	Name() string

	// Taps returns the input positions (in [0, inSize)) and weights that
	// produce output position out, for an axis resized from inSize to outSize.
	Taps(out, inSize, outSize int) []Tap
}

// NearestNeighbor copies the input position at floor(out*inSize/outSize).
type NearestNeighbor struct{}

// Name implements UpscaleMethod.
func (NearestNeighbor) Name() string { return "nearest" }

// Taps implements UpscaleMethod.
func (NearestNeighbor) Taps(out, inSize, outSize int) []Tap {
	idx := out * inSize / outSize
	if idx >= inSize {
		idx = inSize - 1
	}
	return []Tap{{Index: idx, Weight: 1}}
}

// Bilinear interpolates linearly between the two nearest input positions,
// aligning the corner pixels of input and output.
type Bilinear struct{}

// Name implements UpscaleMethod.
func (Bilinear) Name() string { return "bilinear" }

// Taps implements UpscaleMethod.
func (Bilinear) Taps(out, inSize, outSize int) []Tap {
	if inSize == 1 || outSize == 1 {
		return []Tap{{Index: 0, Weight: 1}}
	}
	pos := float64(out) * float64(inSize-1) / float64(outSize-1)
	i0 := int(math.Floor(pos))
	if i0 >= inSize-1 {
		return []Tap{{Index: inSize - 1, Weight: 1}}
	}
	frac := pos - float64(i0)
	if frac == 0 {
		return []Tap{{Index: i0, Weight: 1}}
	}
	return []Tap{{Index: i0, Weight: 1 - frac}, {Index: i0 + 1, Weight: frac}}
}

// Upscale2DShape returns shape with its last two dimensions replaced by
// outHeight and outWidth. shape must be [C, H, W] or [B, C, H, W].
func Upscale2DShape(shape tensor.Shape, outHeight, outWidth int) tensor.Shape {
	if shape.Rank() != 3 && shape.Rank() != 4 {
		panic(fmt.Sprintf("upscale2d: expected 3D [C,H,W] or 4D [B,C,H,W] input, got %dD", shape.Rank()))
	}
	if outHeight <= 0 || outWidth <= 0 {
		panic(fmt.Sprintf("upscale2d: invalid output size %dx%d", outHeight, outWidth))
	}
	out := shape.Clone()
	out[len(out)-2] = outHeight
	out[len(out)-1] = outWidth
	return out
}

// Upscale2D resizes the last two dimensions of src to outHeight x outWidth.
//
// Input shape:  [C, H, W] or [B, C, H, W]
// Output shape: [C, outHeight, outWidth] or [B, C, outHeight, outWidth].
func Upscale2D[E tensor.Float](src []E, shape tensor.Shape, outHeight, outWidth int, method UpscaleMethod) []E {
	outShape := Upscale2DShape(shape, outHeight, outWidth)
	if len(src) != shape.NumElements() {
		panic(fmt.Sprintf("upscale2d: shape %v requires %d elements, got %d", shape, shape.NumElements(), len(src)))
	}

	inH, inW := shape[shape.Rank()-2], shape[shape.Rank()-1]
	rows := axisTaps(method, inH, outHeight)
	cols := axisTaps(method, inW, outWidth)
	planes := shape.NumElements() / (inH * inW)

	result := make([]E, outShape.NumElements())
	parallel.For(planes, outHeight*outWidth, parallel.DefaultConfig(), func(start, end int) {
		for p := start; p < end; p++ {
			in := src[p*inH*inW : (p+1)*inH*inW]
			out := result[p*outHeight*outWidth : (p+1)*outHeight*outWidth]
			for y, ry := range rows {
				for x, cx := range cols {
					var acc float64
					for _, ty := range ry {
						for _, tx := range cx {
							acc += ty.Weight * tx.Weight * float64(in[ty.Index*inW+tx.Index])
						}
					}
					out[y*outWidth+x] = E(acc)
				}
			}
		}
	})
	return result
}

// Upscale2DBackward accumulates into inGrad (shape) the gradient of an
// Upscale2D whose output gradient is outGrad. Every output gradient is
// scattered to the input positions it was sampled from, with the same weights.
func Upscale2DBackward[E tensor.Float](inGrad []E, shape tensor.Shape, outGrad []E, outHeight, outWidth int, method UpscaleMethod) {
	outShape := Upscale2DShape(shape, outHeight, outWidth)
	if len(inGrad) != shape.NumElements() || len(outGrad) != outShape.NumElements() {
		panic(fmt.Sprintf("upscale2d backward: buffers of %d/%d elements do not match shapes %v/%v",
			len(inGrad), len(outGrad), shape, outShape))
	}

	inH, inW := shape[shape.Rank()-2], shape[shape.Rank()-1]
	rows := axisTaps(method, inH, outHeight)
	cols := axisTaps(method, inW, outWidth)
	planes := shape.NumElements() / (inH * inW)

	// Planes are disjoint, so they can be scattered concurrently.
	parallel.For(planes, outHeight*outWidth, parallel.DefaultConfig(), func(start, end int) {
		for p := start; p < end; p++ {
			in := inGrad[p*inH*inW : (p+1)*inH*inW]
			out := outGrad[p*outHeight*outWidth : (p+1)*outHeight*outWidth]
			for y, ry := range rows {
				for x, cx := range cols {
					g := float64(out[y*outWidth+x])
					for _, ty := range ry {
						for _, tx := range cx {
							in[ty.Index*inW+tx.Index] += E(ty.Weight * tx.Weight * g)
						}
					}
				}
			}
		}
	})
}

func axisTaps(method UpscaleMethod, inSize, outSize int) [][]Tap {
	taps := make([][]Tap, outSize)
	for o := range taps {
		taps[o] = method.Taps(o, inSize, outSize)
	}
	return taps
}
