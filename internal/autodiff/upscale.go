package autodiff

import (
	"github.com/born-ml/tapegrad/internal/autodiff/ops"
	"github.com/born-ml/tapegrad/internal/backend/cpu"
	"github.com/born-ml/tapegrad/internal/tensor"
	"github.com/gomlx/exceptions"
)

// Upscale2D resizes the last two dimensions of t to outHeight x outWidth
// using method.
//
// Input shape:  [C, H, W] or [B, C, H, W]
// Output shape: [C, outHeight, outWidth] or [B, C, outHeight, outWidth].
//
// The operation has no parameters; on a traced tensor its backward scatters the
// output gradient with the interpolation weights.
func Upscale2D[E tensor.Float, H tensor.TapeHolder[E]](t *tensor.Tensor[E, H], outHeight, outWidth int, method cpu.UpscaleMethod) *tensor.Tensor[E, H] {
	shape := t.Shape()
	outShape := cpu.Upscale2DShape(shape, outHeight, outWidth)
	result := tensor.FromOwned[E, H](cpu.Upscale2D(t.Data(), shape, outHeight, outWidth, method), outShape)
	return moveTapeAndAddBackwardOp(t, result, func() tensor.Operation[E] {
		return ops.NewUpscale2DOp[E](t.ID(), shape, result.ID(), outShape, method)
	})
}

// Upscale2DBy resizes the last two dimensions of t by integer factors:
// H x W becomes (H*heightFactor) x (W*widthFactor).
func Upscale2DBy[E tensor.Float, H tensor.TapeHolder[E]](t *tensor.Tensor[E, H], heightFactor, widthFactor int, method cpu.UpscaleMethod) *tensor.Tensor[E, H] {
	shape := t.Shape()
	if shape.Rank() != 3 && shape.Rank() != 4 {
		exceptions.Panicf("upscale2dby: expected 3D [C,H,W] or 4D [B,C,H,W] input, got %dD", shape.Rank())
	}
	if heightFactor <= 0 || widthFactor <= 0 {
		exceptions.Panicf("upscale2dby: invalid factors %dx%d", heightFactor, widthFactor)
	}
	h, w := shape[shape.Rank()-2], shape[shape.Rank()-1]
	return Upscale2D(t, h*heightFactor, w*widthFactor, method)
}
