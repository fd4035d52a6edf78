// Package main provides the tapegrad CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/born-ml/tapegrad/autodiff"
	"github.com/born-ml/tapegrad/backend/cpu"
	"github.com/born-ml/tapegrad/nn"
	"github.com/born-ml/tapegrad/tensor"
	"github.com/dustin/go-humanize"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("tapegrad %s (backend %s)\n", version, cpu.Name())
	case "demo":
		if err := demo(os.Args[2:]); err != nil {
			klog.Errorf("demo: %+v", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("tapegrad - reverse-mode autodiff with tape-carrying tensors")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Run the gradient examples (-dtype, -method, -size)")
}

func demo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	dtype := fs.String("dtype", "float32", "element type: float32 or float64")
	methodName := fs.String("method", "nearest", "upscale interpolation: nearest or bilinear")
	size := fs.Int("size", 8, "upscale output height and width")
	klog.InitFlags(fs)
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "parsing flags")
	}
	defer klog.Flush()

	method, err := parseMethod(*methodName)
	if err != nil {
		return err
	}

	switch *dtype {
	case "float32":
		return runDemo[float32](method, *size)
	case "float64":
		return runDemo[float64](method, *size)
	default:
		return errors.Errorf("unknown -dtype %q, expected float32 or float64", *dtype)
	}
}

func parseMethod(name string) (cpu.UpscaleMethod, error) {
	switch name {
	case "nearest":
		return cpu.NearestNeighbor{}, nil
	case "bilinear":
		return cpu.Bilinear{}, nil
	default:
		return nil, errors.Errorf("unknown -method %q, expected nearest or bilinear", name)
	}
}

func runDemo[E tensor.Float](method cpu.UpscaleMethod, size int) error {
	// Reduction round trip: mean(sum_last_dim(x)) over a 2x3 matrix.
	x, err := tensor.FromSlice([]E{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	if err != nil {
		return err
	}
	rows := autodiff.SumLastDim(x.Trace())
	fmt.Printf("sum_last_dim(x) = %v\n", rows.Data())
	loss := autodiff.Mean(rows)
	report("mean(sum_last_dim(x))", loss, x)

	// Composition: mean(exp(sum_last_dim(v))).
	v := must.M1(tensor.FromSlice([]E{1, 2, 3}, tensor.Shape{3}))
	loss = autodiff.Mean(autodiff.Exp(autodiff.SumLastDim(v.Trace())))
	report("mean(exp(sum_last_dim(v)))", loss, v)

	// Upscale through a module chain.
	img := tensor.Ones[E](tensor.Shape{3, 4, 4})
	model := nn.NewSequential[E, tensor.WithTape[E]](
		must.M1(nn.NewUpscale2D[E, tensor.WithTape[E]](size, size, method)),
	)
	up := model.Forward(img.Trace())
	fmt.Printf("upscale %v -> %v (%s)\n", img.Shape(), up.Shape(), method.Name())
	report("mean(upscale(img))", autodiff.Mean(up), img)
	return nil
}

func report[E tensor.Float](name string, loss *tensor.Tensor[E, tensor.WithTape[E]], wrt *tensor.Tensor[E, tensor.NoTape[E]]) {
	ops := loss.Holder().Tape().NumOps()
	value := loss.Item()
	grads := autodiff.Backward(loss)
	g := autodiff.Grad(grads, wrt)

	fmt.Printf("%s = %v\n", name, value)
	fmt.Printf("  tape: %d operations, gradients: %d buffers, %s\n",
		ops, grads.Len(), humanize.Bytes(uint64(grads.Bytes())))
	if len(g) > 8 {
		fmt.Printf("  grad: %v ... (%d elements)\n", g[:8], len(g))
	} else {
		fmt.Printf("  grad: %v\n", g)
	}
	klog.V(1).Infof("%s: half-precision gradient %v", name, grads.Half(wrt.ID()))
}
