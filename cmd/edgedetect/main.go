// Command edgedetect runs an edge-detection kernel over a grayscale
// rendition of a PNG image.
//
// Usage:
//
//	edgedetect [flags] input.png
//
// Examples:
//
//	edgedetect -kernel sobel_x photo.png
//	edgedetect -kernel laplacian_full -o edges.png photo.png
package main

import (
	"flag"
	"fmt"
	"image/png"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/cwbudde/algo-conv2d/conv"
	"github.com/cwbudde/algo-conv2d/grid"
	"github.com/cwbudde/algo-conv2d/imageutil"
	"github.com/cwbudde/algo-conv2d/kernel"
)

var kernels = map[string]func() *kernel.Kernel{
	"sobel_x":         kernel.SobelX,
	"sobel_y":         kernel.SobelY,
	"laplacian_cross": kernel.LaplacianCross,
	"laplacian_full":  kernel.LaplacianFull,
	"emboss":          kernel.Emboss,
	"sharpen":         kernel.Sharpen,
}

func kernelNames() string {
	names := make([]string, 0, len(kernels))
	for name := range kernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func main() {
	name := flag.String("kernel", "sobel_x", "kernel name ("+kernelNames()+")")
	output := flag.String("o", "output.png", "output file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: edgedetect [flags] input.png")
		flag.PrintDefaults()
		os.Exit(2)
	}

	gen, ok := kernels[*name]
	if !ok {
		fmt.Fprintf(os.Stderr, "edgedetect: unknown kernel %q (have %s)\n", *name, kernelNames())
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *output, gen()); err != nil {
		fmt.Fprintln(os.Stderr, "edgedetect:", err)
		os.Exit(1)
	}
}

func run(input, output string, k *kernel.Kernel) error {
	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", input, err)
	}

	pixels, err := imageutil.FromGray(img)
	if err != nil {
		return err
	}
	floats := imageutil.ToFloatGray(pixels)

	start := time.Now()
	edges, err := conv.Convolve[grid.Gray[float64]](floats, k)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	// Gradient responses are signed; display their magnitude.
	magnitude := grid.Map(edges, func(p grid.Gray[float64]) grid.Gray[float64] {
		return grid.Gray[float64]{math.Abs(p[0])}
	})

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := png.Encode(out, imageutil.ToGray(imageutil.FromFloatGray(magnitude))); err != nil {
		return fmt.Errorf("encode %s: %w", output, err)
	}

	fmt.Printf("Convolution time: %.3fms\n", elapsed.Seconds()*1e3)
	return nil
}
