// Command blur applies a Gaussian blur to a PNG image.
//
// Usage:
//
//	blur [flags] input.png
//
// Examples:
//
//	blur photo.png
//	blur -size 9 -sigma 3 -o blurred.png photo.png
//	blur -sequential photo.png
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/cwbudde/algo-conv2d/conv"
	"github.com/cwbudde/algo-conv2d/grid"
	"github.com/cwbudde/algo-conv2d/imageutil"
	"github.com/cwbudde/algo-conv2d/kernel"
)

func main() {
	size := flag.Int("size", 5, "kernel size (odd, > 0)")
	sigma := flag.Float64("sigma", 1.0, "gaussian standard deviation")
	output := flag.String("o", "output.png", "output file")
	sequential := flag.Bool("sequential", false, "disable parallel row dispatch")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: blur [flags] input.png")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *output, *size, *sigma, *sequential); err != nil {
		fmt.Fprintln(os.Stderr, "blur:", err)
		os.Exit(1)
	}
}

func run(input, output string, size int, sigma float64, sequential bool) error {
	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", input, err)
	}

	pixels, err := imageutil.FromRGBA(img)
	if err != nil {
		return err
	}
	floats := imageutil.ToFloatRGBA(pixels)

	kgStart := time.Now()
	k, err := kernel.Gaussian(size, sigma)
	if err != nil {
		return err
	}
	kernelTime := time.Since(kgStart)

	var opts []conv.Option
	if sequential {
		opts = append(opts, conv.WithSequential())
	}

	cvStart := time.Now()
	blurred, err := conv.Convolve[grid.RGBA[float64]](floats, k, opts...)
	if err != nil {
		return err
	}
	convTime := time.Since(cvStart)

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := png.Encode(out, imageutil.ToRGBA(imageutil.FromFloatRGBA(blurred))); err != nil {
		return fmt.Errorf("encode %s: %w", output, err)
	}

	fmt.Printf("Kernel generation time: %.3fms\n", kernelTime.Seconds()*1e3)
	fmt.Printf("Convolution time: %.3fms\n", convTime.Seconds()*1e3)
	return nil
}
