package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-conv2d/conv"
	"github.com/cwbudde/algo-conv2d/grid"
	"github.com/cwbudde/algo-conv2d/kernel"
)

func ExampleConvolve() {
	// A bright spot in the top-left corner of an otherwise flat image.
	img, _ := grid.NewDenseFrom(3, 3, []grid.Gray[float64]{
		{9}, {1}, {1},
		{1}, {1}, {1},
		{1}, {1}, {1},
	})

	k, _ := kernel.Box(3)

	out, _ := conv.Convolve[grid.Gray[float64]](img, k)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if c > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%.2f", out.At(r, c)[0])
		}
		fmt.Println()
	}

	// Output:
	// 4.56 2.78 1.00
	// 2.78 1.89 1.00
	// 1.00 1.00 1.00
}

func ExampleConvolveTo() {
	img, _ := grid.NewDenseFrom(4, 1, []grid.Gray[float64]{
		{0}, {3}, {0}, {0},
	})

	// Horizontal smoothing kernel.
	k, _ := kernel.New(3, 1, []float64{0.25, 0.5, 0.25})

	// Reuse one output buffer across calls (e.g. video frames).
	out, _ := grid.NewDense[grid.Gray[float64]](4, 1)
	_ = conv.ConvolveTo[grid.Gray[float64]](out, img, k)

	for c := 0; c < 4; c++ {
		if c > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%.2f", out.At(0, c)[0])
	}
	fmt.Println()

	// Output:
	// 0.75 1.50 0.75 0.00
}
