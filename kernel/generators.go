package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Identity returns the 1x1 kernel with the single weight 1. Convolving
// with it leaves the input unchanged.
func Identity() *Kernel {
	return square(1, []float64{1})
}

// Box returns a size x size blur kernel where every weight equals
// 1/(size*size). size must be odd and > 0.
func Box(size int) (*Kernel, error) {
	if err := validateOddSize(size); err != nil {
		return nil, err
	}

	weights := make([]float64, size*size)
	w := 1 / float64(size*size)
	for i := range weights {
		weights[i] = w
	}
	return square(size, weights), nil
}

// Gaussian returns a size x size blur kernel whose weight at offset
// (r, c) from the center is proportional to exp(-(r²+c²)/(2σ²)),
// normalized to sum to 1. size must be odd and > 0, sigma must be > 0.
func Gaussian(size int, sigma float64) (*Kernel, error) {
	if err := validateGaussian(size, sigma); err != nil {
		return nil, err
	}

	center := float64(size / 2)
	coefficient := -0.5 / (sigma * sigma)

	weights := make([]float64, size*size)
	for i := range weights {
		r := float64(i/size) - center
		c := float64(i%size) - center
		weights[i] = math.Exp((r*r + c*c) * coefficient)
	}

	if sum := floats.Sum(weights); sum > 0 {
		floats.Scale(1/sum, weights)
	}
	return square(size, weights), nil
}

// SobelX returns the 3x3 horizontal-gradient Sobel kernel.
func SobelX() *Kernel {
	return square(3, []float64{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	})
}

// SobelY returns the 3x3 vertical-gradient Sobel kernel.
func SobelY() *Kernel {
	return square(3, []float64{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	})
}

// LaplacianCross returns the 4-neighborhood Laplacian kernel.
func LaplacianCross() *Kernel {
	return square(3, []float64{
		0, 1, 0,
		1, -4, 1,
		0, 1, 0,
	})
}

// LaplacianFull returns the 8-neighborhood Laplacian kernel.
func LaplacianFull() *Kernel {
	return square(3, []float64{
		1, 1, 1,
		1, -8, 1,
		1, 1, 1,
	})
}

// Sharpen returns a 3x3 sharpening kernel (identity plus Laplacian
// cross).
func Sharpen() *Kernel {
	return square(3, []float64{
		0, -1, 0,
		-1, 5, -1,
		0, -1, 0,
	})
}

// Emboss returns a 3x3 directional emboss kernel.
func Emboss() *Kernel {
	return square(3, []float64{
		-2, -1, 0,
		-1, 1, 1,
		0, 1, 2,
	})
}
