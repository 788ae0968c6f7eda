// Package kernel provides the convolution kernel type and generators
// for well-known image filters.
//
// A kernel is a small grid of float64 weights with an anchor cell: the
// cell aligned with the output coordinate being computed. The built-in
// generators all produce odd, square kernels whose anchor is the
// geometric center. Custom kernels with even dimensions are accepted;
// their anchor is defined by floor division of the dimensions.
//
// Blur kernels ([Box], [Gaussian]) are normalized so their weights sum
// to 1. Edge-detection kernels ([SobelX], [SobelY], [LaplacianCross],
// [LaplacianFull]) are not normalized and may sum to 0.
package kernel

import "gonum.org/v1/gonum/floats"

// Kernel is a read-only grid of convolution weights.
type Kernel struct {
	width   int
	height  int
	weights []float64
}

// New builds a kernel from a row-major weight slice. The slice is used
// directly, not copied.
func New(width, height int, weights []float64) (*Kernel, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDims
	}
	if len(weights) != width*height {
		return nil, ErrWeightsLength
	}
	return &Kernel{width: width, height: height, weights: weights}, nil
}

// Width returns the kernel width.
func (k *Kernel) Width() int { return k.width }

// Height returns the kernel height.
func (k *Kernel) Height() int { return k.height }

// Dims returns the kernel width and height.
func (k *Kernel) Dims() (width, height int) { return k.width, k.height }

// At returns the weight at the given row and column. Coordinates must
// be in range.
func (k *Kernel) At(row, col int) float64 {
	return k.weights[row*k.width+col]
}

// Anchor returns the kernel cell aligned with the output coordinate:
// the center for odd dimensions, floor division for even ones.
func (k *Kernel) Anchor() (row, col int) {
	return k.height / 2, k.width / 2
}

// Weights returns the row-major weight slice.
func (k *Kernel) Weights() []float64 { return k.weights }

// Sum returns the sum of all weights. Normalized blur kernels sum to 1
// within floating-point tolerance.
func (k *Kernel) Sum() float64 {
	return floats.Sum(k.weights)
}

// square is the constructor used by the generators; dimensions are
// already validated.
func square(size int, weights []float64) *Kernel {
	return &Kernel{width: size, height: size, weights: weights}
}
