// Package imageutil converts between standard library images and
// convolution grids.
//
// The adapters normalize any image.Image into an 8-bit RGBA or
// grayscale dense grid and back. For the usual preprocessing workflow
// (convolve in floating point, narrow once at the end) the package
// also provides [0, 1] float promotion helpers.
package imageutil

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/cwbudde/algo-conv2d/grid"
)

// FromRGBA converts img into a dense grid of 8-bit RGBA cells. The
// image is converted through NRGBA, so the bounds origin is
// normalized to (0, 0).
func FromRGBA(img image.Image) (*grid.Dense[grid.RGBA[uint8]], error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, grid.ErrInvalidDims
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Copy(nrgba, image.Point{}, img, bounds, draw.Src, nil)

	cells := make([]grid.RGBA[uint8], width*height)
	for i := range cells {
		o := i * 4
		cells[i] = grid.RGBA[uint8]{nrgba.Pix[o], nrgba.Pix[o+1], nrgba.Pix[o+2], nrgba.Pix[o+3]}
	}
	return grid.NewDenseFrom(width, height, cells)
}

// ToRGBA converts a grid of 8-bit RGBA cells into an NRGBA image.
func ToRGBA(g grid.Grid[grid.RGBA[uint8]]) *image.NRGBA {
	width, height := g.Dims()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			p := g.At(r, c)
			o := r*img.Stride + c*4
			img.Pix[o] = p[0]
			img.Pix[o+1] = p[1]
			img.Pix[o+2] = p[2]
			img.Pix[o+3] = p[3]
		}
	}
	return img
}

// FromGray converts img into a dense grid of 8-bit grayscale cells.
func FromGray(img image.Image) (*grid.Dense[grid.Gray[uint8]], error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, grid.ErrInvalidDims
	}

	gray := image.NewGray(image.Rect(0, 0, width, height))
	draw.Copy(gray, image.Point{}, img, bounds, draw.Src, nil)

	cells := make([]grid.Gray[uint8], width*height)
	for i := range cells {
		cells[i] = grid.Gray[uint8]{gray.Pix[i]}
	}
	return grid.NewDenseFrom(width, height, cells)
}

// ToGray converts a grid of 8-bit grayscale cells into a Gray image.
func ToGray(g grid.Grid[grid.Gray[uint8]]) *image.Gray {
	width, height := g.Dims()
	img := image.NewGray(image.Rect(0, 0, width, height))
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			img.Pix[r*img.Stride+c] = g.At(r, c)[0]
		}
	}
	return img
}

// ToFloatRGBA promotes 8-bit RGBA cells to float64 lanes in [0, 1].
func ToFloatRGBA(src grid.Grid[grid.RGBA[uint8]]) *grid.Dense[grid.RGBA[float64]] {
	return grid.Map(src, func(p grid.RGBA[uint8]) grid.RGBA[float64] {
		var out grid.RGBA[float64]
		for i, v := range p {
			out[i] = float64(v) / 255
		}
		return out
	})
}

// FromFloatRGBA narrows [0, 1] float lanes back to 8 bits, rounding to
// nearest and clamping out-of-range values.
func FromFloatRGBA(src grid.Grid[grid.RGBA[float64]]) *grid.Dense[grid.RGBA[uint8]] {
	return grid.Map(src, func(p grid.RGBA[float64]) grid.RGBA[uint8] {
		var lanes [4]float64
		for i, v := range p {
			lanes[i] = v * 255
		}
		return grid.RGBA[uint8]{}.FromLanes(lanes[:])
	})
}

// ToFloatGray promotes 8-bit grayscale cells to float64 lanes in [0, 1].
func ToFloatGray(src grid.Grid[grid.Gray[uint8]]) *grid.Dense[grid.Gray[float64]] {
	return grid.Map(src, func(p grid.Gray[uint8]) grid.Gray[float64] {
		return grid.Gray[float64]{float64(p[0]) / 255}
	})
}

// FromFloatGray narrows [0, 1] float lanes back to 8 bits, rounding to
// nearest and clamping out-of-range values.
func FromFloatGray(src grid.Grid[grid.Gray[float64]]) *grid.Dense[grid.Gray[uint8]] {
	return grid.Map(src, func(p grid.Gray[float64]) grid.Gray[uint8] {
		return grid.Gray[uint8]{}.FromLanes([]float64{p[0] * 255})
	})
}
