package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-conv2d/grid"
	"github.com/cwbudde/algo-conv2d/internal/parallel"
	"github.com/cwbudde/algo-conv2d/kernel"
)

// Errors returned by the convolution entry points.
var (
	ErrEmptyInput        = errors.New("conv: input grid has zero width or height")
	ErrEmptyKernel       = errors.New("conv: kernel has zero width or height")
	ErrDimensionMismatch = errors.New("conv: output dimensions must equal input dimensions")
)

// Convolve convolves src with k and returns a freshly allocated output
// grid of the same kind and dimensions as src.
func Convolve[V grid.Value[V]](src grid.Source[V], k *kernel.Kernel, opts ...Option) (grid.Mutable[V], error) {
	width, height := src.Dims()
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyInput
	}
	if err := validateKernel(k); err != nil {
		return nil, err
	}

	dst := src.NewLike(width, height)
	if err := ConvolveTo(dst, src, k, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// ConvolveTo convolves src with k into dst, which must already have
// src's dimensions. On any error no cell of dst is written. This is
// the form to use when reusing an output buffer across repeated
// convolutions.
func ConvolveTo[V grid.Value[V]](dst grid.Mutable[V], src grid.Grid[V], k *kernel.Kernel, opts ...Option) error {
	width, height := src.Dims()
	if width <= 0 || height <= 0 {
		return ErrEmptyInput
	}
	if err := validateKernel(k); err != nil {
		return err
	}
	if dw, dh := dst.Dims(); dw != width || dh != height {
		return ErrDimensionMismatch
	}

	cfg := applyOptions(opts)

	var zero V
	channels := zero.Channels()
	anchorRow, anchorCol := k.Anchor()

	pcfg := parallel.DefaultConfig()
	pcfg.MinPerWorker = cfg.minRowsPerWorker
	if cfg.workers > 0 {
		pcfg.Workers = cfg.workers
	}
	if cfg.sequential {
		pcfg.Workers = 1
	}

	parallel.Ranges(height, pcfg, func(start, end int) {
		// Scratch is per goroutine; rows in [start, end) are this
		// goroutine's exclusive output slice.
		acc := make([]float64, width*channels)
		tap := make([]float64, width*channels)
		lanes := make([]float64, channels)
		for row := start; row < end; row++ {
			convolveRow(dst, src, k, row, channels, anchorRow, anchorCol, acc, tap, lanes)
		}
	})
	return nil
}

// convolveRow accumulates one output row. For each kernel tap it
// gathers the edge-clamped input row promoted to float64 lanes and
// adds the weighted row into acc, then narrows each cell once.
func convolveRow[V grid.Value[V]](
	dst grid.Mutable[V], src grid.Grid[V], k *kernel.Kernel,
	row, channels, anchorRow, anchorCol int,
	acc, tap, lanes []float64,
) {
	width, height := src.Dims()
	kw, kh := k.Dims()

	clear(acc)
	for kr := 0; kr < kh; kr++ {
		srcRow := clampIndex(row+kr-anchorRow, height)
		for kc := 0; kc < kw; kc++ {
			weight := k.At(kr, kc)
			if weight == 0 {
				continue
			}

			for c := 0; c < width; c++ {
				srcCol := clampIndex(c+kc-anchorCol, width)
				src.At(srcRow, srcCol).Lanes(lanes)
				copy(tap[c*channels:(c+1)*channels], lanes)
			}

			// acc += weight * tap
			vecmath.ScaleBlock(tap, tap, weight)
			vecmath.AddBlockInPlace(acc, tap)
		}
	}

	var zero V
	for c := 0; c < width; c++ {
		dst.Set(row, c, zero.FromLanes(acc[c*channels:(c+1)*channels]))
	}
}

func validateKernel(k *kernel.Kernel) error {
	if k == nil {
		return ErrEmptyKernel
	}
	if kw, kh := k.Dims(); kw <= 0 || kh <= 0 {
		return ErrEmptyKernel
	}
	return nil
}

// clampIndex clamps i to [0, n), the edge-replication border policy.
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
