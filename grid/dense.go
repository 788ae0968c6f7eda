package grid

import "errors"

// Errors returned by the dense grid constructors.
var (
	ErrInvalidDims  = errors.New("grid: width and height must be > 0")
	ErrBufferLength = errors.New("grid: buffer length must equal width*height")
)

// Dense is a grid backed by a single flat row-major buffer that it
// owns. It is the default production grid: reads never mutate, so a
// Dense may be read concurrently from multiple goroutines.
type Dense[V any] struct {
	width  int
	height int
	data   []V
}

// NewDense returns a zeroed width x height dense grid.
func NewDense[V any](width, height int) (*Dense[V], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDims
	}
	return &Dense[V]{
		width:  width,
		height: height,
		data:   make([]V, width*height),
	}, nil
}

// NewDenseFrom wraps a caller-supplied row-major buffer without
// copying. The grid aliases data, so the caller keeps allocation
// control; this is the path to use when no fresh allocation is wanted.
func NewDenseFrom[V any](width, height int, data []V) (*Dense[V], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDims
	}
	if len(data) != width*height {
		return nil, ErrBufferLength
	}
	return &Dense[V]{width: width, height: height, data: data}, nil
}

// Dims returns the width and height of the grid.
func (g *Dense[V]) Dims() (width, height int) {
	return g.width, g.height
}

// At returns the value at the given row and column. Access is
// unchecked beyond the slice bounds themselves.
func (g *Dense[V]) At(row, col int) V {
	return g.data[row*g.width+col]
}

// Set stores value at the given row and column.
func (g *Dense[V]) Set(row, col int, value V) {
	g.data[row*g.width+col] = value
}

// NewLike returns a zeroed dense grid with the given dimensions.
func (g *Dense[V]) NewLike(width, height int) Mutable[V] {
	return &Dense[V]{
		width:  width,
		height: height,
		data:   make([]V, width*height),
	}
}

// Data returns the underlying row-major buffer. Mutating it mutates
// the grid.
func (g *Dense[V]) Data() []V {
	return g.data
}

// Fill sets every cell to value.
func (g *Dense[V]) Fill(value V) {
	for i := range g.data {
		g.data[i] = value
	}
}
