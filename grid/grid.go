// Package grid defines the 2D grid contract consumed by the
// convolution engine, the channel value types stored in grid cells,
// and a dense owned-buffer grid implementation.
//
// Any data source can be convolved, or act as a convolution target, by
// implementing the small capability interfaces below. Grids are
// row-major and zero-indexed. Access is unchecked: callers must keep
// coordinates within 0 <= row < height and 0 <= col < width. The
// convolution engine clamps at the borders itself and never passes an
// out-of-range coordinate to a grid.
package grid

// Grid is the read-only capability: dimensions plus positional access.
type Grid[V any] interface {
	// Dims returns the width and height of the grid.
	Dims() (width, height int)

	// At returns the value stored at the given row and column.
	// Implementations may assume the coordinates are in range.
	At(row, col int) V
}

// Mutable extends Grid with positional writes.
type Mutable[V any] interface {
	Grid[V]

	// Set stores value at the given row and column.
	// Implementations may assume the coordinates are in range.
	Set(row, col int, value V)
}

// Maker can construct a fresh, zeroed grid of its own kind. The
// allocating convolution entry point uses this to produce a correctly
// typed output without knowing the concrete grid type.
type Maker[V any] interface {
	NewLike(width, height int) Mutable[V]
}

// Source is what the allocating convolution form consumes: a readable
// grid that can also construct its own output.
type Source[V any] interface {
	Grid[V]
	Maker[V]
}
