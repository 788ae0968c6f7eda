// Package conv performs same-size 2D convolution of grids with
// floating-point weight kernels.
//
// Two entry points differ only in output ownership:
//
//   - [Convolve] allocates a fresh output grid via the input's
//     self-construction capability and returns it.
//   - [ConvolveTo] writes into a caller-provided output grid of the
//     same dimensions, for reuse across repeated convolutions.
//
// # Semantics
//
// For every output coordinate (r, c) the engine computes the weighted
// sum over all kernel offsets (kr, kc) of
//
//	input(clamp(r+kr-anchorRow), clamp(c+kc-anchorCol)) * kernel(kr, kc)
//
// Coordinates falling outside the input are clamped to the nearest
// valid edge coordinate (edge replication), so the output always has
// the input's dimensions and edges avoid the darkening artifact that
// zero padding would introduce. Accumulation runs in float64 lanes
// regardless of the channel storage type and narrows back exactly once
// per output cell.
//
// # Parallelism
//
// Output rows are split into disjoint contiguous chunks, one goroutine
// per chunk, joined before the call returns. No two goroutines write
// the same output cell and the input grid and kernel are read-only for
// the duration of the call, so no synchronization is needed beyond the
// join barrier. The input grid's At must be safe for concurrent reads
// ([grid.Dense] is, since reads never mutate). Sequential and parallel
// execution produce identical results; use [WithSequential] to force a
// single goroutine.
//
// # Overflow
//
// Narrow integral channel types saturate at the lane range when the
// accumulated sum is narrowed. Callers needing headroom should convolve
// in a wider or floating-point channel type (see [grid.Map]) and narrow
// afterwards.
package conv
