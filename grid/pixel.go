package grid

import "math"

// Channel is the set of numeric types usable as a channel lane.
type Channel interface {
	uint8 | uint16 | int16 | int32 | float32 | float64
}

// Value is the contract a cell type must satisfy to be convolved.
//
// The engine accumulates weighted sums in float64 lanes regardless of
// the storage type and narrows back exactly once per output cell, so
// integral channel types see a single round-and-clamp instead of
// per-tap truncation.
type Value[V any] interface {
	// Channels returns the number of lanes. Must be constant for the
	// type and callable on the zero value.
	Channels() int

	// Lanes writes the lanes, promoted to float64, into dst.
	// dst must have at least Channels() elements.
	Lanes(dst []float64)

	// FromLanes returns a value with the given float64 lanes narrowed
	// to the storage type. src must have at least Channels() elements.
	FromLanes(src []float64) V
}

// narrow converts x to lane type T. Integral lane types round to
// nearest and saturate at the type's range; floating types convert
// directly.
func narrow[T Channel](x float64) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return T(clampRound(x, 0, math.MaxUint8))
	case uint16:
		return T(clampRound(x, 0, math.MaxUint16))
	case int16:
		return T(clampRound(x, math.MinInt16, math.MaxInt16))
	case int32:
		return T(clampRound(x, math.MinInt32, math.MaxInt32))
	default:
		return T(x)
	}
}

func clampRound(x, lo, hi float64) float64 {
	x = math.Round(x)
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Gray is a single-channel cell value.
type Gray[T Channel] [1]T

func (p Gray[T]) Channels() int { return 1 }

func (p Gray[T]) Lanes(dst []float64) { dst[0] = float64(p[0]) }

func (p Gray[T]) FromLanes(src []float64) Gray[T] {
	return Gray[T]{narrow[T](src[0])}
}

// Add returns the lane-wise sum of p and q.
func (p Gray[T]) Add(q Gray[T]) Gray[T] {
	return Gray[T]{p[0] + q[0]}
}

// Scale multiplies each lane by w, narrowing back to the lane type.
func (p Gray[T]) Scale(w float64) Gray[T] {
	return Gray[T]{narrow[T](float64(p[0]) * w)}
}

// GrayAlpha is a luminance-plus-alpha cell value.
type GrayAlpha[T Channel] [2]T

func (p GrayAlpha[T]) Channels() int { return 2 }

func (p GrayAlpha[T]) Lanes(dst []float64) {
	for i, v := range p {
		dst[i] = float64(v)
	}
}

func (p GrayAlpha[T]) FromLanes(src []float64) GrayAlpha[T] {
	var out GrayAlpha[T]
	for i := range out {
		out[i] = narrow[T](src[i])
	}
	return out
}

// Add returns the lane-wise sum of p and q.
func (p GrayAlpha[T]) Add(q GrayAlpha[T]) GrayAlpha[T] {
	for i, v := range q {
		p[i] += v
	}
	return p
}

// Scale multiplies each lane by w, narrowing back to the lane type.
func (p GrayAlpha[T]) Scale(w float64) GrayAlpha[T] {
	var out GrayAlpha[T]
	for i, v := range p {
		out[i] = narrow[T](float64(v) * w)
	}
	return out
}

// RGB is a three-channel cell value with interleaved red, green, and
// blue lanes.
type RGB[T Channel] [3]T

func (p RGB[T]) Channels() int { return 3 }

func (p RGB[T]) Lanes(dst []float64) {
	for i, v := range p {
		dst[i] = float64(v)
	}
}

func (p RGB[T]) FromLanes(src []float64) RGB[T] {
	var out RGB[T]
	for i := range out {
		out[i] = narrow[T](src[i])
	}
	return out
}

// Add returns the lane-wise sum of p and q.
func (p RGB[T]) Add(q RGB[T]) RGB[T] {
	for i, v := range q {
		p[i] += v
	}
	return p
}

// Scale multiplies each lane by w, narrowing back to the lane type.
func (p RGB[T]) Scale(w float64) RGB[T] {
	var out RGB[T]
	for i, v := range p {
		out[i] = narrow[T](float64(v) * w)
	}
	return out
}

// RGBA is a four-channel cell value. The alpha lane is convolved like
// any other; callers that need alpha preserved should restore it after
// convolution.
type RGBA[T Channel] [4]T

func (p RGBA[T]) Channels() int { return 4 }

func (p RGBA[T]) Lanes(dst []float64) {
	for i, v := range p {
		dst[i] = float64(v)
	}
}

func (p RGBA[T]) FromLanes(src []float64) RGBA[T] {
	var out RGBA[T]
	for i := range out {
		out[i] = narrow[T](src[i])
	}
	return out
}

// Add returns the lane-wise sum of p and q.
func (p RGBA[T]) Add(q RGBA[T]) RGBA[T] {
	for i, v := range q {
		p[i] += v
	}
	return p
}

// Scale multiplies each lane by w, narrowing back to the lane type.
func (p RGBA[T]) Scale(w float64) RGBA[T] {
	var out RGBA[T]
	for i, v := range p {
		out[i] = narrow[T](float64(v) * w)
	}
	return out
}
