package grid

// Map returns a new dense grid with the same dimensions as src, with f
// applied to every cell. It is the usual way to promote an integral
// grid to floating-point lanes before convolving and to narrow the
// result back afterwards.
func Map[U, V any](src Grid[U], f func(U) V) *Dense[V] {
	width, height := src.Dims()
	out := &Dense[V]{
		width:  width,
		height: height,
		data:   make([]V, width*height),
	}
	i := 0
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			out.data[i] = f(src.At(r, c))
			i++
		}
	}
	return out
}
