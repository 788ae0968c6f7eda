// Package testutil provides shared test helpers for comparing grids
// and weight slices within floating-point tolerance.
package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-conv2d/grid"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or
// if any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireGridNearlyEqual fails t if the grids differ in dimensions or
// any cell's lanes differ by more than eps. Pass eps = 0 to require
// exact equality (integral channel types).
func RequireGridNearlyEqual[V grid.Value[V]](t *testing.T, got, want grid.Grid[V], eps float64) {
	t.Helper()

	gw, gh := got.Dims()
	ww, wh := want.Dims()
	if gw != ww || gh != wh {
		t.Fatalf("dimension mismatch: got (%d, %d), want (%d, %d)", gw, gh, ww, wh)
	}

	var zero V
	channels := zero.Channels()
	gl := make([]float64, channels)
	wl := make([]float64, channels)

	for r := 0; r < gh; r++ {
		for c := 0; c < gw; c++ {
			got.At(r, c).Lanes(gl)
			want.At(r, c).Lanes(wl)
			for l := 0; l < channels; l++ {
				if diff := math.Abs(gl[l] - wl[l]); diff > eps {
					t.Fatalf("cell (%d, %d) lane %d: got %v, want %v (diff %v > eps %v)",
						r, c, l, gl[l], wl[l], diff, eps)
				}
			}
		}
	}
}

// ConstantGrid returns a width x height dense grid with every cell set
// to value.
func ConstantGrid[V grid.Value[V]](t *testing.T, width, height int, value V) *grid.Dense[V] {
	t.Helper()
	g, err := grid.NewDense[V](width, height)
	if err != nil {
		t.Fatalf("NewDense(%d, %d): %v", width, height, err)
	}
	g.Fill(value)
	return g
}

// RampGrid returns a width x height dense gray grid whose cell at
// (r, c) holds r*width + c + 1, a deterministic non-constant pattern.
func RampGrid(t *testing.T, width, height int) *grid.Dense[grid.Gray[float64]] {
	t.Helper()
	g, err := grid.NewDense[grid.Gray[float64]](width, height)
	if err != nil {
		t.Fatalf("NewDense(%d, %d): %v", width, height, err)
	}
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			g.Set(r, c, grid.Gray[float64]{float64(r*width + c + 1)})
		}
	}
	return g
}
