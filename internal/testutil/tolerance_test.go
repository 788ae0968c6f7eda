package testutil

import (
	"testing"

	"github.com/cwbudde/algo-conv2d/grid"
)

func TestRampGridPattern(t *testing.T) {
	g := RampGrid(t, 3, 2)
	if got := g.At(0, 0); got != (grid.Gray[float64]{1}) {
		t.Errorf("At(0, 0) = %v, want {1}", got)
	}
	if got := g.At(1, 2); got != (grid.Gray[float64]{6}) {
		t.Errorf("At(1, 2) = %v, want {6}", got)
	}
}

func TestConstantGrid(t *testing.T) {
	g := ConstantGrid(t, 4, 4, grid.RGB[uint8]{9, 9, 9})
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if g.At(r, c) != (grid.RGB[uint8]{9, 9, 9}) {
				t.Fatalf("cell (%d, %d) = %v", r, c, g.At(r, c))
			}
		}
	}
}

func TestRequireGridNearlyEqual(t *testing.T) {
	a := RampGrid(t, 3, 3)
	b := RampGrid(t, 3, 3)
	RequireGridNearlyEqual[grid.Gray[float64]](t, a, b, 0)
}
