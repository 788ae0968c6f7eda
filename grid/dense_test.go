package grid

import (
	"errors"
	"testing"
)

func TestNewDense(t *testing.T) {
	g, err := NewDense[Gray[float64]](4, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, h := g.Dims()
	if w != 4 || h != 3 {
		t.Fatalf("Dims() = (%d, %d), want (4, 3)", w, h)
	}

	if len(g.Data()) != 12 {
		t.Fatalf("len(Data()) = %d, want 12", len(g.Data()))
	}

	// Zero-initialized
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if g.At(r, c) != (Gray[float64]{}) {
				t.Errorf("At(%d, %d) = %v, want zero value", r, c, g.At(r, c))
			}
		}
	}
}

func TestNewDenseInvalidDims(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 3},
		{"zero height", 3, 0},
		{"both zero", 0, 0},
		{"negative width", -1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewDense[Gray[uint8]](tt.width, tt.height); !errors.Is(err, ErrInvalidDims) {
				t.Errorf("expected ErrInvalidDims, got %v", err)
			}
		})
	}
}

func TestNewDenseFrom(t *testing.T) {
	buf := []Gray[uint8]{{1}, {2}, {3}, {4}, {5}, {6}}
	g, err := NewDenseFrom(3, 2, buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := g.At(1, 2); got != (Gray[uint8]{6}) {
		t.Errorf("At(1, 2) = %v, want {6}", got)
	}

	// The grid aliases the caller's buffer rather than copying it.
	buf[0] = Gray[uint8]{42}
	if got := g.At(0, 0); got != (Gray[uint8]{42}) {
		t.Errorf("At(0, 0) = %v after buffer write, want {42}", got)
	}
}

func TestNewDenseFromLengthMismatch(t *testing.T) {
	buf := make([]Gray[uint8], 5)
	if _, err := NewDenseFrom(3, 2, buf); !errors.Is(err, ErrBufferLength) {
		t.Errorf("expected ErrBufferLength, got %v", err)
	}
}

func TestDenseSetAt(t *testing.T) {
	g, err := NewDense[RGB[uint8]](3, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g.Set(2, 1, RGB[uint8]{10, 20, 30})
	if got := g.At(2, 1); got != (RGB[uint8]{10, 20, 30}) {
		t.Errorf("At(2, 1) = %v, want {10 20 30}", got)
	}

	// Row-major layout: (2, 1) lands at index 2*3+1.
	if got := g.Data()[7]; got != (RGB[uint8]{10, 20, 30}) {
		t.Errorf("Data()[7] = %v, want {10 20 30}", got)
	}
}

func TestDenseNewLike(t *testing.T) {
	g, err := NewDense[Gray[float64]](2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.Fill(Gray[float64]{7})

	like := g.NewLike(5, 4)
	w, h := like.Dims()
	if w != 5 || h != 4 {
		t.Fatalf("NewLike dims = (%d, %d), want (5, 4)", w, h)
	}
	if like.At(0, 0) != (Gray[float64]{}) {
		t.Errorf("NewLike grid not zeroed: %v", like.At(0, 0))
	}
}

func TestMap(t *testing.T) {
	g, err := NewDenseFrom(2, 2, []Gray[uint8]{{0}, {51}, {102}, {255}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := Map(g, func(p Gray[uint8]) Gray[float64] {
		return Gray[float64]{float64(p[0]) / 255}
	})

	w, h := f.Dims()
	if w != 2 || h != 2 {
		t.Fatalf("Map dims = (%d, %d), want (2, 2)", w, h)
	}
	if got := f.At(1, 1); got != (Gray[float64]{1}) {
		t.Errorf("At(1, 1) = %v, want {1}", got)
	}
	if got := f.At(0, 1); got != (Gray[float64]{0.2}) {
		t.Errorf("At(0, 1) = %v, want {0.2}", got)
	}
}
