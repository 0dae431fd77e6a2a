package systems

import (
	"math"
	"testing"
)

func TestBuildNoiseFieldDeterminism(t *testing.T) {
	bounds := Bounds{Width: 64, Height: 48}

	for _, seed := range []uint32{0, 1, 42, math.MaxUint32} {
		a := BuildNoiseField(seed, bounds, DefaultNoiseOptions())
		b := BuildNoiseField(seed, bounds, DefaultNoiseOptions())

		w, h := a.Size()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if a.Get(x, y) != b.Get(x, y) {
					t.Fatalf("seed %d: field differs at (%d,%d): %v vs %v",
						seed, x, y, a.Get(x, y), b.Get(x, y))
				}
			}
		}
	}
}

func TestBuildNoiseFieldRange(t *testing.T) {
	field := BuildNoiseField(7, Bounds{Width: 64, Height: 64}, DefaultNoiseOptions())

	w, h := field.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := field.Get(x, y)
			if v < 0 || v > 1 {
				t.Fatalf("value out of [0,1] at (%d,%d): %v", x, y, v)
			}
		}
	}
}

func TestNoiseFieldSeamless(t *testing.T) {
	const eps = 0.15

	field := BuildNoiseField(1234, Bounds{Width: 128, Height: 128}, DefaultNoiseOptions())
	w, h := field.Size()

	for y := 0; y < h; y++ {
		diff := math.Abs(field.Get(0, y) - field.Get(w-1, y))
		if diff >= eps {
			t.Errorf("horizontal seam at y=%d: |%v - %v| = %v", y, field.Get(0, y), field.Get(w-1, y), diff)
		}
	}
	for x := 0; x < w; x++ {
		diff := math.Abs(field.Get(x, 0) - field.Get(x, h-1))
		if diff >= eps {
			t.Errorf("vertical seam at x=%d: |%v - %v| = %v", x, field.Get(x, 0), field.Get(x, h-1), diff)
		}
	}
}

func TestNoiseFieldSeedsDiffer(t *testing.T) {
	bounds := Bounds{Width: 32, Height: 32}
	a := BuildNoiseField(1, bounds, DefaultNoiseOptions())
	b := BuildNoiseField(2, bounds, DefaultNoiseOptions())

	w, h := a.Size()
	same := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if a.Get(x, y) == b.Get(x, y) {
				same++
			}
		}
	}
	if same == w*h {
		t.Error("fields for different seeds are identical")
	}
}

func TestNoiseFieldGetClamps(t *testing.T) {
	field := BuildNoiseField(9, Bounds{Width: 16, Height: 16}, DefaultNoiseOptions())
	w, h := field.Size()

	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"left of grid", -1, 5, 0, 5},
		{"right of grid", w, 5, w - 1, 5},
		{"above grid", 5, -1, 5, 0},
		{"below grid", 5, h, 5, h - 1},
		{"far corner", -100, 100, 0, h - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := field.Get(tt.x, tt.y)
			want := field.Get(tt.wantX, tt.wantY)
			if got != want {
				t.Errorf("Get(%d,%d) = %v, want Get(%d,%d) = %v", tt.x, tt.y, got, tt.wantX, tt.wantY, want)
			}
		})
	}
}
