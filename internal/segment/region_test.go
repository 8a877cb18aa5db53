package segment

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGrow_InteriorBlock(t *testing.T) {
	img := grayGrid(t, [][]uint8{
		{0, 0, 0, 0, 0},
		{0, 100, 100, 100, 0},
		{0, 100, 100, 100, 0},
		{0, 100, 100, 100, 0},
		{0, 0, 0, 0, 0},
	})

	mask, err := Grow(img, Pt(2, 2), Tolerance{5}, Tolerance{5})
	if err != nil {
		t.Fatalf("Grow failed: %v", err)
	}

	want := []string{
		".....",
		".###.",
		".###.",
		".###.",
		".....",
	}
	if diff := cmp.Diff(want, maskRows(mask)); diff != "" {
		t.Errorf("region mismatch (-want +got):\n%s", diff)
	}

	loops, err := TraceAll(mask)
	if err != nil {
		t.Fatalf("TraceAll failed: %v", err)
	}
	wantLoops := PerimeterSet{{
		{1, 1}, {2, 1}, {3, 1}, {3, 2}, {3, 3}, {2, 3}, {1, 3}, {1, 2},
	}}
	if diff := cmp.Diff(wantLoops, loops); diff != "" {
		t.Errorf("perimeters mismatch (-want +got):\n%s", diff)
	}
}

func TestGrow_SeedAlwaysMarked(t *testing.T) {
	img := grayGrid(t, [][]uint8{
		{10, 200, 10},
		{200, 90, 200},
		{10, 200, 10},
	})

	mask, err := Grow(img, Pt(1, 1), Tolerance{0}, Tolerance{0})
	if err != nil {
		t.Fatalf("Grow failed: %v", err)
	}
	if got := MarkedPoints(mask); len(got) != 1 || got[0] != Pt(1, 1) {
		t.Errorf("marked points: got %v, want only the seed", got)
	}
	if mask.Width() != 3 || mask.Height() != 3 {
		t.Errorf("mask dimensions: got %dx%d, want 3x3", mask.Width(), mask.Height())
	}
}

func TestGrow_BothBoundsEnforced(t *testing.T) {
	// A horizontal ramp: each step is 4, total drift grows with x.
	img := grayGrid(t, [][]uint8{
		{0, 4, 8, 12, 16, 20, 40},
	})

	tests := []struct {
		name        string
		upper, step int
		wantMarked  int
	}{
		{"loose bounds stop at the jump", 100, 5, 6},
		{"upper bound limits drift", 9, 5, 3},
		{"step bound limits each move", 100, 3, 1},
		{"large step crosses the jump", 100, 20, 7},
		{"upper bound wins over step", 12, 20, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask, err := Grow(img, Pt(0, 0), Tolerance{tt.upper}, Tolerance{tt.step})
			if err != nil {
				t.Fatalf("Grow failed: %v", err)
			}
			if got := CountMarked(mask); got != tt.wantMarked {
				t.Errorf("marked: got %d, want %d (%v)", got, tt.wantMarked, maskRows(mask))
			}
		})
	}
}

func TestGrow_RGBPerChannel(t *testing.T) {
	img, err := NewGrid[ColorSample](3, 1)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	img.Set(Pt(0, 0), RGB(100, 100, 100))
	img.Set(Pt(1, 0), RGB(103, 97, 100))
	img.Set(Pt(2, 0), RGB(103, 97, 110))

	mask, err := Grow(img, Pt(0, 0), Tolerance{5, 5, 5}, Tolerance{5, 5, 5})
	if err != nil {
		t.Fatalf("Grow failed: %v", err)
	}
	if diff := cmp.Diff([]string{"##."}, maskRows(mask)); diff != "" {
		t.Errorf("region mismatch (-want +got):\n%s", diff)
	}

	// Loosening only the blue channel admits the last pixel.
	mask, err = Grow(img, Pt(0, 0), Tolerance{5, 5, 10}, Tolerance{5, 5, 10})
	if err != nil {
		t.Fatalf("Grow failed: %v", err)
	}
	if diff := cmp.Diff([]string{"###"}, maskRows(mask)); diff != "" {
		t.Errorf("region mismatch (-want +got):\n%s", diff)
	}
}

func TestGrow_FourConnected(t *testing.T) {
	// Diagonal neighbours of the seed must not join.
	img := grayGrid(t, [][]uint8{
		{50, 0, 50},
		{0, 50, 0},
		{50, 0, 50},
	})

	mask, err := Grow(img, Pt(1, 1), Tolerance{10}, Tolerance{10})
	if err != nil {
		t.Fatalf("Grow failed: %v", err)
	}
	if got := CountMarked(mask); got != 1 {
		t.Errorf("marked: got %d, want 1", got)
	}
}

func TestGrow_Errors(t *testing.T) {
	img := grayGrid(t, [][]uint8{{1, 2}, {3, 4}})

	tests := []struct {
		name    string
		seed    Point
		upper   Tolerance
		step    Tolerance
		wantErr error
	}{
		{"seed left of grid", Pt(-1, 0), Tolerance{5}, Tolerance{5}, ErrInvalidSeed},
		{"seed below grid", Pt(0, 2), Tolerance{5}, Tolerance{5}, ErrInvalidSeed},
		{"upper channel mismatch", Pt(0, 0), Tolerance{5, 5, 5}, Tolerance{5}, ErrInvalidParameter},
		{"step channel mismatch", Pt(0, 0), Tolerance{5}, Tolerance{}, ErrInvalidParameter},
		{"negative tolerance", Pt(0, 0), Tolerance{-1}, Tolerance{5}, ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Grow(img, tt.seed, tt.upper, tt.step)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGrow_Preconditions(t *testing.T) {
	if _, err := Grow(nil, Pt(0, 0), Tolerance{1}, Tolerance{1}); !errors.Is(err, ErrPreconditionViolation) {
		t.Errorf("nil image: got %v, want ErrPreconditionViolation", err)
	}

	mixed, err := NewGrid[ColorSample](2, 1)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	mixed.Set(Pt(0, 0), Gray(10))
	mixed.Set(Pt(1, 0), RGB(10, 10, 10))
	if _, err := Grow(mixed, Pt(0, 0), Tolerance{5}, Tolerance{5}); !errors.Is(err, ErrPreconditionViolation) {
		t.Errorf("mixed channels: got %v, want ErrPreconditionViolation", err)
	}

	empty, err := NewGrid[ColorSample](1, 1)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if _, err := Grow(empty, Pt(0, 0), Tolerance{}, Tolerance{}); !errors.Is(err, ErrPreconditionViolation) {
		t.Errorf("zero-channel seed: got %v, want ErrPreconditionViolation", err)
	}
}

func TestGrow_TighterBoundsNeverGrow(t *testing.T) {
	img := grayGrid(t, [][]uint8{
		{10, 12, 15, 40, 41},
		{11, 30, 16, 18, 42},
		{13, 14, 17, 20, 60},
		{90, 15, 19, 23, 27},
	})
	seed := Pt(0, 0)

	bounds := []int{0, 2, 4, 8, 16, 32, 64}
	for i, upper := range bounds {
		for j, step := range bounds {
			loose, err := Grow(img, seed, Tolerance{upper}, Tolerance{step})
			if err != nil {
				t.Fatalf("Grow failed: %v", err)
			}
			if i > 0 {
				assertSubset(t, img, seed, Tolerance{bounds[i-1]}, Tolerance{step}, loose)
			}
			if j > 0 {
				assertSubset(t, img, seed, Tolerance{upper}, Tolerance{bounds[j-1]}, loose)
			}
		}
	}
}

// assertSubset grows with the given (tighter) bounds and checks the result lies
// inside loose.
func assertSubset(t *testing.T, img *Grid[ColorSample], seed Point, upper, step Tolerance, loose *Mask) {
	t.Helper()
	tight, err := Grow(img, seed, upper, step)
	if err != nil {
		t.Fatalf("Grow failed: %v", err)
	}
	for _, p := range MarkedPoints(tight) {
		if !loose.At(p) {
			t.Errorf("upper=%v step=%v marks %v, which the looser bounds do not", upper, step, p)
		}
	}
}
