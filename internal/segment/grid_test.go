package segment

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewGrid_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative", -1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid[bool](tt.width, tt.height)
			if !errors.Is(err, ErrPreconditionViolation) {
				t.Errorf("NewGrid(%d, %d): got %v, want ErrPreconditionViolation", tt.width, tt.height, err)
			}
		})
	}
}

func TestGrid_AtSetBounds(t *testing.T) {
	g, err := NewGrid[int](3, 2)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	if !g.Set(Pt(2, 1), 7) {
		t.Error("Set inside grid returned false")
	}
	if got := g.At(Pt(2, 1)); got != 7 {
		t.Errorf("At(2,1): got %d, want 7", got)
	}

	for _, p := range []Point{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v) = true, want false", p)
		}
		if g.Set(p, 1) {
			t.Errorf("Set(%v) outside grid returned true", p)
		}
		if got := g.At(p); got != 0 {
			t.Errorf("At(%v) outside grid: got %d, want 0", p, got)
		}
	}
}

func TestGridFrom(t *testing.T) {
	cells := []int{1, 2, 3, 4, 5, 6}
	g, err := GridFrom(3, 2, cells)
	if err != nil {
		t.Fatalf("GridFrom failed: %v", err)
	}
	if got := g.At(Pt(0, 1)); got != 4 {
		t.Errorf("At(0,1): got %d, want 4 (row-major)", got)
	}

	cells[0] = 99
	if got := g.At(Pt(0, 0)); got != 1 {
		t.Errorf("GridFrom did not copy cells: At(0,0) = %d", got)
	}

	if _, err := GridFrom(3, 3, cells); !errors.Is(err, ErrPreconditionViolation) {
		t.Errorf("GridFrom with short cells: got %v, want ErrPreconditionViolation", err)
	}
}

func TestMarkedPoints_RowMajor(t *testing.T) {
	mask := maskFromRows(t,
		".#.",
		"#.#",
	)

	want := []Point{{1, 0}, {0, 1}, {2, 1}}
	if diff := cmp.Diff(want, MarkedPoints(mask)); diff != "" {
		t.Errorf("MarkedPoints mismatch (-want +got):\n%s", diff)
	}
	if got := CountMarked(mask); got != 3 {
		t.Errorf("CountMarked: got %d, want 3", got)
	}
}

func TestPoint_Arithmetic(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Add(Pt(1, -2)); got != Pt(4, 2) {
		t.Errorf("Add: got %v, want [4, 2]", got)
	}
	if got := p.Sub(Pt(1, -2)); got != Pt(2, 6) {
		t.Errorf("Sub: got %v, want [2, 6]", got)
	}
	if got := p.String(); got != "[3, 4]" {
		t.Errorf("String: got %q, want %q", got, "[3, 4]")
	}
}

func TestColorSample_Channels(t *testing.T) {
	c := RGB(10, 20, 30)
	if c.Channels() != 3 || Gray(7).Channels() != 1 || (ColorSample{}).Channels() != 0 {
		t.Errorf("unexpected channel counts")
	}
	if diff := cmp.Diff([]uint8{10, 20, 30}, c.Values()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
	if got := c.Channel(5); got != 0 {
		t.Errorf("Channel(5): got %d, want 0", got)
	}
}

func TestTolerance_Validate(t *testing.T) {
	tests := []struct {
		name     string
		tol      Tolerance
		channels int
		wantErr  bool
	}{
		{"matching", Uniform(3, 5), 3, false},
		{"zero bounds", Tolerance{0}, 1, false},
		{"too few", Tolerance{5}, 3, true},
		{"too many", Tolerance{5, 5}, 1, true},
		{"negative", Tolerance{5, -1, 5}, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tol.Validate(tt.channels)
			if tt.wantErr && !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("got %v, want ErrInvalidParameter", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
