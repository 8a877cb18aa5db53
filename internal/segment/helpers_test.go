package segment

import (
	"strings"
	"testing"
)

// maskFromRows builds a mask from rows of text where '#' marks a member cell.
func maskFromRows(t *testing.T, rows ...string) *Mask {
	t.Helper()
	mask, err := NewMask(len(rows[0]), len(rows))
	if err != nil {
		t.Fatalf("NewMask failed: %v", err)
	}
	for y, row := range rows {
		if len(row) != mask.Width() {
			t.Fatalf("row %d has width %d, want %d", y, len(row), mask.Width())
		}
		for x, ch := range row {
			if ch == '#' {
				mask.Set(Pt(x, y), true)
			}
		}
	}
	return mask
}

// maskRows renders a mask back to '#'/'.' rows for readable diffs.
func maskRows(mask *Mask) []string {
	rows := make([]string, mask.Height())
	for y := range rows {
		var b strings.Builder
		for x := 0; x < mask.Width(); x++ {
			if mask.At(Pt(x, y)) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}
	return rows
}

// grayGrid builds a single-channel image from rows of values.
func grayGrid(t *testing.T, rows [][]uint8) *Grid[ColorSample] {
	t.Helper()
	img, err := NewGrid[ColorSample](len(rows[0]), len(rows))
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	for y, row := range rows {
		for x, v := range row {
			img.Set(Pt(x, y), Gray(v))
		}
	}
	return img
}

// chebyshev returns the 8-neighbourhood distance between a and b.
func chebyshev(a, b Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}
