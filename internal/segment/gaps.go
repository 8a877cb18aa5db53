package segment

import (
	"fmt"
	"math"
)

// FillGaps inserts the grid points between cyclically consecutive points of a loop
// that are not 8-adjacent, so every step of the result moves at most one cell in
// each axis. Intermediate points lie on the straight segment between the two ends,
// rounded to the grid.
//
// This is an optional post-pass, typically run after smoothing; no other operation
// calls it. One-point loops are returned unchanged and empty loops are rejected.
func FillGaps(perimeter Perimeter) (Perimeter, error) {
	n := len(perimeter)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty perimeter", ErrInvalidParameter)
	}
	if n == 1 {
		return Perimeter{perimeter[0]}, nil
	}

	filled := make(Perimeter, 0, n)
	for i, a := range perimeter {
		b := perimeter[(i+1)%n]
		filled = append(filled, a)
		filled = append(filled, between(a, b)...)
	}
	return filled, nil
}

// between returns the points strictly between a and b along the segment a-b.
func between(a, b Point) []Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	steps := max(abs(dx), abs(dy))
	if steps <= 1 {
		return nil
	}

	points := make([]Point, 0, steps-1)
	for s := 1; s < steps; s++ {
		t := float64(s) / float64(steps)
		points = append(points, Point{
			X: a.X + int(math.Round(t*float64(dx))),
			Y: a.Y + int(math.Round(t*float64(dy))),
		})
	}
	return points
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
