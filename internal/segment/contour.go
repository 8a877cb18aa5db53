package segment

import "fmt"

// Perimeter is a closed loop of grid points. The first point is not repeated at the
// end; the last point connects back to the first. A one-point Perimeter marks an
// isolated pixel with no traceable boundary.
type Perimeter []Point

// PerimeterSet holds one Perimeter per boundary component of a mask.
type PerimeterSet []Perimeter

var (
	headingRight = Point{X: 1, Y: 0}
	headingDown  = Point{X: 0, Y: 1}
)

// TraceAll returns every boundary loop of mask.
//
// # Algorithm
//
// The mask is scanned in row-major order. A marked cell is a boundary-start
// candidate unless both its left and right neighbours are marked. The first
// candidate of each loop starts a trace; every point of an emitted loop is
// recorded as covered so later candidates on the same boundary are skipped.
//
// A candidate with an unmarked left neighbour is traced exactly as TraceOne does.
// A candidate whose left neighbour is marked (its right neighbour is background,
// typically a hole) is traced as if arriving from above, keeping that background
// on the walker's left. A ring at least two pixels wide therefore yields its outer
// and inner boundaries as two loops.
//
// The output order is the scan order of the loops' start points.
func TraceAll(mask *Mask) (PerimeterSet, error) {
	if err := mask.check(); err != nil {
		return nil, err
	}

	perimeters := make(PerimeterSet, 0)
	covered := make(map[Point]struct{})

	for y := 0; y < mask.height; y++ {
		for x := 0; x < mask.width; x++ {
			p := Point{X: x, Y: y}
			if !isBoundaryStart(mask, p) {
				continue
			}
			if _, ok := covered[p]; ok {
				continue
			}

			heading := headingRight
			if PointIsMarked(mask, Point{X: x - 1, Y: y}) {
				heading = headingDown
			}

			loop := trace(mask, p, heading)
			for _, q := range loop {
				covered[q] = struct{}{}
			}
			perimeters = append(perimeters, loop)
		}
	}

	return perimeters, nil
}

// TraceOne follows the boundary that passes through start.
//
// The walk begins as if it had arrived from the cell left of start. At each step it
// tries a left turn first and then rotates right, up to four directions in all. If
// none is marked, start is an isolated pixel and the one-point loop [start] is
// returned. Otherwise it moves, records the point, and continues until it is about
// to repeat a step (same cell, same direction) it has already taken. For a simple
// boundary that happens on returning to start, which is not appended twice.
func TraceOne(mask *Mask, start Point) (Perimeter, error) {
	if err := mask.check(); err != nil {
		return nil, err
	}
	if !PointIsMarked(mask, start) {
		return nil, fmt.Errorf("%w: start %v is not a marked cell", ErrInvalidSeed, start)
	}
	return trace(mask, start, headingRight), nil
}

// isBoundaryStart reports whether p is marked and not inside a horizontal run.
func isBoundaryStart(mask *Mask, p Point) bool {
	if !PointIsMarked(mask, p) {
		return false
	}
	prev := Point{X: p.X - 1, Y: p.Y}
	next := Point{X: p.X + 1, Y: p.Y}
	return !(PointIsMarked(mask, prev) && PointIsMarked(mask, next))
}

type step struct {
	from, dir Point
}

// trace walks the boundary from start with left-turn priority. heading is the
// direction of the (virtual) move that reached start.
func trace(mask *Mask, start, heading Point) Perimeter {
	perimeter := make(Perimeter, 0, 16)
	taken := make(map[step]struct{})
	limit := 4 * mask.width * mask.height

	current, dir := start, heading
	for len(taken) < limit {
		next, ok := nextDirection(mask, current, dir)
		if !ok {
			// Only possible before the first move: nothing around start is marked.
			return Perimeter{start}
		}

		s := step{from: current, dir: next}
		if _, seen := taken[s]; seen {
			break
		}
		taken[s] = struct{}{}

		perimeter = append(perimeter, current)
		current, dir = current.Add(next), next
	}

	return perimeter
}

// nextDirection returns the first marked direction out of at, trying a left turn
// relative to heading first and then rotating right.
func nextDirection(mask *Mask, at, heading Point) (Point, bool) {
	d := rotateLeft(heading)
	for turns := 0; turns < 4; turns++ {
		if PointIsMarked(mask, at.Add(d)) {
			return d, true
		}
		d = rotateRight(d)
	}
	return Point{}, false
}

func rotateLeft(p Point) Point  { return Point{X: p.Y, Y: -p.X} }
func rotateRight(p Point) Point { return Point{X: -p.Y, Y: p.X} }
