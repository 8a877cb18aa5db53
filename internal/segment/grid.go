package segment

import "fmt"

// Point represents an integer grid coordinate.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the componentwise sum p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// String formats the point as "[x, y]".
func (p Point) String() string {
	return fmt.Sprintf("[%d, %d]", p.X, p.Y)
}

// Grid is a fixed-size rectangular buffer holding one T per cell in row-major order.
//
// Reads outside the grid return the zero value of T and writes outside the grid are
// ignored, mirroring image.Image.At and image.RGBA.Set.
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// NewGrid allocates a width x height grid with every cell set to the zero value.
func NewGrid[T any](width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: grid dimensions %dx%d must be positive", ErrPreconditionViolation, width, height)
	}
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}, nil
}

// GridFrom builds a grid from row-major cells. The slice is copied.
func GridFrom[T any](width, height int, cells []T) (*Grid[T], error) {
	g, err := NewGrid[T](width, height)
	if err != nil {
		return nil, err
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: %d cells for a %dx%d grid", ErrPreconditionViolation, len(cells), width, height)
	}
	copy(g.cells, cells)
	return g, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the cell at p, or the zero value when p is outside the grid.
func (g *Grid[T]) At(p Point) T {
	if !g.InBounds(p) {
		var zero T
		return zero
	}
	return g.cells[p.Y*g.width+p.X]
}

// Set stores v at p and reports whether p was inside the grid.
func (g *Grid[T]) Set(p Point, v T) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[p.Y*g.width+p.X] = v
	return true
}

// check verifies the shape contract every operation relies on.
func (g *Grid[T]) check() error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrPreconditionViolation)
	}
	if g.width <= 0 || g.height <= 0 || len(g.cells) != g.width*g.height {
		return fmt.Errorf("%w: malformed %dx%d grid with %d cells",
			ErrPreconditionViolation, g.width, g.height, len(g.cells))
	}
	return nil
}

// Mask is a region membership grid: true marks a member cell.
type Mask = Grid[bool]

// NewMask allocates an empty width x height mask.
func NewMask(width, height int) (*Mask, error) {
	return NewGrid[bool](width, height)
}

// PointIsMarked reports whether p is inside the mask and marked.
func PointIsMarked(mask *Mask, p Point) bool {
	return mask.At(p)
}

// MarkedPoints lists the marked cells of mask in row-major order. A nil mask has none.
func MarkedPoints(mask *Mask) []Point {
	points := make([]Point, 0)
	if mask == nil {
		return points
	}
	for y := 0; y < mask.height; y++ {
		for x := 0; x < mask.width; x++ {
			if mask.cells[y*mask.width+x] {
				points = append(points, Point{X: x, Y: y})
			}
		}
	}
	return points
}

// CountMarked returns the number of marked cells.
func CountMarked(mask *Mask) int {
	n := 0
	if mask == nil {
		return n
	}
	for _, marked := range mask.cells {
		if marked {
			n++
		}
	}
	return n
}
