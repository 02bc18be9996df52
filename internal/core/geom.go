// Package core provides the drawing and layout primitives used by the tile
// view. It has no terminal dependencies (especially no Bubble Tea) so layout
// and hit-testing stay pure and testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Offset returns the rectangle moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Grid lays out equally sized cells left to right, wrapping into rows.
type Grid struct {
	X, Y  int // origin of the first cell
	CellW int
	CellH int
	GapX  int
	GapY  int
	Cols  int // cells per row; values below 1 mean 1
}

// Rects returns the rectangles of n cells.
func (g Grid) Rects(n int) []Rect {
	cols := Max(g.Cols, 1)
	rects := make([]Rect, n)
	for i := range rects {
		col, row := i%cols, i/cols
		rects[i] = Rect{
			X: g.X + col*(g.CellW+g.GapX),
			Y: g.Y + row*(g.CellH+g.GapY),
			W: g.CellW,
			H: g.CellH,
		}
	}
	return rects
}

// ColsFor returns how many cells of the grid fit in width.
func (g Grid) ColsFor(width int) int {
	if g.CellW <= 0 {
		return 1
	}
	return Max((width+g.GapX)/(g.CellW+g.GapX), 1)
}

// HitTest returns the index of the first rectangle containing (x, y), or -1.
func HitTest(rects []Rect, x, y int) int {
	for i, r := range rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
