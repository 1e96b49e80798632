// Package core provides fundamental types shared by the simulation and the
// terminal platform. It has no dependency on Bubble Tea so the game logic
// stays pure and testable.
package core

// Rect represents an axis-aligned rectangle in screen cells.
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

// Viewport maps arena pixel coordinates onto screen cells.
// One cell covers CellW x CellH pixels; the arena's origin sits at (OriginX, OriginY).
type Viewport struct {
	OriginX, OriginY int
	CellW, CellH     int
}

// ArenaSize returns the pixel size of an arena that fills cols x rows cells.
func (v Viewport) ArenaSize(cols, rows int) (int, int) {
	return cols * v.CellW, rows * v.CellH
}

// ToCell converts an arena pixel position to a screen cell.
func (v Viewport) ToCell(px, py int) (int, int) {
	if v.CellW <= 0 || v.CellH <= 0 {
		return v.OriginX, v.OriginY
	}
	return v.OriginX + floorDiv(px, v.CellW), v.OriginY + floorDiv(py, v.CellH)
}

// RectToCells converts a pixel rectangle to the cells it covers.
// Any non-empty rectangle covers at least one cell.
func (v Viewport) RectToCells(px, py, pw, ph int) Rect {
	x0, y0 := v.ToCell(px, py)
	x1, y1 := v.ToCell(px+pw-1, py+ph-1)
	return NewRect(x0, y0, Max(x1-x0+1, 1), Max(y1-y0+1, 1))
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
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
