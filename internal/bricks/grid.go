package bricks

// Brick is a runtime brick instance placed in the arena.
type Brick struct {
	X, Y    Fixed // Top-left corner
	W, H    Fixed
	Kind    Kind
	Damaged bool // Only ever set on Strong bricks
}

// Box returns the brick's bounding box.
func (b *Brick) Box() Box {
	return Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Layout describes the brick cell geometry, in pixels.
type Layout struct {
	CellW int // Horizontal stride and brick width
	CellH int // Row stride and brick height
	Top   int // Y of the first row
}

// DefaultLayout is the 160x60 cell grid starting 60px below the arena top.
var DefaultLayout = Layout{CellW: 160, CellH: 60, Top: 60}

// Grid owns the brick instances of the active level, in insertion order.
type Grid struct {
	bricks  []*Brick
	active  int
	skipped int
}

// BuildGrid lays out a level inside an arena of the given pixel size.
//
// Cells flow left to right and wrap once x passes arenaW-CellW; the running x
// carries across level rows. When a wrap moves y below arenaH/2 every
// remaining cell of the build is dropped. Empty cells are placed as
// placeholders.
func BuildGrid(level Level, arenaW, arenaH int, layout Layout) *Grid {
	g := &Grid{}
	w := ToFixed(arenaW)
	cellW := ToFixed(layout.CellW)
	cellH := ToFixed(layout.CellH)
	startX := ToFixed(arenaW % layout.CellW).Div(2)
	half := ToFixed(arenaH).Div(2)

	x, y := startX, ToFixed(layout.Top)
	skip := false
	for _, row := range level.Rows {
		for _, kind := range row {
			if x > w-cellW {
				y += cellH
				if y > half {
					skip = true
				}
				x = startX
			}
			if skip {
				g.skipped++
				continue
			}
			g.bricks = append(g.bricks, &Brick{X: x, Y: y, W: cellW, H: cellH, Kind: kind})
			if kind.Counts() {
				g.active++
			}
			x += cellW
		}
	}
	return g
}

// Count returns the number of Normal and Strong bricks still present.
func (g *Grid) Count() int {
	if g == nil {
		return 0
	}
	return g.active
}

// Len returns the number of brick instances, placeholders included.
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.bricks)
}

// Skipped returns how many cells the layout dropped.
func (g *Grid) Skipped() int {
	if g == nil {
		return 0
	}
	return g.skipped
}

// Bricks returns the live instances in scan order. Callers must not mutate them.
func (g *Grid) Bricks() []*Brick {
	if g == nil {
		return nil
	}
	return g.bricks
}

// Remove deletes a brick from the grid, keeping the order of the rest.
// It reports whether the brick was present.
func (g *Grid) Remove(b *Brick) bool {
	for i, cur := range g.bricks {
		if cur != b {
			continue
		}
		g.bricks = append(g.bricks[:i], g.bricks[i+1:]...)
		if b.Kind.Counts() {
			g.active--
		}
		return true
	}
	return false
}

// MarkDamaged flags a Strong brick after its first hit.
// It reports false for any other kind or an already damaged brick.
func (g *Grid) MarkDamaged(b *Brick) bool {
	if b.Kind != KindStrong || b.Damaged {
		return false
	}
	b.Damaged = true
	return true
}
