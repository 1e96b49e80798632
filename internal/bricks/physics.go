package bricks

// Fixed-point scale factor: 1 pixel = 1000 units.
// Paddle deflection divides by ten, so positions need sub-pixel precision
// while every tick stays deterministic.
const Scale = 1000

// Fixed represents a fixed-point integer (scaled by Scale).
type Fixed int

// ToFixed converts a pixel coordinate to fixed-point.
func ToFixed(px int) Fixed {
	return Fixed(px * Scale)
}

// Pixels converts fixed-point to pixels (truncated toward zero).
func (f Fixed) Pixels() int {
	return int(f) / Scale
}

// Round converts fixed-point to the nearest pixel.
func (f Fixed) Round() int {
	if f >= 0 {
		return int(f+Scale/2) / Scale
	}
	return int(f-Scale/2) / Scale
}

// Div divides fixed-point by an integer.
func (f Fixed) Div(n int) Fixed {
	if n == 0 {
		return 0
	}
	return Fixed(int(f) / n)
}

// Abs returns absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// ClampFixed restricts a value to [minVal, maxVal].
func ClampFixed(val, minVal, maxVal Fixed) Fixed {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// Box is an axis-aligned rectangle in arena fixed-point coordinates.
type Box struct {
	X, Y, W, H Fixed
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() Fixed {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() Fixed {
	return b.Y + b.H
}

// CenterX returns the horizontal center.
func (b Box) CenterX() Fixed {
	return b.X + b.W/2
}

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (b Box) Intersects(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// Ball is the single ball of a running round.
// Velocity is a signed per-frame delta; its magnitude comes from the session modifiers.
type Ball struct {
	X, Y    Fixed // Top-left position
	VX, VY  Fixed // Velocity per tick
	Size    Fixed
	Visible bool // Hidden outside of a round
}

// Box returns the ball's bounding box.
func (b *Ball) Box() Box {
	return Box{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}

// CenterX returns the ball's horizontal center.
func (b *Ball) CenterX() Fixed {
	return b.X + b.Size/2
}

// Advance moves the ball by its velocity.
func (b *Ball) Advance() {
	b.X += b.VX
	b.Y += b.VY
}

// Intent is the player's requested paddle direction for the next tick.
type Intent struct {
	Left  bool
	Right bool
}

// Direction selects one side of an Intent.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// Set records a press or release for one direction.
func (in *Intent) Set(dir Direction, pressed bool) {
	switch dir {
	case DirLeft:
		in.Left = pressed
	case DirRight:
		in.Right = pressed
	}
}

// Delta returns -1, 0 or 1. Opposite directions cancel out.
func (in Intent) Delta() int {
	d := 0
	if in.Left {
		d--
	}
	if in.Right {
		d++
	}
	return d
}

// Paddle is the player's horizontal actor. Only X moves.
type Paddle struct {
	X      Fixed // Left edge
	Y      Fixed // Top edge, fixed for a given arena height
	Width  Fixed
	Height Fixed
	Intent Intent
}

// Box returns the paddle's bounding box.
func (p *Paddle) Box() Box {
	return Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() Fixed {
	return p.X + p.Width/2
}

// Update moves the paddle by intent x speed and clamps it into the arena.
func (p *Paddle) Update(speed, arenaW Fixed) {
	p.X += speed * Fixed(p.Intent.Delta())
	p.Clamp(arenaW)
}

// Clamp keeps the paddle inside [0, arenaW-Width].
func (p *Paddle) Clamp(arenaW Fixed) {
	maxX := arenaW - p.Width
	if maxX < 0 {
		maxX = 0
	}
	p.X = ClampFixed(p.X, 0, maxX)
}
