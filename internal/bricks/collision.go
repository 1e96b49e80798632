package bricks

// Outcome is a set of collision events produced by one Resolve call.
type Outcome uint8

const (
	OutcomeWallBounceX Outcome = 1 << iota
	OutcomeWallBounceY
	OutcomeBottomExit
	OutcomePaddleBounce
	OutcomeBrick
)

// OutcomeNone means the ball touched nothing.
const OutcomeNone Outcome = 0

// BrickEffect is the kind transition applied to the first brick hit.
type BrickEffect int

const (
	EffectNone      BrickEffect = iota // Empty placeholder, nothing happens
	EffectDamaged                      // Strong brick took its first hit
	EffectDestroyed                    // Brick removed from the grid
	EffectReflected                    // Invulnerable brick bounced the ball
)

// String returns the effect name.
func (e BrickEffect) String() string {
	switch e {
	case EffectDamaged:
		return "damaged"
	case EffectDestroyed:
		return "destroyed"
	case EffectReflected:
		return "reflected"
	default:
		return "none"
	}
}

// Resolution is the result of resolving one tick.
type Resolution struct {
	Outcome Outcome
	Effect  BrickEffect
	Kind    Kind // Kind of the brick hit, valid when Outcome has OutcomeBrick
}

// Has reports whether the resolution includes o.
func (r Resolution) Has(o Outcome) bool {
	return r.Outcome&o != 0
}

// Arena is the playable area size in fixed-point.
type Arena struct {
	W, H Fixed
}

// Resolve checks the ball against the arena walls, the paddle and the grid,
// in that order, and applies reflections and brick transitions.
//
// Wall reflections only fire while the ball is past a wall and still moving
// outward, so a ball resting on the boundary is reflected once. Crossing the
// bottom edge returns BottomExit immediately. At most one brick is affected
// per call: the scan stops at the first intersecting brick of any kind.
func Resolve(ball *Ball, paddle *Paddle, grid *Grid, arena Arena, divisor int) Resolution {
	var res Resolution

	maxX := arena.W - ball.Size
	maxY := arena.H - ball.Size
	if ball.Y > maxY {
		res.Outcome |= OutcomeBottomExit
		return res
	}
	if (ball.X < 0 && ball.VX < 0) || (ball.X > maxX && ball.VX > 0) {
		ball.VX = -ball.VX
		res.Outcome |= OutcomeWallBounceX
	}
	if ball.Y < 0 && ball.VY < 0 {
		ball.VY = -ball.VY
		res.Outcome |= OutcomeWallBounceY
	}

	if paddle != nil && ball.VY > 0 && ball.Box().Intersects(paddle.Box()) {
		ball.VX = (ball.CenterX() - paddle.CenterX()).Div(divisor)
		ball.VY = -ball.VY
		res.Outcome |= OutcomePaddleBounce
	}

	if grid == nil {
		return res
	}
	bb := ball.Box()
	for _, b := range grid.Bricks() {
		if !bb.Intersects(b.Box()) {
			continue
		}
		res.Outcome |= OutcomeBrick
		res.Kind = b.Kind
		switch b.Kind {
		case KindEmpty:
			res.Effect = EffectNone
		case KindNormal:
			grid.Remove(b)
			ball.VY = -ball.VY
			res.Effect = EffectDestroyed
		case KindStrong:
			if grid.MarkDamaged(b) {
				res.Effect = EffectDamaged
			} else {
				grid.Remove(b)
				res.Effect = EffectDestroyed
			}
			ball.VY = -ball.VY
		case KindInvulnerable:
			ball.VY = -ball.VY
			res.Effect = EffectReflected
		}
		break
	}
	return res
}
