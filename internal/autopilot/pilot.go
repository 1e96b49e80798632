// Package autopilot drives a brick session without a player. It keeps the
// paddle under the ball with a seeded aiming offset, so headless runs are
// reproducible.
package autopilot

import (
	"context"

	"github.com/vovakirdan/bricks/internal/bricks"
)

// Controller is the input surface of a session.
type Controller interface {
	SetIntent(dir bricks.Direction, pressed bool)
	Launch() (bricks.Transition, bool)
	Snapshot() bricks.Snapshot
}

// Pilot chooses paddle intents from the current snapshot.
type Pilot struct {
	rng    *RNG
	jitter int // Max aiming offset from the paddle center, in pixels

	offset  bricks.Fixed // Current aiming offset
	falling bool         // Ball was moving down on the last step
}

// New creates a pilot. jitter 0 always aims the paddle center at the ball.
func New(seed int64, jitter int) *Pilot {
	if jitter < 0 {
		jitter = 0
	}
	return &Pilot{rng: NewRNG(seed), jitter: jitter}
}

// Step sets the intents for the next tick and launches when the session rests.
// It returns the launch transition when one happened.
func (p *Pilot) Step(c Controller) (bricks.Transition, bool) {
	snap := c.Snapshot()
	if snap.State != bricks.StateRunning {
		c.SetIntent(bricks.DirLeft, false)
		c.SetIntent(bricks.DirRight, false)
		p.falling = false
		return c.Launch()
	}

	falling := snap.BallVY > 0
	if falling && !p.falling {
		p.offset = bricks.ToFixed(p.rng.Between(-p.jitter, p.jitter))
	}
	p.falling = falling

	target := snap.Ball.CenterX() + p.offset
	center := snap.Paddle.CenterX()
	step := bricks.ToFixed(snap.Modifiers.PlatX)
	c.SetIntent(bricks.DirLeft, target < center-step/2)
	c.SetIntent(bricks.DirRight, target > center+step/2)
	return bricks.Transition{}, false
}

// Summary describes a headless simulation.
type Summary struct {
	Ticks    uint64
	Launches int
	Runs     []bricks.RunEnd
	Final    bricks.Snapshot
}

// Wins counts the finished runs that cleared every level.
func (s Summary) Wins() int {
	n := 0
	for _, r := range s.Runs {
		if r.Outcome == bricks.StateWon {
			n++
		}
	}
	return n
}

// Hooks observe a simulation. Nil fields are skipped.
type Hooks struct {
	OnTransition func(bricks.Transition)
	OnRunEnd     func(bricks.RunEnd)
}

func (h Hooks) transition(tr bricks.Transition) {
	if h.OnTransition != nil {
		h.OnTransition(tr)
	}
}

// Run steps the session up to maxTicks times, or until maxRuns runs have
// ended when maxRuns is positive. Cancelling ctx stops it early.
func Run(ctx context.Context, s *bricks.Session, p *Pilot, maxTicks, maxRuns int, hooks Hooks) (Summary, error) {
	var sum Summary
	for range maxTicks {
		if err := ctx.Err(); err != nil {
			sum.Final = s.Snapshot()
			return sum, err
		}
		if tr, ok := p.Step(s); ok {
			sum.Launches++
			hooks.transition(tr)
		}
		res := s.Tick()
		sum.Ticks++
		for _, tr := range res.Transitions {
			hooks.transition(tr)
		}
		if res.End != nil {
			sum.Runs = append(sum.Runs, *res.End)
			if hooks.OnRunEnd != nil {
				hooks.OnRunEnd(*res.End)
			}
			if maxRuns > 0 && len(sum.Runs) >= maxRuns {
				break
			}
		}
	}
	sum.Final = s.Snapshot()
	return sum, nil
}
