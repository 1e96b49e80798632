package autopilot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bricks/internal/bricks"
)

func newSession() *bricks.Session {
	return bricks.NewSession(bricks.ClassicCatalog(), bricks.DefaultSettings(1280, 660))
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for range 100 {
		require.Equal(t, a.Next(), b.Next())
	}

	r := NewRNG(0)
	for range 1000 {
		v := r.Between(-30, 30)
		require.GreaterOrEqual(t, v, -30)
		require.LessOrEqual(t, v, 30)
	}
	require.Zero(t, r.Intn(0))
	require.Equal(t, 5, r.Between(5, 5))
}

func TestStepLaunchesRestingSession(t *testing.T) {
	s := newSession()
	p := New(1, 0)

	tr, ok := p.Step(s)

	require.True(t, ok)
	require.Equal(t, bricks.StateRunning, tr.To)
	require.True(t, s.Running())
}

func TestStepTracksBall(t *testing.T) {
	s := newSession()
	p := New(1, 0)
	p.Step(s)

	// Ball launches right of the paddle center and drifts further right.
	for range 3 {
		s.Tick()
	}
	_, ok := p.Step(s)
	require.False(t, ok)

	before := s.Paddle().X
	s.Tick()
	snap := s.Snapshot()
	if snap.Ball.CenterX() > snap.Paddle.CenterX() {
		require.GreaterOrEqual(t, s.Paddle().X, before)
	} else {
		require.LessOrEqual(t, s.Paddle().X, before)
	}
}

func TestRunIsReproducible(t *testing.T) {
	run := func() Summary {
		sum, err := Run(context.Background(), newSession(), New(7, 40), 3000, 0, Hooks{})
		require.NoError(t, err)
		return sum
	}

	a, b := run(), run()
	require.Equal(t, uint64(3000), a.Ticks)
	require.Equal(t, a.Final.Hash(), b.Final.Hash())
	require.Equal(t, a.Runs, b.Runs)
	require.GreaterOrEqual(t, a.Launches, 1)
}

func TestRunStopsAfterMaxRuns(t *testing.T) {
	var transitions []bricks.Transition
	var ends []bricks.RunEnd
	hooks := Hooks{
		OnTransition: func(tr bricks.Transition) { transitions = append(transitions, tr) },
		OnRunEnd:     func(end bricks.RunEnd) { ends = append(ends, end) },
	}

	// Aiming up to 400px off center misses the ball sooner or later.
	s := newSession()
	sum, err := Run(context.Background(), s, New(3, 400), 200000, 1, hooks)
	require.NoError(t, err)
	require.LessOrEqual(t, len(sum.Runs), 1)
	require.Equal(t, len(sum.Runs), len(ends))

	if len(sum.Runs) == 1 {
		require.Equal(t, sum.Runs, ends)
		require.Contains(t, []bricks.State{bricks.StateWon, bricks.StateLost}, sum.Runs[0].Outcome)
		require.Equal(t, sum.Runs[0].Outcome, transitions[len(transitions)-1].To)
		require.Less(t, sum.Ticks, uint64(200000))
	}
	require.Equal(t, bricks.StateRunning, transitions[0].To)
}

func TestRunHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := Run(ctx, newSession(), New(1, 0), 100, 0, Hooks{})

	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, sum.Ticks)
	require.Equal(t, bricks.StateIdle, sum.Final.State)
}
