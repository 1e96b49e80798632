package bricks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSession() *Session {
	return NewSession(ClassicCatalog(), DefaultSettings(1280, 660))
}

func TestNewSessionIsIdle(t *testing.T) {
	s := newTestSession()

	require.Equal(t, StateIdle, s.State())
	require.Equal(t, MessageStart, s.State().MessageKey())
	require.Zero(t, s.Level())
	require.Equal(t, Modifiers{BallX: 17, BallY: 17, PlatX: 25}, s.Modifiers())
	require.Nil(t, s.Grid())

	p := s.Paddle()
	require.Equal(t, ToFixed(560), p.X)
	require.Equal(t, ToFixed(600), p.Y)
}

func TestLaunch(t *testing.T) {
	s := newTestSession()

	tr, ok := s.Launch()
	require.True(t, ok)
	require.Equal(t, Transition{From: StateIdle, To: StateRunning, Level: 0}, tr)
	require.True(t, s.Running())
	require.Equal(t, MessageNone, s.State().MessageKey())
	require.Equal(t, 20, s.Grid().Count())

	b := s.Ball()
	require.True(t, b.Visible)
	require.Equal(t, ToFixed(634), b.X)
	require.Equal(t, ToFixed(560), b.Y)
	require.Equal(t, ToFixed(17), b.VX)
	require.Equal(t, ToFixed(17), b.VY)

	_, ok = s.Launch()
	require.False(t, ok, "launch is ignored while running")
}

func TestTickOutsideRunningDoesNothing(t *testing.T) {
	s := newTestSession()
	s.SetIntent(DirRight, true)
	before := s.Snapshot()

	res := s.Tick()

	require.Empty(t, res.Transitions)
	require.Equal(t, OutcomeNone, res.Resolution.Outcome)
	after := s.Snapshot()
	require.Equal(t, before.Hash(), after.Hash())
	require.Zero(t, s.Ticks())
}

func TestTickMovesPaddleByIntent(t *testing.T) {
	s := newTestSession()
	s.Launch()

	s.SetIntent(DirLeft, true)
	s.Tick()
	require.Equal(t, ToFixed(535), s.Paddle().X)

	s.SetIntent(DirRight, true)
	s.Tick()
	require.Equal(t, ToFixed(535), s.Paddle().X, "opposite intents cancel")

	s.SetIntent(DirLeft, false)
	s.Tick()
	require.Equal(t, ToFixed(560), s.Paddle().X)
}

func TestBottomExitLoses(t *testing.T) {
	s := newTestSession()
	s.Launch()
	s.level = 1
	s.mods = Modifiers{BallX: 19, BallY: 19, PlatX: 28}
	s.ball.X = ToFixed(100)
	s.ball.Y = ToFixed(640)

	res := s.Tick()

	require.True(t, res.Resolution.Has(OutcomeBottomExit))
	require.Equal(t, &RunEnd{Outcome: StateLost, LevelReached: 2, Ticks: 1}, res.End)
	require.Equal(t, []Transition{{From: StateRunning, To: StateLost, Level: 0}}, res.Transitions)
	require.Equal(t, StateLost, s.State())
	require.Equal(t, MessageLost, s.State().MessageKey())
	require.Zero(t, s.Level())
	require.Equal(t, s.Settings().Base, s.Modifiers())
	require.Nil(t, s.Grid())
	require.False(t, s.Ball().Visible)

	ticks := s.Ticks()
	s.Tick()
	require.Equal(t, ticks, s.Ticks(), "ticking stops once lost")

	_, ok := s.Launch()
	require.True(t, ok)
	require.Equal(t, 20, s.Grid().Count())
}

func TestClearingLevelAdvances(t *testing.T) {
	s := newTestSession()
	s.Launch()
	s.grid = &Grid{}

	res := s.Tick()

	require.Equal(t, []Transition{{From: StateRunning, To: StateRoundWon, Level: 1}}, res.Transitions)
	require.Nil(t, res.End)
	require.Equal(t, StateRoundWon, s.State())
	require.Equal(t, MessageRoundWon, s.State().MessageKey())
	require.Equal(t, 1, s.Level())
	require.Equal(t, Modifiers{BallX: 19, BallY: 19, PlatX: 28}, s.Modifiers())
	require.Equal(t, 28, s.Grid().Count())
	require.False(t, s.Ball().Visible)

	tr, ok := s.Launch()
	require.True(t, ok)
	require.Equal(t, Transition{From: StateRoundWon, To: StateRunning, Level: 1}, tr)
	require.Equal(t, ToFixed(19), s.Ball().VX)
	require.Equal(t, ToFixed(19), s.Ball().VY)
}

func TestClearingLastLevelWins(t *testing.T) {
	s := newTestSession()
	s.level = 2
	s.mods = Modifiers{BallX: 21, BallY: 21, PlatX: 31}
	s.Launch()
	s.grid = &Grid{}

	res := s.Tick()

	require.Equal(t, []Transition{
		{From: StateRunning, To: StateRoundWon, Level: 3},
		{From: StateRoundWon, To: StateWon, Level: 0},
	}, res.Transitions)
	require.Equal(t, &RunEnd{Outcome: StateWon, LevelReached: 3, Ticks: 1}, res.End)
	require.Equal(t, StateWon, s.State())
	require.Equal(t, MessageWon, s.State().MessageKey())
	require.Zero(t, s.Level())
	require.Equal(t, s.Settings().Base, s.Modifiers())
	require.Nil(t, s.Grid())
}

func TestReset(t *testing.T) {
	s := newTestSession()
	s.Launch()
	s.level = 2

	tr := s.Reset()

	require.Equal(t, Transition{From: StateRunning, To: StateIdle, Level: 0}, tr)
	require.Equal(t, StateIdle, s.State())
	require.Zero(t, s.Level())
	require.Nil(t, s.Grid())
	require.False(t, s.Ball().Visible)
}

func TestResizeClampsPaddle(t *testing.T) {
	s := newTestSession()

	s.Resize(600, 400)

	p := s.Paddle()
	require.Equal(t, ToFixed(440), p.X)
	require.Equal(t, ToFixed(340), p.Y)
}

func TestVelocityMagnitudeChangesOnlyOnEvents(t *testing.T) {
	s := newTestSession()
	s.Launch()

	for i := range 2000 {
		if !s.Running() {
			s.Launch()
			continue
		}
		// Keep the paddle under the ball.
		s.SetIntent(DirLeft, s.ball.CenterX() < s.paddle.CenterX())
		s.SetIntent(DirRight, s.ball.CenterX() > s.paddle.CenterX())

		vx, vy := s.ball.VX.Abs(), s.ball.VY.Abs()
		res := s.Tick()
		if len(res.Transitions) > 0 || res.Resolution.Has(OutcomePaddleBounce) {
			continue
		}
		require.Equal(t, vx, s.ball.VX.Abs(), "tick %d", i)
		require.Equal(t, vy, s.ball.VY.Abs(), "tick %d", i)
	}
}

func TestSnapshot(t *testing.T) {
	s := newTestSession()
	s.Launch()

	snap := s.Snapshot()
	require.Equal(t, StateRunning, snap.State)
	require.Equal(t, "Starting", snap.LevelName)
	require.Equal(t, 3, snap.LevelCount)
	require.Len(t, snap.Bricks, 32)
	require.Equal(t, 20, snap.Active)
	require.True(t, snap.BallVisible)

	s.Tick()
	require.NotEqual(t, snap.Hash(), s.Snapshot().Hash())
}

func TestSessionDeterminism(t *testing.T) {
	// Same intent script, same world.
	script := func(i int, s *Session) {
		if !s.Running() {
			s.Launch()
		}
		s.SetIntent(DirRight, i%7 < 3)
		s.SetIntent(DirLeft, i%11 < 4)
	}

	s1 := newTestSession()
	s2 := newTestSession()
	for i := range 1500 {
		script(i, s1)
		s1.Tick()
		script(i, s2)
		s2.Tick()
	}

	snap1, snap2 := s1.Snapshot(), s2.Snapshot()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
	if snap1.Ball != snap2.Ball {
		t.Errorf("Determinism failed: ball positions differ")
	}
}
