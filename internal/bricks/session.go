package bricks

import (
	"fmt"

	"github.com/vovakirdan/bricks/internal/config"
)

// State is the lifecycle state of a session.
type State int

const (
	StateIdle     State = iota // Waiting for the first launch
	StateRunning               // Ball in play, ticks advance the world
	StateRoundWon              // Level cleared, next level prepared
	StateWon                   // Last level cleared
	StateLost                  // Ball crossed the bottom edge
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateRoundWon:
		return "round_won"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Message keys shown by the presentation layer for each state.
const (
	MessageNone     = ""
	MessageStart    = "press to start"
	MessageRoundWon = "round won"
	MessageWon      = "won"
	MessageLost     = "lost"
)

// MessageKey returns the overlay message for the state. Running has none.
func (s State) MessageKey() string {
	switch s {
	case StateIdle:
		return MessageStart
	case StateRoundWon:
		return MessageRoundWon
	case StateWon:
		return MessageWon
	case StateLost:
		return MessageLost
	default:
		return MessageNone
	}
}

// Modifiers are per-axis speed magnitudes in pixels per tick.
type Modifiers struct {
	BallX int
	BallY int
	PlatX int
}

// Add returns the component-wise sum.
func (m Modifiers) Add(o Modifiers) Modifiers {
	return Modifiers{BallX: m.BallX + o.BallX, BallY: m.BallY + o.BallY, PlatX: m.PlatX + o.PlatX}
}

// Settings fixes the geometry and tuning of a session.
type Settings struct {
	ArenaW, ArenaH int // Pixels
	Layout         Layout
	BallSize       int
	LaunchOffset   int // Ball starts this far above the paddle top
	PaddleW        int
	PaddleH        int
	PaddleBottom   int // Distance from the arena bottom to the paddle top
	Base           Modifiers
	Step           Modifiers // Added to the modifiers on every level advance
	Divisor        int       // Paddle deflection divisor
}

// DefaultSettings returns the stock tuning for an arena of the given size.
func DefaultSettings(arenaW, arenaH int) Settings {
	return SettingsFromConfig(config.DefaultBricks(), arenaW, arenaH)
}

// SettingsFromConfig converts the game config into session settings.
func SettingsFromConfig(cfg config.Bricks, arenaW, arenaH int) Settings {
	return Settings{
		ArenaW: arenaW,
		ArenaH: arenaH,
		Layout: Layout{
			CellW: cfg.Layout.CellWidth,
			CellH: cfg.Layout.CellHeight,
			Top:   cfg.Layout.Top,
		},
		BallSize:     cfg.Ball.Size,
		LaunchOffset: cfg.Ball.LaunchOffset,
		PaddleW:      cfg.Paddle.Width,
		PaddleH:      cfg.Paddle.Height,
		PaddleBottom: cfg.Paddle.BottomOffset,
		Base:         Modifiers(cfg.Modifiers),
		Step:         Modifiers(cfg.Progression),
		Divisor:      cfg.Physics.DeflectionDivisor,
	}
}

// Transition records one state change.
type Transition struct {
	From  State
	To    State
	Level int // Level index after the change
}

// RunEnd summarizes a finished run, from the launch at level 0 to Won or Lost.
type RunEnd struct {
	Outcome      State // StateWon or StateLost
	LevelReached int   // 1-based level the run ended on
	Ticks        uint64
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Resolution  Resolution
	Transitions []Transition
	End         *RunEnd // Set when the tick ended the run
}

// Session owns the whole mutable game: level index, modifiers, lifecycle
// state, paddle, ball and the active grid. It is not safe for concurrent use;
// the host serializes input and ticks.
type Session struct {
	catalog  *Catalog
	settings Settings

	state State
	level int
	mods  Modifiers
	ticks uint64

	runTicks uint64 // Ticks since the run's first launch

	paddle Paddle
	ball   Ball
	grid   *Grid
}

// NewSession creates an idle session at level 0 with the paddle centered.
func NewSession(catalog *Catalog, settings Settings) *Session {
	s := &Session{
		catalog:  catalog,
		settings: settings,
		state:    StateIdle,
		mods:     settings.Base,
	}
	s.paddle = Paddle{
		Width:  ToFixed(settings.PaddleW),
		Height: ToFixed(settings.PaddleH),
	}
	s.paddle.X = ToFixed(settings.ArenaW - settings.PaddleW).Div(2)
	s.placePaddle()
	s.ball = Ball{Size: ToFixed(settings.BallSize)}
	return s
}

// SetIntent records a direction press or release; it is read on the next tick.
func (s *Session) SetIntent(dir Direction, pressed bool) {
	s.paddle.Intent.Set(dir, pressed)
}

// Launch starts a round at the current level from any resting state.
// It reports whether the session started running.
func (s *Session) Launch() (Transition, bool) {
	if s.state == StateRunning {
		return Transition{}, false
	}
	level, ok := s.catalog.Level(s.level)
	if !ok {
		s.level = 0
		level, _ = s.catalog.Level(0)
	}
	if s.state != StateRoundWon {
		s.runTicks = 0
	}
	s.grid = BuildGrid(level, s.settings.ArenaW, s.settings.ArenaH, s.settings.Layout)
	s.ball.X = s.paddle.CenterX() - s.ball.Size/2
	s.ball.Y = s.paddle.Y - ToFixed(s.settings.LaunchOffset)
	s.ball.VX = ToFixed(s.mods.BallX)
	s.ball.VY = ToFixed(s.mods.BallY)
	s.ball.Visible = true
	return s.transition(StateRunning), true
}

// Reset abandons the current game and returns to Idle at level 0 with base modifiers.
func (s *Session) Reset() Transition {
	s.restart()
	return s.transition(StateIdle)
}

// Tick advances the world by one frame. Outside Running it does nothing.
func (s *Session) Tick() TickResult {
	var out TickResult
	if s.state != StateRunning {
		return out
	}
	s.ticks++
	s.runTicks++

	arena := s.arena()
	s.paddle.Update(ToFixed(s.mods.PlatX), arena.W)
	s.ball.Advance()
	out.Resolution = Resolve(&s.ball, &s.paddle, s.grid, arena, s.settings.Divisor)

	switch {
	case out.Resolution.Has(OutcomeBottomExit):
		out.End = &RunEnd{Outcome: StateLost, LevelReached: s.level + 1, Ticks: s.runTicks}
		s.restart()
		out.Transitions = append(out.Transitions, s.transition(StateLost))
	case s.grid.Count() == 0:
		out.Transitions = s.completeRound()
		if s.state == StateWon {
			out.End = &RunEnd{Outcome: StateWon, LevelReached: s.catalog.Len(), Ticks: s.runTicks}
		}
	}
	return out
}

// completeRound moves past a cleared level. Clearing the last level wins the
// game; otherwise the next level is prepared and waits for a launch.
func (s *Session) completeRound() []Transition {
	s.level++
	won := s.transition(StateRoundWon)
	next, ok := s.catalog.Level(s.level)
	if !ok {
		s.restart()
		return []Transition{won, s.transition(StateWon)}
	}
	s.mods = s.mods.Add(s.settings.Step)
	s.grid = BuildGrid(next, s.settings.ArenaW, s.settings.ArenaH, s.settings.Layout)
	s.ball.Visible = false
	return []Transition{won}
}

func (s *Session) restart() {
	s.level = 0
	s.mods = s.settings.Base
	s.grid = nil
	s.ball.Visible = false
}

func (s *Session) transition(to State) Transition {
	t := Transition{From: s.state, To: to, Level: s.level}
	s.state = to
	return t
}

// Resize changes the arena size. The paddle is re-anchored and clamped;
// bricks already laid out keep their positions.
func (s *Session) Resize(arenaW, arenaH int) {
	s.settings.ArenaW = arenaW
	s.settings.ArenaH = arenaH
	s.placePaddle()
}

func (s *Session) placePaddle() {
	s.paddle.Y = ToFixed(s.settings.ArenaH - s.settings.PaddleBottom)
	s.paddle.Clamp(ToFixed(s.settings.ArenaW))
}

func (s *Session) arena() Arena {
	return Arena{W: ToFixed(s.settings.ArenaW), H: ToFixed(s.settings.ArenaH)}
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Running reports whether ticks currently advance the world.
func (s *Session) Running() bool { return s.state == StateRunning }

// Level returns the current level index.
func (s *Session) Level() int { return s.level }

// Modifiers returns the current speed modifiers.
func (s *Session) Modifiers() Modifiers { return s.mods }

// Ticks returns the number of ticks run since the session was created.
func (s *Session) Ticks() uint64 { return s.ticks }

// Settings returns the session settings.
func (s *Session) Settings() Settings { return s.settings }

// Catalog returns the level catalog.
func (s *Session) Catalog() *Catalog { return s.catalog }

// Ball returns a copy of the ball.
func (s *Session) Ball() Ball { return s.ball }

// Paddle returns a copy of the paddle.
func (s *Session) Paddle() Paddle { return s.paddle }

// Grid returns the active grid, nil outside a round.
func (s *Session) Grid() *Grid { return s.grid }
