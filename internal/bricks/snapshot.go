package bricks

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// BrickView is the read-only render view of one brick.
type BrickView struct {
	Box     Box
	Kind    Kind
	Damaged bool
}

// Snapshot is the per-tick read-only view handed to the renderer.
// Positions are fixed-point arena coordinates.
type Snapshot struct {
	Tick        uint64
	State       State
	Message     string
	Level       int
	LevelName   string
	LevelCount  int
	Modifiers   Modifiers
	Arena       Arena
	Ball        Box
	BallVX      Fixed
	BallVY      Fixed
	BallVisible bool
	Paddle      Box
	Bricks      []BrickView // Scan order, placeholders included
	Active      int
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        s.ticks,
		State:       s.state,
		Message:     s.state.MessageKey(),
		Level:       s.level,
		LevelCount:  s.catalog.Len(),
		Modifiers:   s.mods,
		Arena:       s.arena(),
		Ball:        s.ball.Box(),
		BallVX:      s.ball.VX,
		BallVY:      s.ball.VY,
		BallVisible: s.ball.Visible,
		Paddle:      s.paddle.Box(),
		Active:      s.grid.Count(),
	}
	if lvl, ok := s.catalog.Level(s.level); ok {
		snap.LevelName = lvl.Name
	}
	bricks := s.grid.Bricks()
	snap.Bricks = make([]BrickView, len(bricks))
	for i, b := range bricks {
		snap.Bricks[i] = BrickView{Box: b.Box(), Kind: b.Kind, Damaged: b.Damaged}
	}
	return snap
}

// Hash returns an xxhash digest of the snapshot for determinism checks.
func (snap Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash computation
		_, _ = d.Write(buf[:])
	}
	putBox := func(b Box) {
		put(int64(b.X))
		put(int64(b.Y))
		put(int64(b.W))
		put(int64(b.H))
	}

	put(int64(snap.Tick)) //#nosec G115 -- hash computation
	put(int64(snap.State))
	put(int64(snap.Level))
	put(int64(snap.Modifiers.BallX))
	put(int64(snap.Modifiers.BallY))
	put(int64(snap.Modifiers.PlatX))
	put(int64(snap.Arena.W))
	put(int64(snap.Arena.H))
	putBox(snap.Ball)
	put(int64(snap.BallVX))
	put(int64(snap.BallVY))
	if snap.BallVisible {
		put(1)
	} else {
		put(0)
	}
	putBox(snap.Paddle)
	put(int64(snap.Active))
	for _, b := range snap.Bricks {
		putBox(b.Box)
		put(int64(b.Kind))
		if b.Damaged {
			put(1)
		} else {
			put(0)
		}
	}
	return d.Sum64()
}
