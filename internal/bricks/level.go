// Package bricks implements the brick breaker simulation: level catalog,
// brick grid layout, ball and paddle kinematics, collision resolution and
// the round state machine. It draws nothing and reads no keys; the platform
// drives it through Session.
package bricks

import (
	"errors"
	"fmt"
)

// Kind is the type of a brick cell in a level definition.
type Kind int

const (
	KindEmpty        Kind = iota // Placeholder, never collides with effect
	KindNormal                   // Destroyed in one hit
	KindStrong                   // Damaged by the first hit, destroyed by the second
	KindInvulnerable             // Reflects, never destroyed
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNormal:
		return "normal"
	case KindStrong:
		return "strong"
	case KindInvulnerable:
		return "invulnerable"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the four known kinds.
func (k Kind) Valid() bool {
	return k >= KindEmpty && k <= KindInvulnerable
}

// Counts reports whether bricks of this kind must be cleared to win a round.
func (k Kind) Counts() bool {
	return k == KindNormal || k == KindStrong
}

// LevelColumns is the required number of cells in every level row.
const LevelColumns = 8

// Level is an immutable grid of brick kinds, one catalog entry.
type Level struct {
	ID   string
	Name string
	Rows [][]Kind
}

// CountActive returns the number of Normal and Strong cells.
func (l Level) CountActive() int {
	n := 0
	for _, row := range l.Rows {
		for _, k := range row {
			if k.Counts() {
				n++
			}
		}
	}
	return n
}

// Validate checks the row length and cell kinds.
func (l Level) Validate() error {
	if len(l.Rows) == 0 {
		return &LevelError{Level: l.ID, Row: -1, Col: -1, Reason: "no rows"}
	}
	for r, row := range l.Rows {
		if len(row) != LevelColumns {
			return &LevelError{
				Level:  l.ID,
				Row:    r,
				Col:    -1,
				Reason: fmt.Sprintf("row has %d cells, want %d", len(row), LevelColumns),
			}
		}
		for c, k := range row {
			if !k.Valid() {
				return &LevelError{Level: l.ID, Row: r, Col: c, Reason: fmt.Sprintf("unknown brick kind %d", int(k))}
			}
		}
	}
	return nil
}

// LevelError describes a malformed level definition.
type LevelError struct {
	Level  string
	Row    int // -1 when not row specific
	Col    int // -1 when not cell specific
	Reason string
}

func (e *LevelError) Error() string {
	switch {
	case e.Col >= 0:
		return fmt.Sprintf("level %q row %d col %d: %s", e.Level, e.Row, e.Col, e.Reason)
	case e.Row >= 0:
		return fmt.Sprintf("level %q row %d: %s", e.Level, e.Row, e.Reason)
	default:
		return fmt.Sprintf("level %q: %s", e.Level, e.Reason)
	}
}

// ErrEmptyCatalog is returned when a catalog has no levels.
var ErrEmptyCatalog = errors.New("catalog has no levels")

// Catalog is the ordered, validated sequence of levels.
type Catalog struct {
	levels []Level
}

// NewCatalog validates every level and returns the catalog.
// Validation happens here so a malformed level never reaches a round.
func NewCatalog(levels []Level) (*Catalog, error) {
	if len(levels) == 0 {
		return nil, ErrEmptyCatalog
	}
	owned := make([]Level, len(levels))
	for i, l := range levels {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		owned[i] = cloneLevel(l)
	}
	return &Catalog{levels: owned}, nil
}

// MustCatalog is like NewCatalog but panics on error.
// Use it for compiled-in levels only.
func MustCatalog(levels []Level) *Catalog {
	c, err := NewCatalog(levels)
	if err != nil {
		panic(err)
	}
	return c
}

// Level returns the level at index. ok is false past the last entry,
// which signals that the game is won.
func (c *Catalog) Level(index int) (Level, bool) {
	if index < 0 || index >= len(c.levels) {
		return Level{}, false
	}
	return c.levels[index], true
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// Levels returns a copy of all levels in order.
func (c *Catalog) Levels() []Level {
	out := make([]Level, len(c.levels))
	for i, l := range c.levels {
		out[i] = cloneLevel(l)
	}
	return out
}

func cloneLevel(l Level) Level {
	rows := make([][]Kind, len(l.Rows))
	for i, row := range l.Rows {
		rows[i] = append([]Kind(nil), row...)
	}
	return Level{ID: l.ID, Name: l.Name, Rows: rows}
}

// ClassicLevels returns the three built-in levels.
// Cells: 0 empty, 1 normal, 2 strong (two hits), 3 invulnerable.
func ClassicLevels() []Level {
	return []Level{
		{
			ID:   "starting",
			Name: "Starting",
			Rows: kinds(
				[]int{0, 3, 1, 1, 1, 1, 0, 0},
				[]int{0, 1, 1, 2, 2, 1, 1, 0},
				[]int{0, 1, 1, 1, 1, 1, 1, 0},
				[]int{0, 0, 1, 1, 1, 1, 0, 0},
			),
		},
		{
			ID:   "mid",
			Name: "Mid",
			Rows: kinds(
				[]int{0, 0, 2, 1, 1, 1, 0, 0},
				[]int{0, 1, 2, 2, 2, 2, 1, 0},
				[]int{1, 2, 2, 3, 3, 2, 2, 1},
				[]int{2, 1, 2, 2, 2, 2, 1, 2},
				[]int{0, 3, 1, 2, 2, 1, 3, 0},
			),
		},
		{
			ID:   "advanced",
			Name: "Advanced",
			Rows: kinds(
				[]int{0, 0, 1, 3, 1, 1, 0, 0},
				[]int{2, 0, 1, 1, 1, 0, 2, 0},
				[]int{2, 2, 1, 2, 2, 1, 2, 2},
				[]int{2, 2, 2, 3, 3, 2, 2, 2},
				[]int{3, 1, 3, 3, 3, 3, 1, 3},
			),
		},
	}
}

// ClassicCatalog returns the built-in catalog.
func ClassicCatalog() *Catalog {
	return MustCatalog(ClassicLevels())
}

// kinds converts integer rows to Kind rows without validating them.
func kinds(rows ...[]int) [][]Kind {
	out := make([][]Kind, len(rows))
	for i, row := range rows {
		out[i] = make([]Kind, len(row))
		for j, v := range row {
			out[i][j] = Kind(v)
		}
	}
	return out
}

// KindsFromInts converts integer rows as found in level files.
func KindsFromInts(rows [][]int) [][]Kind {
	return kinds(rows...)
}
