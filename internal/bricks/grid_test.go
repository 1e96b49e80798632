package bricks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildGridStartingLevel(t *testing.T) {
	lvl := ClassicLevels()[0]
	g := BuildGrid(lvl, 1280, 660, DefaultLayout)

	require.Equal(t, 20, g.Count())
	require.Equal(t, 32, g.Len())
	require.Zero(t, g.Skipped())

	first := g.Bricks()[0]
	require.Equal(t, KindEmpty, first.Kind)
	require.Equal(t, ToFixed(0), first.X)
	require.Equal(t, ToFixed(60), first.Y)

	wrapped := g.Bricks()[8]
	require.Equal(t, ToFixed(0), wrapped.X)
	require.Equal(t, ToFixed(120), wrapped.Y)
}

func TestBuildGridCentersHorizontally(t *testing.T) {
	lvl := ClassicLevels()[0]

	g := BuildGrid(lvl, 900, 660, DefaultLayout)
	require.Equal(t, ToFixed(50), g.Bricks()[0].X)
	// 900px holds five cells: 50, 210, 370, 530, 690.
	require.Equal(t, ToFixed(50), g.Bricks()[5].X)
	require.Equal(t, ToFixed(120), g.Bricks()[5].Y)

	odd := BuildGrid(lvl, 1281, 660, DefaultLayout)
	require.Equal(t, Fixed(Scale/2), odd.Bricks()[0].X)
}

func TestBuildGridStickySkip(t *testing.T) {
	lvl := ClassicLevels()[1]

	// Fifth row would start at y=300, past 500/2.
	g := BuildGrid(lvl, 1280, 500, DefaultLayout)
	require.Equal(t, 8, g.Skipped())
	require.Equal(t, 32, g.Len())
	require.Equal(t, 24, g.Count())

	full := BuildGrid(lvl, 1280, 660, DefaultLayout)
	require.Zero(t, full.Skipped())
	require.Equal(t, 28, full.Count())
}

func TestBuildGridCountMatchesPlacedCells(t *testing.T) {
	sizes := [][2]int{{1280, 660}, {800, 400}, {900, 300}, {320, 240}, {1600, 900}}
	for _, lvl := range ClassicLevels() {
		for _, sz := range sizes {
			g := BuildGrid(lvl, sz[0], sz[1], DefaultLayout)

			placed := 0
			for _, b := range g.Bricks() {
				if b.Kind.Counts() {
					placed++
				}
			}
			require.Equal(t, placed, g.Count(), "%s at %v", lvl.ID, sz)
			require.Equal(t, len(lvl.Rows)*LevelColumns, g.Len()+g.Skipped(), "%s at %v", lvl.ID, sz)
			if g.Skipped() == 0 {
				require.Equal(t, lvl.CountActive(), g.Count())
			}
		}
	}
}

func TestGridRemoveAndDamage(t *testing.T) {
	g := BuildGrid(ClassicLevels()[0], 1280, 660, DefaultLayout)

	var strong, normal, empty *Brick
	for _, b := range g.Bricks() {
		switch {
		case b.Kind == KindStrong && strong == nil:
			strong = b
		case b.Kind == KindNormal && normal == nil:
			normal = b
		case b.Kind == KindEmpty && empty == nil:
			empty = b
		}
	}

	require.True(t, g.MarkDamaged(strong))
	require.False(t, g.MarkDamaged(strong))
	require.False(t, g.MarkDamaged(normal))
	require.Equal(t, 20, g.Count())

	require.True(t, g.Remove(normal))
	require.False(t, g.Remove(normal))
	require.Equal(t, 19, g.Count())

	require.True(t, g.Remove(empty))
	require.Equal(t, 19, g.Count())
	require.Equal(t, 30, g.Len())
}

func TestNilGrid(t *testing.T) {
	var g *Grid
	require.Zero(t, g.Count())
	require.Zero(t, g.Len())
	require.Nil(t, g.Bricks())
}
