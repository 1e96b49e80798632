package bricks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testDivisor = 10

var testArena = Arena{W: ToFixed(1280), H: ToFixed(660)}

func testPaddle() *Paddle {
	return &Paddle{X: ToFixed(560), Y: ToFixed(600), Width: ToFixed(160), Height: ToFixed(20)}
}

func testBall(x, y, vx, vy int) *Ball {
	return &Ball{
		X: ToFixed(x), Y: ToFixed(y),
		VX: ToFixed(vx), VY: ToFixed(vy),
		Size: ToFixed(12), Visible: true,
	}
}

func gridOf(bricks ...*Brick) *Grid {
	g := &Grid{}
	for _, b := range bricks {
		g.bricks = append(g.bricks, b)
		if b.Kind.Counts() {
			g.active++
		}
	}
	return g
}

func cell(x, y int, kind Kind) *Brick {
	return &Brick{X: ToFixed(x), Y: ToFixed(y), W: ToFixed(160), H: ToFixed(60), Kind: kind}
}

func TestResolveNothingHit(t *testing.T) {
	g := gridOf(cell(0, 60, KindNormal), cell(160, 60, KindStrong))
	ball := testBall(400, 300, 17, -17)

	res := Resolve(ball, testPaddle(), g, testArena, testDivisor)

	require.Equal(t, OutcomeNone, res.Outcome)
	require.Equal(t, ToFixed(17), ball.VX)
	require.Equal(t, ToFixed(-17), ball.VY)
	require.Equal(t, 2, g.Len())
	require.Equal(t, 2, g.Count())
	require.False(t, g.Bricks()[1].Damaged)
}

func TestResolveSideWalls(t *testing.T) {
	tests := []struct {
		name string
		x    int
		vx   int
	}{
		{"left", -5, -17},
		{"right", 1280 - 12 + 3, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := testBall(tt.x, 300, tt.vx, 17)

			res := Resolve(ball, nil, nil, testArena, testDivisor)
			require.True(t, res.Has(OutcomeWallBounceX))
			require.Equal(t, ToFixed(-tt.vx), ball.VX)
			require.Equal(t, ToFixed(17), ball.VY)

			// Still outside but already heading back: no second reversal.
			res = Resolve(ball, nil, nil, testArena, testDivisor)
			require.False(t, res.Has(OutcomeWallBounceX))
			require.Equal(t, ToFixed(-tt.vx), ball.VX)
		})
	}
}

func TestResolveBoundaryReversesOncePerCrossing(t *testing.T) {
	ball := testBall(1200, 300, 17, 0)
	reversals := 0
	for range 40 {
		ball.Advance()
		res := Resolve(ball, nil, nil, testArena, testDivisor)
		if res.Has(OutcomeWallBounceX) {
			reversals++
		}
		if ball.VX < 0 && ball.X < ToFixed(1000) {
			break
		}
	}
	require.Equal(t, 1, reversals)
}

func TestResolveTopWall(t *testing.T) {
	ball := testBall(300, -3, 17, -17)

	res := Resolve(ball, nil, nil, testArena, testDivisor)

	require.True(t, res.Has(OutcomeWallBounceY))
	require.Equal(t, ToFixed(17), ball.VY)
}

func TestResolveBottomExit(t *testing.T) {
	ball := testBall(100, 649, 17, 17)

	res := Resolve(ball, testPaddle(), nil, testArena, testDivisor)

	require.True(t, res.Has(OutcomeBottomExit))
	require.Equal(t, ToFixed(17), ball.VY, "bottom edge does not bounce")
}

func TestResolvePaddleDeflection(t *testing.T) {
	// Ball center at 660, paddle center at 640.
	ball := testBall(654, 595, -17, 17)

	res := Resolve(ball, testPaddle(), nil, testArena, testDivisor)

	require.True(t, res.Has(OutcomePaddleBounce))
	require.Equal(t, ToFixed(2), ball.VX)
	require.Equal(t, ToFixed(-17), ball.VY)

	// Moving away already: no second bounce while overlapping.
	res = Resolve(ball, testPaddle(), nil, testArena, testDivisor)
	require.False(t, res.Has(OutcomePaddleBounce))
	require.Equal(t, ToFixed(-17), ball.VY)
}

func TestResolvePaddleLeftSide(t *testing.T) {
	// Ball center at 580, 60px left of the paddle center.
	ball := testBall(574, 600, 17, 17)

	Resolve(ball, testPaddle(), nil, testArena, testDivisor)

	require.Equal(t, ToFixed(-6), ball.VX)
}

func TestResolvePaddleIgnoresRisingBall(t *testing.T) {
	// Overlapping the paddle while moving up: no bounce, no spin.
	ball := testBall(654, 595, 3, -17)

	res := Resolve(ball, testPaddle(), nil, testArena, testDivisor)

	require.False(t, res.Has(OutcomePaddleBounce))
	require.Equal(t, ToFixed(3), ball.VX)
	require.Equal(t, ToFixed(-17), ball.VY)
}

func TestResolveNormalBrick(t *testing.T) {
	g := gridOf(cell(0, 60, KindNormal))
	ball := testBall(50, 100, 17, -17)

	res := Resolve(ball, testPaddle(), g, testArena, testDivisor)

	require.True(t, res.Has(OutcomeBrick))
	require.Equal(t, EffectDestroyed, res.Effect)
	require.Equal(t, KindNormal, res.Kind)
	require.Zero(t, g.Count())
	require.Zero(t, g.Len())
	require.Equal(t, ToFixed(17), ball.VY)
	require.Equal(t, ToFixed(17), ball.VX, "bricks never touch vx")
}

func TestResolveStrongBrickTwoHits(t *testing.T) {
	g := gridOf(cell(0, 60, KindStrong), cell(160, 60, KindNormal))
	ball := testBall(50, 100, 17, -17)

	res := Resolve(ball, testPaddle(), g, testArena, testDivisor)
	require.Equal(t, EffectDamaged, res.Effect)
	require.True(t, g.Bricks()[0].Damaged)
	require.Equal(t, 2, g.Count())
	require.Equal(t, ToFixed(17), ball.VY)

	res = Resolve(ball, testPaddle(), g, testArena, testDivisor)
	require.Equal(t, EffectDestroyed, res.Effect)
	require.Equal(t, 1, g.Count())
	require.Equal(t, 1, g.Len())
	require.Equal(t, ToFixed(-17), ball.VY)

	res = Resolve(ball, testPaddle(), g, testArena, testDivisor)
	require.False(t, res.Has(OutcomeBrick))
	require.Equal(t, 1, g.Count())
}

func TestResolveInvulnerableBrick(t *testing.T) {
	g := gridOf(cell(0, 60, KindInvulnerable), cell(160, 60, KindNormal))
	ball := testBall(50, 100, 17, -17)

	for i := range 5 {
		vy := ball.VY
		res := Resolve(ball, testPaddle(), g, testArena, testDivisor)
		require.Equal(t, EffectReflected, res.Effect, "hit %d", i)
		require.Equal(t, -vy, ball.VY)
		require.Equal(t, 2, g.Len())
		require.Equal(t, 1, g.Count())
	}
}

func TestResolveEmptyMasksLaterBricks(t *testing.T) {
	g := gridOf(cell(0, 60, KindEmpty), cell(40, 60, KindNormal))
	ball := testBall(50, 100, 17, -17)

	res := Resolve(ball, testPaddle(), g, testArena, testDivisor)

	require.True(t, res.Has(OutcomeBrick))
	require.Equal(t, EffectNone, res.Effect)
	require.Equal(t, KindEmpty, res.Kind)
	require.Equal(t, ToFixed(-17), ball.VY)
	require.Equal(t, 1, g.Count())
	require.Equal(t, 2, g.Len())
}

func TestResolveAtMostOneBrickPerTick(t *testing.T) {
	g := gridOf(cell(0, 60, KindNormal), cell(40, 60, KindNormal))
	ball := testBall(50, 100, 17, -17)

	Resolve(ball, testPaddle(), g, testArena, testDivisor)

	require.Equal(t, 1, g.Count())
	require.Equal(t, ToFixed(40), g.Bricks()[0].X)
}
