package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bricks/internal/bricks"
	"github.com/vovakirdan/bricks/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar       = '▀'
	BallChar         = '●'
	NormalBrickChar  = '█'
	StrongBrickChar  = '▓'
	DamagedBrickChar = '▒'
	SolidBrickChar   = '█'
	SeparatorChar    = '─'
)

// colorStyles maps palette roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorBrick:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.ColorStrong:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	core.ColorDamaged: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorSolid:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorPaddle:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColorBall:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	core.ColorMessage: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColorFrame:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// Messages shown in the overlay box, by session message key.
var messages = map[string]string{
	bricks.MessageStart:    "Press space to start the game",
	bricks.MessageRoundWon: "Round won! Press space to go to the next level",
	bricks.MessageWon:      "You've won! Press space to play again",
	bricks.MessageLost:     "Uh oh, you lost! Press space to play again",
}

// MessageText returns the overlay text for a message key, empty for none.
func MessageText(keyName string) string {
	return messages[keyName]
}

// brickLook returns the glyph and color of a brick.
func brickLook(b bricks.BrickView) (rune, core.Color) {
	switch b.Kind {
	case bricks.KindStrong:
		if b.Damaged {
			return DamagedBrickChar, core.ColorDamaged
		}
		return StrongBrickChar, core.ColorStrong
	case bricks.KindInvulnerable:
		return SolidBrickChar, core.ColorSolid
	default:
		return NormalBrickChar, core.ColorBrick
	}
}

// Draw paints a snapshot onto the screen. HUD rows sit above view.OriginY.
func Draw(s *core.Screen, snap bricks.Snapshot, view core.Viewport) {
	s.Clear()
	drawHUD(s, snap, view.OriginY)

	for _, b := range snap.Bricks {
		if b.Kind == bricks.KindEmpty {
			continue
		}
		r := boxToCells(view, b.Box)
		// Keep a one-cell gap between neighbours.
		if r.W > 1 {
			r.W--
		}
		glyph, color := brickLook(b)
		s.DrawRect(r, glyph, color)
	}

	s.DrawRect(boxToCells(view, snap.Paddle), PaddleChar, core.ColorPaddle)

	if snap.BallVisible {
		bx, by := view.ToCell(snap.Ball.X.Round(), snap.Ball.Y.Round())
		s.SetColored(bx, by, BallChar, core.ColorBall)
	}

	if text := MessageText(snap.Message); text != "" {
		drawMessage(s, text, view.OriginY)
	}
}

func boxToCells(view core.Viewport, b bricks.Box) core.Rect {
	return view.RectToCells(b.X.Round(), b.Y.Round(), b.W.Round(), b.H.Round())
}

func drawHUD(s *core.Screen, snap bricks.Snapshot, rows int) {
	if rows <= 0 {
		return
	}
	hud := fmt.Sprintf(" BRICKS  Level %d/%d %s  Bricks %d  %s",
		snap.Level+1, snap.LevelCount, snap.LevelName, snap.Active, snap.State)
	s.DrawText(0, 0, hud)
	if rows > 1 {
		s.DrawHLine(0, rows-1, s.Width(), SeparatorChar, core.ColorFrame)
	}
}

// drawMessage draws a boxed message centered in the arena.
func drawMessage(s *core.Screen, text string, top int) {
	w := core.Min(len([]rune(text))+4, s.Width())
	h := 3
	x := (s.Width() - w) / 2
	y := core.Clamp(top+(s.Height()-top-h)/2, 0, core.Max(s.Height()-h, 0))
	box := core.NewRect(x, y, w, h)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box)
	for i, r := range []rune(text) {
		if x+2+i >= box.Right()-1 {
			break
		}
		s.SetColored(x+2+i, y+1, r, core.ColorMessage)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
