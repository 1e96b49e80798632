package core

// Color is the palette role of a screen cell.
// The platform decides how each role looks on the terminal.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBrick         // Normal brick
	ColorStrong        // Strong brick, undamaged
	ColorDamaged       // Strong brick after its first hit
	ColorSolid         // Invulnerable brick
	ColorPaddle
	ColorBall
	ColorMessage // Overlay text
	ColorFrame   // HUD separator and dimmed chrome
)

var colorNames = [...]string{
	ColorDefault: "default",
	ColorBrick:   "brick",
	ColorStrong:  "strong",
	ColorDamaged: "damaged",
	ColorSolid:   "solid",
	ColorPaddle:  "paddle",
	ColorBall:    "ball",
	ColorMessage: "message",
	ColorFrame:   "frame",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
