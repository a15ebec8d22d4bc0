package snake

import (
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/termsnake/internal/core"
)

// Frame glyphs.
const (
	HorzBoundary      = "─"
	VertBoundary      = "│"
	TopLeftCorner     = "┌"
	TopRightCorner    = "┐"
	BottomLeftCorner  = "└"
	BottomRightCorner = "┘"
)

// Board glyphs.
const (
	HeadGlyph  = "@"
	BodyGlyph  = "■"
	FoodGlyph  = "□"
	EmptyGlyph = " "
)

// End screen text.
const (
	GameOverText = "Game Over"
	GameOverHint = "b: play again   q: quit"
)

// GlyphColor returns the color a frontend should use for glyph r.
func GlyphColor(r rune) core.Color {
	switch string(r) {
	case HeadGlyph:
		return core.ColorYellow
	case BodyGlyph:
		return core.ColorGreen
	case FoodGlyph:
		return core.ColorRed
	case HorzBoundary, VertBoundary,
		TopLeftCorner, TopRightCorner,
		BottomLeftCorner, BottomRightCorner:
		return core.ColorGray
	}
	return core.ColorBrightWhite
}

// DrawBorder draws a width x height frame with a blank interior.
func DrawBorder(r Renderer, b core.Bounds) {
	inner := int(b.Width) - 2
	left := b.TopLeft.X

	r.Draw(core.Pt(left, b.TopLeft.Y),
		TopLeftCorner+strings.Repeat(HorzBoundary, inner)+TopRightCorner)

	row := VertBoundary + strings.Repeat(EmptyGlyph, inner) + VertBoundary
	for y := b.TopLeft.Y + 1; y < b.BottomRight.Y; y++ {
		r.Draw(core.Pt(left, y), row)
	}

	r.Draw(core.Pt(left, b.BottomRight.Y),
		BottomLeftCorner+strings.Repeat(HorzBoundary, inner)+BottomRightCorner)
}

// drawSnake paints every segment, marking the head.
func drawSnake(r Renderer, s Snake) {
	for _, seg := range s.body[:len(s.body)-1] {
		r.Draw(seg, BodyGlyph)
	}
	r.Draw(s.Head(), HeadGlyph)
}

// eraseSnake blanks the cells the snake currently covers.
func eraseSnake(r Renderer, s Snake) {
	for _, seg := range s.body {
		r.Draw(seg, EmptyGlyph)
	}
}

// drawCentered draws text horizontally centered on row y.
func drawCentered(r Renderer, b core.Bounds, y core.Coordinate, text string) {
	n := core.Coordinate(utf8.RuneCountInString(text))
	x := core.Coordinate(1)
	if n < b.Width {
		x = (b.Width-n)/2 + 1
	}
	r.Draw(core.Pt(x, y), text)
}
