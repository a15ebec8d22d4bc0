package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/games/snake"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

// RenderScreen converts a Screen to a styled string for display.
// Consecutive cells of the same color share one style run; blanks join
// whatever run they are in.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 1; y <= s.Height(); y++ {
		if y > 1 {
			sb.WriteRune('\n')
		}

		x := 1
		for x <= s.Width() {
			start := snake.GlyphColor(s.Cell(core.Pt(core.Coordinate(x), core.Coordinate(y))))
			var run strings.Builder
			for x <= s.Width() {
				r := s.Cell(core.Pt(core.Coordinate(x), core.Coordinate(y)))
				if r != ' ' && snake.GlyphColor(r) != start {
					break
				}
				run.WriteRune(r)
				x++
			}

			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
