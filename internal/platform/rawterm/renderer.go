// Package rawterm runs the snake game directly on the terminal without a UI
// framework: termenv escape sequences for output and eiannone/keyboard for
// raw key events.
package rawterm

import (
	"bufio"
	"io"

	"github.com/muesli/termenv"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/games/snake"
)

// ansiColors maps core.Color to ANSI color codes.
var ansiColors = map[core.Color]string{
	core.ColorGreen:       "2",
	core.ColorYellow:      "3",
	core.ColorRed:         "1",
	core.ColorGray:        "245",
	core.ColorBrightWhite: "15",
}

// Renderer implements snake.Renderer with cursor addressing.
// Output is buffered until Update; the first write error is kept and
// reported by Err.
type Renderer struct {
	out *termenv.Output
	buf *bufio.Writer
	err error
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	buf := bufio.NewWriter(w)
	return &Renderer{
		out: termenv.NewOutput(buf, opts...),
		buf: buf,
	}
}

// Draw implements snake.Renderer.
func (r *Renderer) Draw(p core.Point, text string) {
	r.out.MoveCursor(int(p.Y), int(p.X))
	_, _ = r.out.WriteString(r.style(text))
}

// style colors text by its first glyph. Blank text is left unstyled.
func (r *Renderer) style(text string) string {
	for _, ch := range text {
		if ch == ' ' {
			continue
		}
		code, ok := ansiColors[snake.GlyphColor(ch)]
		if !ok {
			return text
		}
		return r.out.String(text).Foreground(r.out.Color(code)).String()
	}
	return text
}

// Clear implements snake.Renderer.
func (r *Renderer) Clear() {
	r.out.ClearScreen()
	r.Update()
}

// Update implements snake.Renderer.
func (r *Renderer) Update() {
	if err := r.buf.Flush(); err != nil && r.err == nil {
		r.err = err
	}
}

// Err returns the first error seen while flushing.
func (r *Renderer) Err() error {
	return r.err
}

// Start switches to the alternate screen and hides the cursor.
func (r *Renderer) Start() {
	r.out.AltScreen()
	r.out.HideCursor()
	r.Update()
}

// Stop restores the cursor and the main screen.
func (r *Renderer) Stop() {
	r.out.ShowCursor()
	r.out.ExitAltScreen()
	r.Update()
}
