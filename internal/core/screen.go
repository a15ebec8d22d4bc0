package core

import "strings"

// Screen is an in-memory grid of terminal cells, addressed the way the
// terminal is: (1,1) is the top-left cell. It accepts the same Draw, Clear
// and Update calls a terminal renderer does, so frontends that print whole
// frames can let the game draw into a Screen and print it afterwards.
type Screen struct {
	width  int
	height int
	cells  []rune // row-major
	frames uint64
}

// NewScreen creates a blank width x height screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.cells = make([]rune, s.width*s.height)
	s.blank()
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Draw writes text rightwards from p, one cell per rune.
// Text past the right edge and rows outside the screen are dropped.
func (s *Screen) Draw(p Point, text string) {
	y := int(p.Y)
	if y < 1 || y > s.height {
		return
	}
	x := int(p.X)
	for _, r := range text {
		if x > s.width {
			return
		}
		if x >= 1 {
			s.cells[s.index(x, y)] = r
		}
		x++
	}
}

// Clear blanks every cell and counts as a flush.
func (s *Screen) Clear() {
	s.blank()
	s.frames++
}

// Update counts a flush. The content is already in place.
func (s *Screen) Update() {
	s.frames++
}

// Frames returns how many times the screen was flushed.
func (s *Screen) Frames() uint64 {
	return s.frames
}

// Cell returns the rune at p, or a space outside the screen.
func (s *Screen) Cell(p Point) rune {
	x, y := int(p.X), int(p.Y)
	if x < 1 || x > s.width || y < 1 || y > s.height {
		return ' '
	}
	return s.cells[s.index(x, y)]
}

// Row returns row y as a string, or blanks outside the screen.
func (s *Screen) Row(y Coordinate) string {
	if y < 1 || int(y) > s.height {
		return strings.Repeat(" ", s.width)
	}
	start := s.index(1, int(y))
	return string(s.cells[start : start+s.width])
}

// String returns all rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)
	for y := 1; y <= s.height; y++ {
		if y > 1 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(Coordinate(y)))
	}
	return sb.String()
}

func (s *Screen) index(x, y int) int {
	return (y-1)*s.width + (x - 1)
}

func (s *Screen) blank() {
	for i := range s.cells {
		s.cells[i] = ' '
	}
}
