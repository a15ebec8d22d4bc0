package core

// Color represents a foreground color for a screen cell.
// Frontends map these to ANSI colors.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorRed
	ColorGray
	ColorBrightWhite
)
