// Package core provides the fundamental types shared by the snake engine and its
// frontends. It has no external dependencies.
package core

import (
	"errors"
	"fmt"
	"math"
)

// Coordinate is a single terminal cell coordinate. Terminal cells are 1-based.
type Coordinate = uint16

// MaxCoordinate is the largest representable coordinate.
const MaxCoordinate = math.MaxUint16

// ErrBoundsTooSmall is returned when a board would have no room for a border.
var ErrBoundsTooSmall = errors.New("core: bounds must be wider and taller than 1")

// Point is an immutable grid position.
type Point struct {
	X, Y Coordinate
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y Coordinate) Point {
	return Point{X: x, Y: y}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// CheckedAdd adds two points component-wise.
// Returns false if either component would overflow.
func CheckedAdd(a, b Point) (Point, bool) {
	if a.X > MaxCoordinate-b.X || a.Y > MaxCoordinate-b.Y {
		return Point{}, false
	}
	return Point{X: a.X + b.X, Y: a.Y + b.Y}, true
}

// CheckedSub subtracts b from a component-wise.
// Returns false if either component would drop below zero.
func CheckedSub(a, b Point) (Point, bool) {
	if a.X < b.X || a.Y < b.Y {
		return Point{}, false
	}
	return Point{X: a.X - b.X, Y: a.Y - b.Y}, true
}

// Bounds is the playing field rectangle. The outermost rows and columns are the
// drawn frame, so only strictly interior cells are playable.
type Bounds struct {
	TopLeft     Point
	BottomRight Point
	Width       Coordinate
	Height      Coordinate
}

// NewBounds creates bounds spanning (1,1)..(width,height).
func NewBounds(width, height Coordinate) (Bounds, error) {
	if width <= 1 || height <= 1 {
		return Bounds{}, fmt.Errorf("%w: got %dx%d", ErrBoundsTooSmall, width, height)
	}
	return Bounds{
		TopLeft:     Point{X: 1, Y: 1},
		BottomRight: Point{X: width, Y: height},
		Width:       width,
		Height:      height,
	}, nil
}

// Contains reports whether p lies strictly inside the frame.
func (b Bounds) Contains(p Point) bool {
	return p.X > b.TopLeft.X && p.X < b.BottomRight.X &&
		p.Y > b.TopLeft.Y && p.Y < b.BottomRight.Y
}

// Center returns the middle cell of the board.
func (b Bounds) Center() Point {
	return Point{X: b.Width / 2, Y: b.Height / 2}
}

// Interior calls fn for every playable cell, row by row.
func (b Bounds) Interior(fn func(Point)) {
	for y := b.TopLeft.Y + 1; y < b.BottomRight.Y; y++ {
		for x := b.TopLeft.X + 1; x < b.BottomRight.X; x++ {
			fn(Point{X: x, Y: y})
		}
	}
}

// Direction is a snake heading. DirNone means "keep the current heading".
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

var (
	unitX = Point{X: 1}
	unitY = Point{Y: 1}
)

// Step moves p one cell in direction d.
// Returns false if the move leaves the coordinate range or d is DirNone.
func (d Direction) Step(p Point) (Point, bool) {
	switch d {
	case DirUp:
		return CheckedSub(p, unitY)
	case DirDown:
		return CheckedAdd(p, unitY)
	case DirLeft:
		return CheckedSub(p, unitX)
	case DirRight:
		return CheckedAdd(p, unitX)
	default:
		return p, false
	}
}

// Vertical reports whether d moves along the y axis.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// Horizontal reports whether d moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
