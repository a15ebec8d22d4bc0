package snake

import (
	"github.com/vovakirdan/termsnake/internal/core"
)

// Snake is an immutable snapshot of the snake: its body from tail to head and
// its heading. Every operation returns a new Snake; the receiver is never modified.
type Snake struct {
	body      []core.Point // body[len-1] is the head
	direction core.Direction
}

// NewSnake creates a single-segment snake.
func NewSnake(head core.Point, dir core.Direction) Snake {
	return Snake{
		body:      []core.Point{head},
		direction: dir,
	}
}

// Head returns the head segment.
// Panics on an empty body, which only a zero-value Snake can have.
func (s Snake) Head() core.Point {
	if len(s.body) == 0 {
		panic("snake: empty body")
	}
	return s.body[len(s.body)-1]
}

// Tail returns the last segment to follow the head.
func (s Snake) Tail() core.Point {
	if len(s.body) == 0 {
		panic("snake: empty body")
	}
	return s.body[0]
}

// Body returns a copy of the segments ordered from tail to head.
func (s Snake) Body() []core.Point {
	return append([]core.Point(nil), s.body...)
}

// Len returns the number of segments.
func (s Snake) Len() int {
	return len(s.body)
}

// Direction returns the current heading.
func (s Snake) Direction() core.Direction {
	return s.direction
}

// Occupies reports whether any segment lies on p.
func (s Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Crawl advances the snake one cell without growing.
// If the step would leave the coordinate range the snake is returned unchanged;
// callers must still treat that head as out of bounds.
func (s Snake) Crawl() Snake {
	newHead, ok := s.direction.Step(s.Head())
	if !ok {
		return s.clone()
	}

	body := make([]core.Point, 0, len(s.body))
	body = append(body, s.body[1:]...)
	body = append(body, newHead)
	return Snake{body: body, direction: s.direction}
}

// Eat grows the snake by one segment when its head is on food.
// The new segment duplicates the current tail, so the drawn path is unchanged
// until the snake moves on. Returns false if the head is not on food.
func (s Snake) Eat(food core.Point) (Snake, bool) {
	if s.Head() != food {
		return Snake{}, false
	}

	body := make([]core.Point, 0, len(s.body)+1)
	body = append(body, s.Tail())
	body = append(body, s.body...)
	return Snake{body: body, direction: s.direction}, true
}

// Update applies a requested heading and crawls.
// Only 90 degree turns are accepted: a vertical request is honored while moving
// horizontally and vice versa. Anything else keeps the current heading, so the
// snake can never reverse into its own neck.
func (s Snake) Update(req core.Direction) Snake {
	next := s.clone()
	if (req.Vertical() && s.direction.Horizontal()) ||
		(req.Horizontal() && s.direction.Vertical()) {
		next.direction = req
	}
	return next.Crawl()
}

// SelfCross reports whether the head shares a cell with another segment.
func (s Snake) SelfCross() bool {
	if len(s.body) <= 1 {
		return false
	}
	head := s.Head()
	count := 0
	for _, seg := range s.body {
		if seg == head {
			count++
		}
	}
	return count != 1
}

func (s Snake) clone() Snake {
	return Snake{body: s.Body(), direction: s.direction}
}
