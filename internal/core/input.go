package core

import "sync"

// KeyCode identifies the kind of key event, abstracted from any terminal library.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyRune         // printable character, see Key.Rune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Key is a single key event. The zero value is NoKey.
type Key struct {
	Code KeyCode
	Rune rune
}

// NoKey means no input arrived since the previous sample.
var NoKey = Key{}

// RuneKey returns the key event for a printable character.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// IsNone reports whether k carries no input.
func (k Key) IsNone() bool {
	return k.Code == KeyNone
}

// Is reports whether k is the printable character r.
func (k Key) Is(r rune) bool {
	return k.Code == KeyRune && k.Rune == r
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k.Code {
	case KeyNone:
		return "none"
	case KeyRune:
		return string(k.Rune)
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "unknown"
	}
}

// KeyLatch keeps only the most recent key pushed since the last read.
// Intermediate presses are discarded: at most one event is delivered per tick.
// It is safe for one writer goroutine and one reader goroutine.
type KeyLatch struct {
	mu  sync.Mutex
	key Key
}

// Push records k, replacing any key not yet read.
func (l *KeyLatch) Push(k Key) {
	l.mu.Lock()
	l.key = k
	l.mu.Unlock()
}

// Last returns the latched key and empties the latch.
// Returns NoKey if nothing was pushed. Never blocks on input.
func (l *KeyLatch) Last() Key {
	l.mu.Lock()
	defer l.mu.Unlock()
	k := l.key
	l.key = NoKey
	return k
}
