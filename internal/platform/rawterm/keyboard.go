package rawterm

import (
	"github.com/charmbracelet/log"
	"github.com/eiannone/keyboard"

	"github.com/vovakirdan/termsnake/internal/core"
)

// Keyboard implements snake.InputSource on top of eiannone/keyboard.
// A reader goroutine latches the most recent key.
type Keyboard struct {
	latch     core.KeyLatch
	interrupt func()
	logger    *log.Logger
}

// OpenKeyboard puts the terminal in raw mode and starts reading keys.
// interrupt is called when ctrl+c is pressed, since raw mode suppresses SIGINT.
func OpenKeyboard(interrupt func(), logger *log.Logger) (*Keyboard, error) {
	if err := keyboard.Open(); err != nil {
		return nil, err
	}

	k := &Keyboard{interrupt: interrupt, logger: logger}
	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				k.logger.Debug("keyboard closed", "error", err)
				return
			}
			k.handle(char, key)
		}
	}()
	return k, nil
}

// handle latches one key event.
func (k *Keyboard) handle(char rune, key keyboard.Key) {
	if key == keyboard.KeyCtrlC {
		if k.interrupt != nil {
			k.interrupt()
		}
		return
	}
	if ck := translate(char, key); !ck.IsNone() {
		k.latch.Push(ck)
	}
}

// Last implements snake.InputSource.
func (k *Keyboard) Last() core.Key {
	return k.latch.Last()
}

// Close restores the terminal mode.
func (k *Keyboard) Close() error {
	return keyboard.Close()
}

// translate maps a keyboard event to an engine key.
func translate(char rune, key keyboard.Key) core.Key {
	switch key {
	case keyboard.KeyArrowUp:
		return core.Key{Code: core.KeyUp}
	case keyboard.KeyArrowDown:
		return core.Key{Code: core.KeyDown}
	case keyboard.KeyArrowLeft:
		return core.Key{Code: core.KeyLeft}
	case keyboard.KeyArrowRight:
		return core.Key{Code: core.KeyRight}
	case keyboard.KeySpace:
		return core.RuneKey(' ')
	case keyboard.KeyEnter:
		return core.RuneKey('\n')
	}

	// WASD mirrors the arrows, as in the Bubble Tea key map.
	switch char {
	case 'w':
		return core.Key{Code: core.KeyUp}
	case 's':
		return core.Key{Code: core.KeyDown}
	case 'a':
		return core.Key{Code: core.KeyLeft}
	case 'd':
		return core.Key{Code: core.KeyRight}
	case 0:
		return core.NoKey
	}
	return core.RuneKey(char)
}
