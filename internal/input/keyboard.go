package input

import (
	"time"

	"git.lost.host/meutraa/ritmo/internal/game"
	"github.com/eiannone/keyboard"
)

// Keyboard adapts the terminal key-event channel to held-key state. Terminals
// deliver repeats, not releases, so a key counts as held while repeat events
// keep arriving within the hold window.
type Keyboard struct {
	events <-chan keyboard.KeyEvent
	window time.Duration
	now    func() time.Time
	last   [game.NDirections]time.Time
}

func NewKeyboard(events <-chan keyboard.KeyEvent, window time.Duration) *Keyboard {
	return &Keyboard{
		events: events,
		window: window,
		now:    time.Now,
	}
}

// Poll drains pending key events and returns true when the player asked to
// quit. Call once per frame, before taking the snapshot.
func (k *Keyboard) Poll() (quit bool) {
	for i := len(k.events); i > 0; i-- {
		ev := <-k.events
		if ev.Key == keyboard.KeyEsc {
			quit = true
			continue
		}
		if d, ok := keyDirection(ev.Key); ok {
			k.last[d] = k.now()
		}
	}
	return quit
}

func (k *Keyboard) Held(d game.Direction) bool {
	if k.last[d].IsZero() {
		return false
	}
	return k.now().Sub(k.last[d]) < k.window
}

func keyDirection(key keyboard.Key) (game.Direction, bool) {
	switch key {
	case keyboard.KeyArrowUp:
		return game.Up, true
	case keyboard.KeyArrowDown:
		return game.Down, true
	case keyboard.KeyArrowLeft:
		return game.Left, true
	case keyboard.KeyArrowRight:
		return game.Right, true
	}
	return 0, false
}
