package input

import (
	"testing"
	"time"

	"git.lost.host/meutraa/ritmo/internal/game"
	"github.com/eiannone/keyboard"
)

func TestPollRecordsHeldKeys(t *testing.T) {
	events := make(chan keyboard.KeyEvent, 4)
	now := time.Now()
	k := NewKeyboard(events, 150*time.Millisecond)
	k.now = func() time.Time { return now }

	events <- keyboard.KeyEvent{Key: keyboard.KeyArrowUp}
	events <- keyboard.KeyEvent{Key: keyboard.KeyArrowLeft}
	if quit := k.Poll(); quit {
		t.Fatal("unexpected quit")
	}

	s := TakeSnapshot(k)
	if !s.Held(game.Up) || !s.Held(game.Left) || s.Held(game.Down) {
		t.Fatalf("unexpected snapshot %+v", s)
	}

	// A key with no repeat inside the hold window is released.
	now = now.Add(200 * time.Millisecond)
	if TakeSnapshot(k).Any() {
		t.Fatal("keys still held past the hold window")
	}

	// A repeat keeps it held.
	events <- keyboard.KeyEvent{Key: keyboard.KeyArrowUp}
	k.Poll()
	now = now.Add(100 * time.Millisecond)
	if !TakeSnapshot(k).Held(game.Up) {
		t.Fatal("repeat did not extend the hold")
	}
}

func TestPollQuitsOnEscape(t *testing.T) {
	events := make(chan keyboard.KeyEvent, 1)
	k := NewKeyboard(events, 150*time.Millisecond)
	events <- keyboard.KeyEvent{Key: keyboard.KeyEsc}
	if quit := k.Poll(); !quit {
		t.Fatal("expected quit on escape")
	}
}

func TestSnapshotIsStable(t *testing.T) {
	held := Fixed{}
	held[game.Up] = true
	s := TakeSnapshot(held)

	// Provider state changes after the snapshot do not leak into the frame.
	held[game.Up] = false
	if !s.Held(game.Up) {
		t.Fatal("snapshot re-read the provider")
	}
	if s.Held(game.NDirections + 1) {
		t.Fatal("out-of-range direction reported held")
	}
}
