package input

import "git.lost.host/meutraa/ritmo/internal/game"

// Provider reports whether a direction key is currently held. No edge
// detection is required here; the judge engine runs its own hold-cycle guard.
type Provider interface {
	Held(d game.Direction) bool
}

// Snapshot is one frame's stable view of the provider. It is taken once per
// frame and never re-read mid pass.
type Snapshot struct {
	held [game.NDirections]bool
}

func TakeSnapshot(p Provider) Snapshot {
	var s Snapshot
	if nil == p {
		return s
	}
	for d := game.Direction(0); d < game.NDirections; d++ {
		s.held[d] = p.Held(d)
	}
	return s
}

func (s Snapshot) Held(d game.Direction) bool {
	if int(d) >= len(s.held) {
		return false
	}
	return s.held[d]
}

// Any reports whether any direction key is held this frame.
func (s Snapshot) Any() bool {
	for _, h := range s.held {
		if h {
			return true
		}
	}
	return false
}

// Fixed is a test and replay helper holding a constant set of directions.
type Fixed [game.NDirections]bool

func (f Fixed) Held(d game.Direction) bool { return f[d] }

// Press returns a snapshot with exactly the given directions held.
func Press(ds ...game.Direction) Snapshot {
	var s Snapshot
	for _, d := range ds {
		s.held[d] = true
	}
	return s
}
