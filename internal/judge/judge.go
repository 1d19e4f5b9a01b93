package judge

import (
	"math"
	"sort"

	"git.lost.host/meutraa/ritmo/internal/game"
	"git.lost.host/meutraa/ritmo/internal/input"
)

type Config struct {
	TargetX, TargetZ float64
	// Radii are already multiplied by the target scale factor.
	InnerRadius, OuterRadius float64
}

// Engine judges the nearest notes against the target each frame. It owns
// every judgment-state transition on a note and the single eligibility token;
// nothing else writes those fields.
type Engine struct {
	cfg Config

	// eligible is the id of the one note currently allowed to be judged
	// against input, 0 when none. Assigning a new id is the only way the
	// previous holder loses eligibility.
	eligible uint64

	// emptyArmed guards the empty-miss penalty: one per hold cycle. It
	// re-arms only on a frame with no direction key held.
	emptyArmed bool
}

func New(cfg Config) *Engine {
	return &Engine{cfg: cfg, emptyArmed: true}
}

func (e *Engine) EligibleID() uint64 { return e.eligible }

// Release drops the eligibility token if the given note holds it. The engine
// owner calls this when a note is culled.
func (e *Engine) Release(id uint64) {
	if e.eligible == id {
		e.eligible = 0
	}
}

func (e *Engine) Reset() {
	e.eligible = 0
	e.emptyArmed = true
}

// Evaluate runs one frame's judgment pass over the given notes with a stable
// input snapshot, and returns the judgements committed this frame. Locked
// notes are never recomputed.
func (e *Engine) Evaluate(notes []*game.Note, in input.Snapshot) []game.Judgement {
	if !in.Any() {
		// No key held at all: re-arm the hold-cycle guards.
		for _, n := range notes {
			n.HoldChecked = false
		}
		e.emptyArmed = true
	}

	var judgements []game.Judgement
	keyConsumed := false

	candidates := e.nearest(notes)

	for _, n := range candidates {
		// A note whose leading edge is beyond the outer radius can no
		// longer be judged. Unfinalized means it was never locked: a miss.
		minX, _, _, _ := n.Rect()
		if minX > e.cfg.TargetX+e.cfg.OuterRadius {
			n.Pending = 0
			if !n.Finalized {
				n.MarkedMiss = true
				n.Finalized = true
				n.Eligible = false
				e.Release(n.ID)
				judgements = append(judgements, game.Judgement{Kind: game.Miss, NoteID: n.ID})
			}
			continue
		}
		n.Pending = e.classify(n)
	}

	// Eligibility arbitration: the nearest unfinalized note inside the outer
	// band takes the token; a displaced holder is permanently revoked.
	for _, n := range candidates {
		if n.Finalized || n.Pending <= 0 {
			continue
		}
		if e.eligible != n.ID {
			e.revokeHolder(notes)
			e.eligible = n.ID
			n.Eligible = true
		}
		break
	}

	for _, n := range candidates {
		if n.ID != e.eligible || !n.Eligible || n.Locked {
			continue
		}
		if n.Pending > 0 && in.Held(n.Direction) && !n.HoldChecked {
			n.HoldChecked = true
			n.Locked = true
			n.LockedValue = n.Pending
			n.Finalized = true
			n.Eligible = false
			e.Release(n.ID)
			keyConsumed = true
			kind := game.Partial
			if n.LockedValue == 1 {
				kind = game.Perfect
			}
			judgements = append(judgements, game.Judgement{
				Kind:   kind,
				NoteID: n.ID,
				Value:  n.LockedValue,
			})
		}
	}

	// A keypress with nothing eligible and nothing locked this frame is an
	// empty miss; at most one per frame, one per hold cycle.
	if in.Any() {
		if !keyConsumed && e.eligible == 0 && e.emptyArmed {
			judgements = append(judgements, game.Judgement{Kind: game.EmptyMiss})
		}
		e.emptyArmed = false
	}

	return judgements
}

// nearest returns the judgable notes ordered by distance to the target
// center, bounded to two: only the next note or two matter, and the bound
// caps the per-frame cost.
func (e *Engine) nearest(notes []*game.Note) []*game.Note {
	candidates := make([]*game.Note, 0, len(notes))
	for _, n := range notes {
		if n.Finalized || n.Expired || n.Revoked {
			continue
		}
		candidates = append(candidates, n)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return e.distance(candidates[i]) < e.distance(candidates[j])
	})
	if len(candidates) > 2 {
		candidates = candidates[:2]
	}
	return candidates
}

func (e *Engine) distance(n *game.Note) float64 {
	return math.Hypot(n.X-e.cfg.TargetX, n.Z-e.cfg.TargetZ)
}

// classify scores the note's bounding rectangle against the target radii:
// 1 when all four corners are inside the inner radius, 0.5 when any corner is
// inside the outer radius, 0 otherwise. Corner-vs-radius over-approximates the
// arrow silhouette and never under-counts a touch.
func (e *Engine) classify(n *game.Note) float64 {
	allInner := true
	anyOuter := false
	for _, c := range n.Corners() {
		dist := math.Hypot(c[0]-e.cfg.TargetX, c[1]-e.cfg.TargetZ)
		if dist >= e.cfg.InnerRadius {
			allInner = false
		}
		if dist < e.cfg.OuterRadius {
			anyOuter = true
		}
	}
	if allInner {
		return 1
	}
	if anyOuter {
		return 0.5
	}
	return 0
}

func (e *Engine) revokeHolder(notes []*game.Note) {
	if e.eligible == 0 {
		return
	}
	for _, n := range notes {
		if n.ID == e.eligible {
			n.Eligible = false
			n.Revoked = true
			break
		}
	}
	e.eligible = 0
}
