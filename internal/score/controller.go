package score

import (
	"git.lost.host/meutraa/ritmo/internal/game"
	"git.lost.host/meutraa/ritmo/internal/ui"
)

// Rules carries the tunable scoring numbers. The penalty values and streak
// tiers are gameplay balance knobs, not derived constants.
type Rules struct {
	BasePoints       float64
	MissPenalty      float64
	EmptyMissPenalty float64
	ShortStreak      int
	LongStreak       int
	ShortMultiplier  float64
	LongMultiplier   float64
}

func DefaultRules() Rules {
	return Rules{
		BasePoints:       100,
		MissPenalty:      25,
		EmptyMissPenalty: 50,
		ShortStreak:      5,
		LongStreak:       10,
		ShortMultiplier:  1.5,
		LongMultiplier:   2.0,
	}
}

// Controller accumulates score and streak from committed judgements. A note
// id is counted at most once for its lifetime.
type Controller struct {
	rules Rules
	sink  ui.Sink

	score     float64
	streak    int
	maxStreak int
	counts    [4]int
	finalized map[uint64]struct{}
}

func NewController(rules Rules, sink ui.Sink) *Controller {
	if nil == sink {
		sink = ui.Nop{}
	}
	return &Controller{
		rules:     rules,
		sink:      sink,
		finalized: map[uint64]struct{}{},
	}
}

func (c *Controller) Score() float64  { return c.score }
func (c *Controller) Streak() int     { return c.streak }
func (c *Controller) MaxStreak() int  { return c.maxStreak }
func (c *Controller) Counts() [4]int  { return c.counts }

// Multiplier returns the multiplier the current streak has earned. It applies
// to the next perfect hit, not retroactively to the one that reached the tier.
func (c *Controller) Multiplier() float64 {
	return c.rules.multiplier(c.streak)
}

func (r Rules) multiplier(streak int) float64 {
	if streak >= r.LongStreak {
		return r.LongMultiplier
	}
	if streak >= r.ShortStreak {
		return r.ShortMultiplier
	}
	return 1.0
}

// ApplyHit computes the score delta and new streak for a locked hit value
// against a previous streak. A perfect hit earns the multiplier the previous
// streak had already reached and extends the streak; a partial hit earns base
// points unmultiplied and breaks the streak.
func (r Rules) ApplyHit(value float64, streak int) (delta float64, newStreak int) {
	delta = r.BasePoints * value
	if value == 1 {
		return delta * r.multiplier(streak), streak + 1
	}
	return delta, 0
}

// Apply consumes one committed judgement. Repeated judgements for the same
// note id are ignored.
func (c *Controller) Apply(j game.Judgement) {
	if j.NoteID != 0 {
		if _, done := c.finalized[j.NoteID]; done {
			return
		}
		c.finalized[j.NoteID] = struct{}{}
	}

	switch j.Kind {
	case game.Perfect:
		delta, streak := c.rules.ApplyHit(j.Value, c.streak)
		c.score += delta
		c.streak = streak
		c.sink.ShowMessage("PERFECT!")
	case game.Partial:
		delta, streak := c.rules.ApplyHit(j.Value, c.streak)
		c.score += delta
		c.streak = streak
		c.sink.ShowMessage("HIT!")
	case game.Miss:
		c.score -= c.rules.MissPenalty
		c.streak = 0
		c.sink.ShowMessage("MISS!")
	case game.EmptyMiss:
		c.score -= c.rules.EmptyMissPenalty
		c.streak = 0
		c.sink.ShowMessage("EMPTY MISS!")
	}

	if c.streak > c.maxStreak {
		c.maxStreak = c.streak
	}
	c.counts[j.Kind]++
	c.sink.UpdateScore(c.score)
	c.sink.UpdateStreak(c.streak)
}

// Reset discards all accumulated state for a track restart.
func (c *Controller) Reset() {
	c.score = 0
	c.streak = 0
	c.maxStreak = 0
	c.counts = [4]int{}
	c.finalized = map[uint64]struct{}{}
	c.sink.UpdateScore(0)
	c.sink.UpdateStreak(0)
}
