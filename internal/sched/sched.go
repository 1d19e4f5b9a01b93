package sched

import (
	"fmt"
	"math"
	"time"

	"git.lost.host/meutraa/ritmo/internal/clock"
	"git.lost.host/meutraa/ritmo/internal/game"
)

// Scheduler walks a time-sorted event list and emits each spawn exactly once,
// travelTime before the event's target time so the note arrives on the beat.
type Scheduler struct {
	Clock   *clock.Clock
	Events  []game.NoteEvent
	Travel  time.Duration
	OnSpawn func(game.NoteEvent)

	next int
}

func New(c *clock.Clock, events []game.NoteEvent, travel time.Duration) *Scheduler {
	return &Scheduler{Clock: c, Events: events, Travel: travel}
}

// Tick spawns every event that has become due. A while, not an if: a frame
// hitch must not drop notes, only bunch their spawns.
func (s *Scheduler) Tick() {
	now := s.Clock.Now()
	for s.next < len(s.Events) && now >= s.Events[s.next].Time-s.Travel {
		if nil != s.OnSpawn {
			s.OnSpawn(s.Events[s.next])
		}
		s.next++
	}
}

// SetTravel replaces the travel estimate after a geometry change. Events
// already spawned are unaffected.
func (s *Scheduler) SetTravel(travel time.Duration) {
	s.Travel = travel
}

func (s *Scheduler) Done() bool {
	return s.next >= len(s.Events)
}

// Rewind restarts the cursor for a track reset.
func (s *Scheduler) Rewind() {
	s.next = 0
}

// TravelTime computes how long a note takes from the spawn offset to the
// target offset at the configured speed, then subtracts the latency
// correction. The correction is an empirically measured fudge for output
// latency, carried as configuration, not derived.
func TravelTime(spawnX, targetX, speed float64, correction time.Duration) (time.Duration, error) {
	if speed <= 0 {
		return 0, fmt.Errorf("note speed must be positive, got %v", speed)
	}
	distance := math.Abs(targetX - spawnX)
	travel := time.Duration(float64(time.Second)*distance/speed) - correction
	return travel, nil
}
