package engine

import (
	"time"

	"git.lost.host/meutraa/ritmo/internal/clock"
	"git.lost.host/meutraa/ritmo/internal/game"
	"git.lost.host/meutraa/ritmo/internal/input"
	"git.lost.host/meutraa/ritmo/internal/judge"
	"git.lost.host/meutraa/ritmo/internal/sched"
	"git.lost.host/meutraa/ritmo/internal/score"
)

// NoteVisual is the opaque handle the rendering side gives out for one note.
// The engine only moves and removes it.
type NoteVisual interface {
	Move(x float64)
	Remove()
}

// VisualHost creates note visuals. A nil host runs the engine headless.
type VisualHost interface {
	NoteVisual(d game.Direction, x float64) NoteVisual
}

type Config struct {
	SpawnX  float64
	TargetX float64
	TargetZ float64
	StopX   float64

	Speed    float64 // units per second along the travel axis
	NoteSize float64

	InnerRadius float64
	OuterRadius float64
	Scale       float64

	Calibration time.Duration
	// LatencyCorrection is subtracted from the computed travel time. It is an
	// observed output-latency discrepancy, tuned by ear.
	LatencyCorrection time.Duration

	Rules score.Rules
}

// DefaultConfig mirrors the shipped gameplay tuning.
func DefaultConfig() Config {
	return Config{
		SpawnX:            -3,
		TargetX:           1,
		TargetZ:           8,
		StopX:             4,
		Speed:             4.0,
		NoteSize:          0.8,
		InnerRadius:       0.55,
		OuterRadius:       0.65,
		Scale:             1.0,
		Calibration:       900 * time.Millisecond,
		LatencyCorrection: 210 * time.Millisecond,
		Rules:             score.DefaultRules(),
	}
}

// Engine runs the per-frame pass in a fixed order: spawn due notes, advance
// motion, judge the nearest candidates, apply score effects, cull expired
// instances. All state transitions happen inside Tick; there is no
// re-entrancy.
type Engine struct {
	cfg  Config
	clk  *clock.Clock
	sch  *sched.Scheduler
	jdg  *judge.Engine
	ctrl *score.Controller
	host VisualHost

	notes   []*game.Note
	visuals map[uint64]NoteVisual
	nextID  uint64
}

func New(cfg Config, src clock.Source, track *game.Track, ctrl *score.Controller, host VisualHost) (*Engine, error) {
	travel, err := sched.TravelTime(cfg.SpawnX, cfg.TargetX, cfg.Speed, cfg.LatencyCorrection)
	if nil != err {
		return nil, err
	}

	e := &Engine{
		cfg:     cfg,
		clk:     clock.New(src, cfg.Calibration),
		jdg: judge.New(judge.Config{
			TargetX:     cfg.TargetX,
			TargetZ:     cfg.TargetZ,
			InnerRadius: cfg.InnerRadius * cfg.Scale,
			OuterRadius: cfg.OuterRadius * cfg.Scale,
		}),
		ctrl:    ctrl,
		host:    host,
		visuals: map[uint64]NoteVisual{},
	}
	e.sch = sched.New(e.clk, track.Events, travel)
	e.sch.OnSpawn = e.spawn
	return e, nil
}

func (e *Engine) Clock() *clock.Clock   { return e.clk }
func (e *Engine) Notes() []*game.Note   { return e.notes }
func (e *Engine) EligibleID() uint64    { return e.jdg.EligibleID() }
func (e *Engine) Travel() time.Duration { return e.sch.Travel }

// Done reports that every event has spawned and every note is gone.
func (e *Engine) Done() bool {
	return e.sch.Done() && len(e.notes) == 0
}

// SetCalibration adjusts the clock offset mid-play without rebasing it.
func (e *Engine) SetCalibration(offset time.Duration) {
	e.clk.SetCalibration(offset)
}

// Reposition recomputes the travel estimate after the spawn or target
// coordinate moved. Notes already in flight keep their course.
func (e *Engine) Reposition(spawnX, targetX float64) error {
	travel, err := sched.TravelTime(spawnX, targetX, e.cfg.Speed, e.cfg.LatencyCorrection)
	if nil != err {
		return err
	}
	e.cfg.SpawnX = spawnX
	e.sch.SetTravel(travel)
	return nil
}

func (e *Engine) spawn(ev game.NoteEvent) {
	e.nextID++
	e.notes = append(e.notes, &game.Note{
		ID:        e.nextID,
		Direction: ev.Direction,
		X:         e.cfg.SpawnX,
		Z:         e.cfg.TargetZ,
		Size:      e.cfg.NoteSize,
	})
}

// Tick advances the world by delta with one stable input snapshot.
func (e *Engine) Tick(delta time.Duration, in input.Snapshot) {
	if !e.clk.Playing() {
		return
	}

	e.sch.Tick()

	step := e.cfg.Speed * delta.Seconds()
	for _, n := range e.notes {
		n.Advance(step, e.cfg.StopX)
	}

	for _, j := range e.jdg.Evaluate(e.judgable(), in) {
		e.ctrl.Apply(j)
	}

	e.cull()
}

// judgable syncs visuals and returns the notes eligible for this frame's
// judgment pass. A note whose visual could not be created yet is skipped and
// retried next frame, never fatal.
func (e *Engine) judgable() []*game.Note {
	if nil == e.host {
		return e.notes
	}
	notes := make([]*game.Note, 0, len(e.notes))
	for _, n := range e.notes {
		v, ok := e.visuals[n.ID]
		if !ok {
			v = e.host.NoteVisual(n.Direction, n.X)
			if nil == v {
				continue
			}
			e.visuals[n.ID] = v
		}
		v.Move(n.X)
		notes = append(notes, n)
	}
	return notes
}

func (e *Engine) cull() {
	kept := e.notes[:0]
	for _, n := range e.notes {
		if !n.Expired {
			kept = append(kept, n)
			continue
		}
		// Expired while never finalized: count the miss exactly once.
		if !n.Finalized {
			n.MarkedMiss = true
			n.Finalized = true
			e.ctrl.Apply(game.Judgement{Kind: game.Miss, NoteID: n.ID})
		}
		e.jdg.Release(n.ID)
		if v, ok := e.visuals[n.ID]; ok {
			v.Remove()
			delete(e.visuals, n.ID)
		}
	}
	e.notes = kept
}

// Reset discards every note instance and all score state atomically from the
// perspective of the next frame.
func (e *Engine) Reset() {
	for id, v := range e.visuals {
		v.Remove()
		delete(e.visuals, id)
	}
	e.notes = nil
	e.sch.Rewind()
	e.jdg.Reset()
	e.ctrl.Reset()
}
