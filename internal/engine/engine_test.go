package engine

import (
	"testing"
	"time"

	"git.lost.host/meutraa/ritmo/internal/game"
	"git.lost.host/meutraa/ritmo/internal/input"
	"git.lost.host/meutraa/ritmo/internal/score"
)

type fakeSource struct {
	playing bool
	elapsed time.Duration
}

func (f *fakeSource) IsPlaying() bool        { return f.playing }
func (f *fakeSource) Elapsed() time.Duration { return f.elapsed }

// testConfig keeps the shipped tuning but removes the audio offsets so frame
// arithmetic in the tests stays exact.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.TargetX = 4
	cfg.StopX = 8
	cfg.Calibration = 0
	cfg.LatencyCorrection = 0
	return cfg
}

func singleNoteTrack() *game.Track {
	return &game.Track{
		Name:   "single",
		Events: []game.NoteEvent{{Time: 5 * time.Second, Direction: game.Up}},
	}
}

// step advances playback time and runs one frame.
func step(e *Engine, src *fakeSource, delta time.Duration, in input.Snapshot) {
	src.elapsed += delta
	e.Tick(delta, in)
}

func TestNewRejectsBadSpeed(t *testing.T) {
	cfg := testConfig()
	cfg.Speed = 0
	if _, err := New(cfg, &fakeSource{}, singleNoteTrack(), score.NewController(score.DefaultRules(), nil), nil); nil == err {
		t.Fatal("expected error for zero speed")
	}
}

func TestTravelFromGeometry(t *testing.T) {
	e, err := New(testConfig(), &fakeSource{}, singleNoteTrack(), score.NewController(score.DefaultRules(), nil), nil)
	if nil != err {
		t.Fatalf("unable to create engine: %v", err)
	}
	if e.Travel() != 1750*time.Millisecond {
		t.Fatalf("expected 1.75s travel, got %v", e.Travel())
	}
}

func TestNoFramesBeforePlayback(t *testing.T) {
	src := &fakeSource{elapsed: time.Minute}
	e, err := New(testConfig(), src, singleNoteTrack(), score.NewController(score.DefaultRules(), nil), nil)
	if nil != err {
		t.Fatalf("unable to create engine: %v", err)
	}
	e.Tick(16*time.Millisecond, input.Snapshot{})
	if len(e.Notes()) != 0 {
		t.Fatal("notes spawned while playback stopped")
	}
}

func TestSpawnAtTravelOffset(t *testing.T) {
	src := &fakeSource{playing: true, elapsed: 3240 * time.Millisecond}
	e, err := New(testConfig(), src, singleNoteTrack(), score.NewController(score.DefaultRules(), nil), nil)
	if nil != err {
		t.Fatalf("unable to create engine: %v", err)
	}

	e.Tick(10*time.Millisecond, input.Snapshot{})
	if len(e.Notes()) != 0 {
		t.Fatal("spawned before event time minus travel")
	}

	step(e, src, 10*time.Millisecond, input.Snapshot{})
	notes := e.Notes()
	if len(notes) != 1 {
		t.Fatalf("expected 1 note at 3.25s, got %v", len(notes))
	}
	// The note advanced one frame past the spawn coordinate already.
	if notes[0].X < -3 || notes[0].X > -2.9 {
		t.Fatalf("unexpected spawn position %v", notes[0].X)
	}
	if notes[0].Z != 8 || notes[0].Direction != game.Up {
		t.Fatalf("unexpected spawn %+v", notes[0])
	}
}

func TestFullPassPerfectHit(t *testing.T) {
	src := &fakeSource{playing: true}
	ctrl := score.NewController(score.DefaultRules(), nil)
	e, err := New(testConfig(), src, singleNoteTrack(), ctrl, nil)
	if nil != err {
		t.Fatalf("unable to create engine: %v", err)
	}

	hit := false
	for frame := 0; frame < 1200; frame++ {
		in := input.Snapshot{}
		if !hit && len(e.Notes()) == 1 && e.Notes()[0].Pending == 1 {
			in = input.Press(game.Up)
			hit = true
		}
		step(e, src, 10*time.Millisecond, in)
	}

	if !hit {
		t.Fatal("note never became hittable")
	}
	if ctrl.Score() != 100 || ctrl.Streak() != 1 {
		t.Fatalf("expected 100 points streak 1, got %v streak %v", ctrl.Score(), ctrl.Streak())
	}
	if ctrl.Counts()[game.Miss] != 0 {
		t.Fatal("locked note still counted as a miss at cull")
	}
	if !e.Done() {
		t.Fatal("expected engine done after the track drained")
	}
}

func TestUntouchedNoteMissesAtCull(t *testing.T) {
	src := &fakeSource{playing: true}
	ctrl := score.NewController(score.DefaultRules(), nil)
	e, err := New(testConfig(), src, singleNoteTrack(), ctrl, nil)
	if nil != err {
		t.Fatalf("unable to create engine: %v", err)
	}

	for frame := 0; frame < 1200; frame++ {
		step(e, src, 10*time.Millisecond, input.Snapshot{})
	}

	counts := ctrl.Counts()
	if counts[game.Miss] != 1 {
		t.Fatalf("expected exactly 1 miss, got %v", counts[game.Miss])
	}
	if ctrl.Score() != -25 {
		t.Fatalf("expected -25, got %v", ctrl.Score())
	}
	if !e.Done() {
		t.Fatal("expected engine done")
	}
}

func TestResetRestartsTrack(t *testing.T) {
	src := &fakeSource{playing: true}
	ctrl := score.NewController(score.DefaultRules(), nil)
	e, err := New(testConfig(), src, singleNoteTrack(), ctrl, nil)
	if nil != err {
		t.Fatalf("unable to create engine: %v", err)
	}

	src.elapsed = 4 * time.Second
	e.Tick(10*time.Millisecond, input.Snapshot{})
	if len(e.Notes()) != 1 {
		t.Fatal("expected a live note before reset")
	}

	e.Reset()
	src.elapsed = 0
	if len(e.Notes()) != 0 || ctrl.Score() != 0 {
		t.Fatal("reset left state behind")
	}

	// The rewound schedule replays the same event.
	src.elapsed = 4 * time.Second
	e.Tick(10*time.Millisecond, input.Snapshot{})
	if len(e.Notes()) != 1 {
		t.Fatal("expected the event to spawn again after reset")
	}
}

type recordingVisual struct {
	moves   int
	removed bool
}

func (v *recordingVisual) Move(x float64) { v.moves++ }
func (v *recordingVisual) Remove()        { v.removed = true }

type recordingHost struct {
	visuals []*recordingVisual
}

func (h *recordingHost) NoteVisual(d game.Direction, x float64) NoteVisual {
	v := &recordingVisual{}
	h.visuals = append(h.visuals, v)
	return v
}

func TestVisualLifecycle(t *testing.T) {
	src := &fakeSource{playing: true}
	host := &recordingHost{}
	e, err := New(testConfig(), src, singleNoteTrack(), score.NewController(score.DefaultRules(), nil), host)
	if nil != err {
		t.Fatalf("unable to create engine: %v", err)
	}

	for frame := 0; frame < 1200; frame++ {
		step(e, src, 10*time.Millisecond, input.Snapshot{})
	}

	if len(host.visuals) != 1 {
		t.Fatalf("expected 1 visual, got %v", len(host.visuals))
	}
	v := host.visuals[0]
	if v.moves == 0 {
		t.Fatal("visual never moved")
	}
	if !v.removed {
		t.Fatal("visual not removed after cull")
	}
}
