package clock

import (
	"testing"
	"time"
)

type fakeSource struct {
	playing bool
	elapsed time.Duration
}

func (f *fakeSource) IsPlaying() bool        { return f.playing }
func (f *fakeSource) Elapsed() time.Duration { return f.elapsed }

func TestClockZeroBeforePlayback(t *testing.T) {
	src := &fakeSource{}
	c := New(src, 500*time.Millisecond)
	if c.Now() != 0 {
		t.Fatalf("expected 0 before playback, got %v", c.Now())
	}
	if c.Playing() {
		t.Fatal("expected not playing")
	}
}

func TestClockAppliesCalibration(t *testing.T) {
	src := &fakeSource{playing: true, elapsed: 2 * time.Second}
	c := New(src, 300*time.Millisecond)
	if c.Now() != 2300*time.Millisecond {
		t.Fatalf("expected 2.3s, got %v", c.Now())
	}

	// Negative offsets compensate for early output.
	c.SetCalibration(-200 * time.Millisecond)
	if c.Now() != 1800*time.Millisecond {
		t.Fatalf("expected 1.8s, got %v", c.Now())
	}
}

func TestPlaybackElapsed(t *testing.T) {
	now := time.Now()
	p := NewPlayback()
	p.now = func() time.Time { return now }

	if p.Elapsed() != 0 {
		t.Fatalf("expected 0 before start, got %v", p.Elapsed())
	}

	p.Start()
	now = now.Add(1500 * time.Millisecond)
	if p.Elapsed() != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s, got %v", p.Elapsed())
	}

	p.Stop()
	if p.IsPlaying() || p.Elapsed() != 0 {
		t.Fatal("expected stopped playback to report nothing")
	}
}

func TestSetCalibrationKeepsReference(t *testing.T) {
	now := time.Now()
	p := NewPlayback()
	p.now = func() time.Time { return now }
	p.Start()

	c := New(p, 0)
	now = now.Add(time.Second)
	c.SetCalibration(100 * time.Millisecond)
	if c.Now() != 1100*time.Millisecond {
		t.Fatalf("calibration change rebased the clock: %v", c.Now())
	}
}
