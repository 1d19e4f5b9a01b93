package clock

import "time"

// Playback reports wall time elapsed since Start. It is the default Source
// for real playback, started the instant the speaker begins.
type Playback struct {
	now     func() time.Time
	start   time.Time
	playing bool
}

func NewPlayback() *Playback {
	return &Playback{now: time.Now}
}

// Start records the reference timestamp. Calling it again rebases the clock,
// which is how a track restart works.
func (p *Playback) Start() {
	p.start = p.now()
	p.playing = true
}

func (p *Playback) Stop() {
	p.playing = false
}

func (p *Playback) IsPlaying() bool {
	return p.playing
}

func (p *Playback) Elapsed() time.Duration {
	if !p.playing {
		return 0
	}
	return p.now().Sub(p.start)
}
