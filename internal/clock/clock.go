package clock

import "time"

// Source is the raw playback-position signal. The default is Playback; tests
// substitute their own.
type Source interface {
	IsPlaying() bool
	Elapsed() time.Duration
}

// Clock derives the adjusted music time from a source and a signed
// calibration offset. Before playback starts it reports 0; consumers already
// gate on the playing flag, so this is "not yet playing" rather than an error.
type Clock struct {
	src         Source
	calibration time.Duration
}

func New(src Source, calibration time.Duration) *Clock {
	return &Clock{src: src, calibration: calibration}
}

// SetCalibration updates the offset without touching the playback reference.
func (c *Clock) SetCalibration(offset time.Duration) {
	c.calibration = offset
}

func (c *Clock) Playing() bool {
	return nil != c.src && c.src.IsPlaying()
}

func (c *Clock) Now() time.Duration {
	if !c.Playing() {
		return 0
	}
	return c.src.Elapsed() + c.calibration
}
