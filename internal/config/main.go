package config

import (
	"git.lost.host/meutraa/ritmo/internal/engine"
	"git.lost.host/meutraa/ritmo/internal/score"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Directory = kingpin.Arg("directory", "Song/track directory").Required().ExistingDir()

	SpawnX  = kingpin.Flag("spawn-x", "Note spawn coordinate on the travel axis").Default("-3").Float64()
	TargetX = kingpin.Flag("target-x", "Target center coordinate on the travel axis").Default("1").Float64()
	TargetZ = kingpin.Flag("target-z", "Target center lateral coordinate").Default("8").Float64()
	StopX   = kingpin.Flag("stop-x", "Coordinate where notes stop and expire").Default("4").Float64()

	Speed    = kingpin.Flag("speed", "Note speed in units per second").Short('s').Default("4.0").Float64()
	NoteSize = kingpin.Flag("note-size", "Note scale factor").Default("0.8").Float64()

	InnerRadius = kingpin.Flag("inner-radius", "Target inner radius").Default("0.55").Float64()
	OuterRadius = kingpin.Flag("outer-radius", "Target outer radius").Default("0.65").Float64()
	Scale       = kingpin.Flag("scale", "Target scale factor").Default("1.0").Float64()

	Calibration       = kingpin.Flag("calibration", "Signed playback calibration offset").Short('c').Default("900ms").Duration()
	LatencyCorrection = kingpin.Flag("latency-correction", "Observed latency subtracted from travel time").Default("210ms").Duration()

	MissPenalty      = kingpin.Flag("miss-penalty", "Points lost when a note passes unjudged").Default("25").Float64()
	EmptyMissPenalty = kingpin.Flag("empty-miss-penalty", "Points lost for a keypress with no eligible note").Default("50").Float64()
	ShortStreak      = kingpin.Flag("short-streak", "Streak needed for the first multiplier").Default("5").Int()
	LongStreak       = kingpin.Flag("long-streak", "Streak needed for the second multiplier").Default("10").Int()
	ShortMultiplier  = kingpin.Flag("short-multiplier", "First streak multiplier").Default("1.5").Float64()
	LongMultiplier   = kingpin.Flag("long-multiplier", "Second streak multiplier").Default("2.0").Float64()

	Delay       = kingpin.Flag("delay", "Start delay").Short('d').Default("1.5s").Duration()
	FramePeriod = kingpin.Flag("frame-period", "Render frame period").Short('p').Default("16ms").Duration()
	HoldWindow  = kingpin.Flag("hold-window", "How long a key repeat counts as held").Default("150ms").Duration()
	Database    = kingpin.Flag("database", "Run history database path").Default("./scores.db").String()
)

// Parse is called from run, not init, so test binaries importing this package
// are unaffected.
func Parse() {
	kingpin.Version("0.1.0")
	kingpin.Parse()
}

func Rules() score.Rules {
	return score.Rules{
		BasePoints:       100,
		MissPenalty:      *MissPenalty,
		EmptyMissPenalty: *EmptyMissPenalty,
		ShortStreak:      *ShortStreak,
		LongStreak:       *LongStreak,
		ShortMultiplier:  *ShortMultiplier,
		LongMultiplier:   *LongMultiplier,
	}
}

func Engine() engine.Config {
	return engine.Config{
		SpawnX:            *SpawnX,
		TargetX:           *TargetX,
		TargetZ:           *TargetZ,
		StopX:             *StopX,
		Speed:             *Speed,
		NoteSize:          *NoteSize,
		InnerRadius:       *InnerRadius,
		OuterRadius:       *OuterRadius,
		Scale:             *Scale,
		Calibration:       *Calibration,
		LatencyCorrection: *LatencyCorrection,
		Rules:             Rules(),
	}
}
