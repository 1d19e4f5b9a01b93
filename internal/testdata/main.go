package testdata

import (
	"time"

	"git.lost.host/meutraa/ritmo/internal/game"
)

// TrackJSON is a small, deliberately unsorted track with mixed-case
// directions, exercising the validation and sort paths.
const TrackJSON = `[
  {"time": 2.0, "arrow_type": "left"},
  {"time": 1.0, "arrow_type": "Up"},
  {"time": 3.5, "arrow_type": "down"},
  {"time": 5.0, "arrow_type": "RIGHT"}
]`

// GetTrack returns the parsed form of TrackJSON.
func GetTrack() *game.Track {
	return &game.Track{
		Name: "test",
		Sum:  "test",
		Events: []game.NoteEvent{
			{Time: 1 * time.Second, Direction: game.Up},
			{Time: 2 * time.Second, Direction: game.Left},
			{Time: 3500 * time.Millisecond, Direction: game.Down},
			{Time: 5 * time.Second, Direction: game.Right},
		},
	}
}
