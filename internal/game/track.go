package game

import "time"

// NoteEvent is a single record of a track: when a note must arrive at the
// target, and which direction it points.
type NoteEvent struct {
	Time      time.Duration
	Direction Direction
}

// Track is an immutable, time-sorted list of note events. Construction goes
// through the parser, which validates and sorts; nothing mutates a Track
// afterwards.
type Track struct {
	Name   string
	Sum    string // content hash, keys the run history
	Events []NoteEvent
}
