package game

import (
	"fmt"
	"strings"
)

type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
	NDirections = 4
)

var directionNames = [...]string{"up", "down", "left", "right"}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// Horizontal reports whether the note silhouette lies along the travel axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
